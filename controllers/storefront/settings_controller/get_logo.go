package settings_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetLogo godoc
// @Summary Get the shop logo
// @Tags Storefront - Settings
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ApiResponse
// @Router /settings/logo [get]
func GetLogo(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var setting models.Setting
	err := config.StoreGorm.WithContext(ctx).
		First(&setting, "key = ?", models.SettingShopLogo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"logo": ""})
			return
		}
		log.Printf("[store.settings] failed to fetch logo: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch logo"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo": setting.Value})
}
