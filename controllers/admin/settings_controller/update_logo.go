package settings_controller

import (
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// UpdateLogo godoc
// @Summary Set the shop logo
// @Description Stores the logo URL or data URI shown on the public site header
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.UpdateLogoRequest true "Logo"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /admin/settings/logo [put]
func UpdateLogo(c *gin.Context) {
	var req models.UpdateLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	setting := models.Setting{Key: models.SettingShopLogo, Value: req.Logo}
	err := config.StoreGorm.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		log.Printf("[admin.settings.logo] failed to save logo: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save logo"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logo updated", gin.H{"logo": req.Logo}))
}
