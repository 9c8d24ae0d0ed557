package modelspec_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetModelSpec godoc
// @Summary Get the specification sheet for a model
// @Tags Storefront - Model Specifications
// @Produce json
// @Param modelName path string true "Model name"
// @Success 200 {object} models.ModelSpec
// @Failure 404 {object} models.ApiResponse "No specifications found"
// @Failure 500 {object} models.ApiResponse
// @Router /model-specifications/{modelName} [get]
func GetModelSpec(c *gin.Context) {
	modelName := c.Param("modelName")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var spec models.ModelSpec
	if err := config.StoreGorm.WithContext(ctx).
		First(&spec, "model_name = ?", modelName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No specifications found"))
			return
		}
		log.Printf("[store.model-spec] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch specifications"))
		return
	}

	c.JSON(http.StatusOK, spec)
}
