package modelspec_controller

import (
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// ListModelSpecs godoc
// @Summary List all model specification sheets
// @Tags Admin - Model Specifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ModelSpec
// @Failure 500 {object} models.ApiResponse
// @Router /admin/model-specifications [get]
func ListModelSpecs(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var specs []models.ModelSpec
	if err := config.StoreGorm.WithContext(ctx).Order("model_name ASC").Find(&specs).Error; err != nil {
		log.Printf("[admin.modelspec.list] failed to fetch model specifications: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch model specifications"))
		return
	}

	c.JSON(http.StatusOK, specs)
}
