package modelspec_controller

import (
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteModelSpec godoc
// @Summary Delete a model specification sheet
// @Tags Admin - Model Specifications
// @Produce json
// @Security BearerAuth
// @Param modelName path string true "Model name"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "No specifications found"
// @Router /admin/model-specifications/{modelName} [delete]
func DeleteModelSpec(c *gin.Context) {
	modelName := c.Param("modelName")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).Delete(&models.ModelSpec{}, "model_name = ?", modelName)
	if result.Error != nil {
		log.Printf("[admin.modelspec.delete] failed to delete specifications for %q: %v", modelName, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete model specifications"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No specifications found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Model specifications deleted", nil))
}
