package query_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteQuery godoc
// @Summary Delete a customer query
// @Tags Admin - Queries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Query ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Query not found"
// @Router /admin/queries/{id} [delete]
func DeleteQuery(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).Delete(&models.Query{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("[admin.query.delete] failed to delete query %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete query"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Query not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Query deleted successfully", nil))
}
