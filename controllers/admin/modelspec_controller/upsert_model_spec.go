package modelspec_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// UpsertModelSpec godoc
// @Summary Create or replace a model specification sheet
// @Description Sheets are keyed by model name; posting an existing name replaces its specifications
// @Tags Admin - Model Specifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param spec body models.ModelSpecRequest true "Specification sheet"
// @Success 200 {object} models.ModelSpec
// @Failure 400 {object} models.ApiResponse
// @Router /admin/model-specifications [post]
func UpsertModelSpec(c *gin.Context) {
	var req models.ModelSpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Model name and specifications are required"))
		return
	}

	spec := models.ModelSpec{
		ModelName:      strings.TrimSpace(req.ModelName),
		Specifications: models.SpecsList(req.Specifications),
	}
	if spec.ModelName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Model name and specifications are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.StoreGorm.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "model_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"specifications", "updated_at"}),
		}).
		Create(&spec).Error
	if err != nil {
		log.Printf("[admin.modelspec.upsert] failed to save specifications for %q: %v", spec.ModelName, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save model specifications"))
		return
	}

	c.JSON(http.StatusOK, spec)
}
