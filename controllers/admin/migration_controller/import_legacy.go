package migration_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// LegacyImportRequest is a full data dump from the previous store system.
// The JSONB model types normalize the legacy field shapes during decoding,
// so records can be passed through mostly as-is.
type LegacyImportRequest struct {
	Products []models.Product `json:"products"`
	Brands   []models.Brand   `json:"brands"`
	Orders   []models.Order   `json:"orders"`
	Logo     string           `json:"logo"`
}

type ImportResult struct {
	ProductsImported int      `json:"products_imported"`
	ProductsSkipped  int      `json:"products_skipped"`
	BrandsImported   int      `json:"brands_imported"`
	BrandsSkipped    int      `json:"brands_skipped"`
	OrdersImported   int      `json:"orders_imported"`
	OrdersSkipped    int      `json:"orders_skipped"`
	LogoImported     bool     `json:"logo_imported"`
	Errors           []string `json:"errors"`
}

// ImportLegacyData godoc
// @Summary Import a legacy data dump
// @Description One-shot migration endpoint. Existing records are skipped, never overwritten, so the import can be re-run safely.
// @Tags Admin - Migration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dump body LegacyImportRequest true "Legacy data dump"
// @Success 200 {object} ImportResult
// @Failure 400 {object} models.ApiResponse
// @Router /admin/migrate [post]
func ImportLegacyData(c *gin.Context) {
	var req LegacyImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.migrate] bad dump: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid legacy dump: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := ImportResult{Errors: []string{}}

	for i := range req.Brands {
		brand := req.Brands[i]
		brand.ID = 0
		res := config.StoreGorm.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&brand)
		switch {
		case res.Error != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("brand %q: %v", brand.Name, res.Error))
		case res.RowsAffected == 0:
			result.BrandsSkipped++
		default:
			result.BrandsImported++
		}
	}

	for i := range req.Products {
		product := req.Products[i]
		product.ID = 0
		var existing int64
		if err := config.StoreGorm.WithContext(ctx).
			Model(&models.Product{}).
			Where("name = ? AND category = ?", product.Name, product.Category).
			Count(&existing).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("product %q: %v", product.Name, err))
			continue
		}
		if existing > 0 {
			result.ProductsSkipped++
			continue
		}
		if err := config.StoreGorm.WithContext(ctx).Create(&product).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("product %q: %v", product.Name, err))
			continue
		}
		result.ProductsImported++
	}

	for i := range req.Orders {
		order := req.Orders[i]
		order.ID = 0
		res := config.StoreGorm.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "order_number"}}, DoNothing: true}).
			Create(&order)
		switch {
		case res.Error != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("order %s: %v", order.OrderNumber, res.Error))
		case res.RowsAffected == 0:
			result.OrdersSkipped++
		default:
			result.OrdersImported++
		}
	}

	if req.Logo != "" {
		setting := models.Setting{Key: models.SettingShopLogo, Value: req.Logo}
		err := config.StoreGorm.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, DoNothing: true}).
			Create(&setting).Error
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("logo: %v", err))
		} else {
			result.LogoImported = true
		}
	}

	log.Printf("[admin.migrate] imported %d products, %d brands, %d orders (%d errors)",
		result.ProductsImported, result.BrandsImported, result.OrdersImported, len(result.Errors))
	c.JSON(http.StatusOK, result)
}
