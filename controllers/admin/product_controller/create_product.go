package product_controller

import (
	"encoding/json"
	"log"
	"net/http"

	catalog_cache "github.com/Nautica-Marine/nautica-store-backend/cache"
	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Creates a product; a new product is placed at the end of the catalog unless displayOrder is given
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.product.create] bad request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	product, ok := productFromRequest(c, &req)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// New products go to the end of the catalog unless an explicit order is given
	if req.DisplayOrder != nil {
		product.DisplayOrder = *req.DisplayOrder
	} else {
		var maxOrder int
		if err := config.StoreGorm.WithContext(ctx).
			Model(&models.Product{}).
			Select("COALESCE(MAX(display_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			log.Printf("[admin.product.create] failed to read max display order: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
			return
		}
		product.DisplayOrder = maxOrder + 1
	}

	if err := config.StoreGorm.WithContext(ctx).Create(product).Error; err != nil {
		log.Printf("[admin.product.create] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[admin.product.create] created product %d (%s)", product.ID, product.Name)
	c.JSON(http.StatusCreated, product)
}

// productFromRequest maps the editor payload onto a Product. Malformed specs
// or standard-equipment JSON is rejected; malformed options are dropped whole
// inside ParseRawOptions.
func productFromRequest(c *gin.Context, req *models.ProductRequest) (*models.Product, bool) {
	product := &models.Product{
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Stock:        req.Stock,
		Description:  req.Description,
		Images:       models.ImageList(req.Images),
		Options:      models.ParseRawOptions(req.Options),
		PdfPhoto:     req.PdfPhoto,
		SpecsColumns: req.SpecsColumns,
	}
	if product.SpecsColumns == 0 {
		product.SpecsColumns = 1
	}

	if len(req.Specs) > 0 {
		if err := json.Unmarshal(req.Specs, &product.Specs); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid JSON in specifications field"))
			return nil, false
		}
	}
	if len(req.StandardEquipment) > 0 {
		if err := json.Unmarshal(req.StandardEquipment, &product.StandardEquipment); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid JSON in standard equipment field"))
			return nil, false
		}
	}
	return product, true
}
