package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nautica-Marine/nautica-store-backend/models"
)

// Store contract failures surfaced to callers.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

// ProductStore is the product lookup the assembler snapshots from.
type ProductStore interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// OrderStore persists assembled orders. Create must return
// ErrDuplicateOrderNumber when the order number unique constraint rejects
// the write.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
}

// OrderAssembler packages a calculated price, customer info, and a product
// snapshot into a persistable order record.
type OrderAssembler struct {
	products ProductStore
	orders   OrderStore
	now      func() time.Time
}

func NewOrderAssembler(products ProductStore, orders OrderStore) *OrderAssembler {
	return &OrderAssembler{
		products: products,
		orders:   orders,
		now:      time.Now,
	}
}

// AssembleOrder builds and persists an order for the given product and
// selection. It fails fast with ErrProductNotFound when the product is gone
// (no partial order is created), and surfaces ErrDuplicateOrderNumber from
// the store without retrying; the caller presents the error and the customer
// resubmits.
func (a *OrderAssembler) AssembleOrder(ctx context.Context, productID int64, selected models.SelectedOptions, customer models.CustomerInfo) (*models.Order, error) {
	product, err := a.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if selected == nil {
		selected = models.SelectedOptions{}
	}
	selected = ApplyRequiredDefaults(product, selected)

	total, breakdown := CalculatePrice(product, selected)

	order := &models.Order{
		OrderNumber:              a.generateOrderNumber(),
		ProductID:                &product.ID,
		ProductName:              product.Name,
		ProductBrand:             product.Category,
		ProductPrice:             product.Price,
		SelectedOptions:          selected,
		PriceBreakdown:           breakdown,
		TotalExclVAT:             total,
		TotalInclVAT:             ApplyVAT(total),
		CustomerInfo:             customer,
		ProductImages:            product.Images,
		ProductDescription:       product.Description,
		ProductSpecs:             product.Specs,
		ProductStandardEquipment: product.StandardEquipment,
		Status:                   models.OrderStatusPending,
		Date:                     a.now().UTC(),
	}

	if err := a.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// generateOrderNumber derives a unique token from the current time. A
// collision needs two orders inside the same millisecond; the order number
// unique constraint catches that case.
func (a *OrderAssembler) generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d", a.now().UnixMilli())
}
