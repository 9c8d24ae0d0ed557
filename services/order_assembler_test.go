package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductStore struct {
	product *models.Product
	err     error
}

func (s *stubProductStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

type stubOrderStore struct {
	created *models.Order
	err     error
}

func (s *stubOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if s.err != nil {
		return s.err
	}
	s.created = order
	return nil
}

func testCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		FullName: "Mari Laine",
		Email:    "mari@example.com",
		Phone:    "+358 40 123 4567",
		City:     "Turku",
	}
}

func TestAssembleOrderSnapshotsProduct(t *testing.T) {
	product := testProduct()
	product.Category = "Nordline"
	product.Description = "Sturdy all-weather fishing boat."
	product.Images = models.ImageList{"/images/nordline-48.jpg"}
	product.Specs = models.SpecsList{{Key: "Length", Value: "4.8 m"}}

	products := &stubProductStore{product: product}
	orders := &stubOrderStore{}
	assembler := NewOrderAssembler(products, orders)

	selected := models.SelectedOptions{"Color": {Label: "Blue"}}
	order, err := assembler.AssembleOrder(context.Background(), product.ID, selected, testCustomer())

	require.NoError(t, err)
	require.NotNil(t, orders.created)
	assert.Equal(t, product.Name, order.ProductName)
	assert.Equal(t, "Nordline", order.ProductBrand)
	assert.Equal(t, product.Price, order.ProductPrice)
	assert.Equal(t, product.Images, order.ProductImages)
	assert.Equal(t, product.Specs, order.ProductSpecs)
	assert.Equal(t, "Mari Laine", order.CustomerInfo.FullName)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 1050.0, order.TotalExclVAT)
	assert.Equal(t, 1249.5, order.TotalInclVAT)
	require.Len(t, order.PriceBreakdown, 2)
}

func TestAssembleOrderNumberFormat(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	assembler := NewOrderAssembler(&stubProductStore{product: testProduct()}, &stubOrderStore{})
	assembler.now = func() time.Time { return fixed }

	order, err := assembler.AssembleOrder(context.Background(), 1, nil, testCustomer())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Equal(t, "ORD-1773480413000", order.OrderNumber)
	assert.Equal(t, fixed, order.Date)
}

func TestAssembleOrderAppliesRequiredDefaults(t *testing.T) {
	product := testProduct()
	product.Options[0].Required = true
	assembler := NewOrderAssembler(&stubProductStore{product: product}, &stubOrderStore{})

	order, err := assembler.AssembleOrder(context.Background(), product.ID, nil, testCustomer())

	require.NoError(t, err)
	require.Contains(t, order.SelectedOptions, "Color")
	assert.Equal(t, "White", order.SelectedOptions["Color"].Label)
	// Default choice has zero delta, total stays at base price
	assert.Equal(t, 1000.0, order.TotalExclVAT)
	require.Len(t, order.PriceBreakdown, 2)
	assert.Equal(t, "Color: White", order.PriceBreakdown[1].Label)
}

func TestAssembleOrderProductMissing(t *testing.T) {
	products := &stubProductStore{err: ErrProductNotFound}
	orders := &stubOrderStore{}
	assembler := NewOrderAssembler(products, orders)

	order, err := assembler.AssembleOrder(context.Background(), 99, nil, testCustomer())

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, order)
	assert.Nil(t, orders.created)
}

func TestAssembleOrderDuplicateNumberSurfaces(t *testing.T) {
	orders := &stubOrderStore{err: ErrDuplicateOrderNumber}
	assembler := NewOrderAssembler(&stubProductStore{product: testProduct()}, orders)

	order, err := assembler.AssembleOrder(context.Background(), 1, nil, testCustomer())

	assert.ErrorIs(t, err, ErrDuplicateOrderNumber)
	assert.Nil(t, order)
}
