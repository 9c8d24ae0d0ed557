package services

import (
	"testing"

	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct() *models.Product {
	return &models.Product{
		ID:    1,
		Name:  "Nordline 48 Fisher",
		Price: 1000,
		Options: models.OptionsList{
			{
				Name: "Color",
				Type: "radio",
				Choices: []models.Choice{
					{Label: "White", Price: 0},
					{Label: "Blue", Price: 50},
				},
			},
			{
				Name: "Extras",
				Type: "checkbox",
				Choices: []models.Choice{
					{Label: "GPS", Price: 100},
					{Label: "Radio", Price: 75},
				},
			},
		},
	}
}

func TestCalculatePriceNoSelection(t *testing.T) {
	product := testProduct()

	total, breakdown := CalculatePrice(product, models.SelectedOptions{})

	assert.Equal(t, 1000.0, total)
	require.Len(t, breakdown, 1)
	assert.Equal(t, "Base Price", breakdown[0].Label)
	assert.Equal(t, 1000.0, breakdown[0].Price)
}

func TestCalculatePriceRadioSelection(t *testing.T) {
	product := testProduct()
	selected := models.SelectedOptions{
		"Color": {Label: "Blue"},
	}

	total, breakdown := CalculatePrice(product, selected)

	assert.Equal(t, 1050.0, total)
	assert.Equal(t, 1249.5, ApplyVAT(total))
	require.Len(t, breakdown, 2)
	assert.Equal(t, models.PriceBreakdownLine{Label: "Base Price", Price: 1000}, breakdown[0])
	assert.Equal(t, models.PriceBreakdownLine{Label: "Color: Blue", Price: 50}, breakdown[1])
}

func TestCalculatePriceCheckboxSelection(t *testing.T) {
	product := testProduct()
	product.Price = 500
	selected := models.SelectedOptions{
		"Extras": {Multi: true, Labels: []string{"GPS", "Radio"}},
	}

	total, breakdown := CalculatePrice(product, selected)

	assert.Equal(t, 675.0, total)
	assert.Equal(t, 803.25, ApplyVAT(total))
	require.Len(t, breakdown, 3)
	assert.Equal(t, "Extras: GPS", breakdown[1].Label)
	assert.Equal(t, "Extras: Radio", breakdown[2].Label)
}

func TestCalculatePriceIgnoresUnknownOption(t *testing.T) {
	product := testProduct()
	selected := models.SelectedOptions{
		"Paint": {Label: "Red"},
	}

	total, breakdown := CalculatePrice(product, selected)

	assert.Equal(t, 1000.0, total)
	assert.Len(t, breakdown, 1)
}

func TestCalculatePriceIgnoresUnknownLabel(t *testing.T) {
	product := testProduct()
	selected := models.SelectedOptions{
		"Color":  {Label: "Chartreuse"},
		"Extras": {Multi: true, Labels: []string{"GPS", "Anchor"}},
	}

	total, breakdown := CalculatePrice(product, selected)

	assert.Equal(t, 1100.0, total)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Extras: GPS", breakdown[1].Label)
}

func TestCalculatePriceNegativeChoice(t *testing.T) {
	product := testProduct()
	product.Options = append(product.Options, models.Option{
		Name: "Trade-in",
		Type: "radio",
		Choices: []models.Choice{
			{Label: "Old engine", Price: -50},
		},
	})
	selected := models.SelectedOptions{
		"Trade-in": {Label: "Old engine"},
	}

	total, _ := CalculatePrice(product, selected)

	assert.Equal(t, 950.0, total)
	assert.Equal(t, 1130.5, ApplyVAT(total))
}

func TestCalculatePriceBreakdownFollowsDeclarationOrder(t *testing.T) {
	product := testProduct()
	selected := models.SelectedOptions{
		"Extras": {Multi: true, Labels: []string{"Radio"}},
		"Color":  {Label: "White"},
	}

	_, breakdown := CalculatePrice(product, selected)

	require.Len(t, breakdown, 3)
	assert.Equal(t, "Color: White", breakdown[1].Label)
	assert.Equal(t, "Extras: Radio", breakdown[2].Label)
}

func TestCalculatePriceIsIdempotent(t *testing.T) {
	product := testProduct()
	selected := models.SelectedOptions{
		"Color":  {Label: "Blue"},
		"Extras": {Multi: true, Labels: []string{"GPS"}},
	}

	total1, breakdown1 := CalculatePrice(product, selected)
	total2, breakdown2 := CalculatePrice(product, selected)

	assert.Equal(t, total1, total2)
	assert.Equal(t, breakdown1, breakdown2)
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 1249.5, RoundCurrency(1249.4999999999998))
	assert.Equal(t, 0.1, RoundCurrency(0.10000000000000003))
	assert.Equal(t, -59.5, RoundCurrency(-59.499999))
}

func TestApplyRequiredDefaults(t *testing.T) {
	product := testProduct()
	product.Options[0].Required = true

	out := ApplyRequiredDefaults(product, models.SelectedOptions{})

	require.Contains(t, out, "Color")
	assert.Equal(t, "White", out["Color"].Label)
	assert.NotContains(t, out, "Extras")
}

func TestApplyRequiredDefaultsKeepsExplicitSelection(t *testing.T) {
	product := testProduct()
	product.Options[0].Required = true
	selected := models.SelectedOptions{"Color": {Label: "Blue"}}

	out := ApplyRequiredDefaults(product, selected)

	assert.Equal(t, "Blue", out["Color"].Label)
	// Input map must stay untouched
	assert.Len(t, selected, 1)
}
