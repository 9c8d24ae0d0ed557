package services

import (
	"fmt"
	"math"

	"github.com/Nautica-Marine/nautica-store-backend/models"
)

// VATRate is the fixed VAT applied to every order total. It is deliberately
// not configurable per product or region.
const VATRate = 0.19

const basePriceLabel = "Base Price"

// RoundCurrency rounds to 2-decimal currency precision.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// ApplyVAT returns the VAT-inclusive total for a VAT-exclusive one.
func ApplyVAT(totalExclVAT float64) float64 {
	return RoundCurrency(totalExclVAT * (1 + VATRate))
}

// CalculatePrice derives the order total and itemized breakdown from a
// product's base price plus the customer's selected options.
//
// The breakdown always starts with the base price line; selected choices
// follow in product-option declaration order, and for checkbox options in
// selection order. Selection keys that match no option on the product, and
// labels that match no choice within their option, contribute nothing and
// raise no error: options may have been edited after the customer loaded a
// cached product view, and a stale selection should not sink the order.
//
// No floor is applied. Choices may carry negative prices, so a total below
// the base price, or below zero, is a valid result.
func CalculatePrice(product *models.Product, selected models.SelectedOptions) (float64, models.BreakdownList) {
	total := product.Price
	breakdown := models.BreakdownList{{Label: basePriceLabel, Price: product.Price}}

	for i := range product.Options {
		option := &product.Options[i]
		value, ok := selected[option.Name]
		if !ok {
			continue
		}

		if value.Multi {
			for _, label := range value.Labels {
				choice := option.FindChoice(label)
				if choice == nil {
					continue
				}
				total += choice.Price
				breakdown = append(breakdown, models.PriceBreakdownLine{
					Label: fmt.Sprintf("%s: %s", option.Name, label),
					Price: choice.Price,
				})
			}
			continue
		}

		choice := option.FindChoice(value.Label)
		if choice == nil {
			continue
		}
		total += choice.Price
		breakdown = append(breakdown, models.PriceBreakdownLine{
			Label: fmt.Sprintf("%s: %s", option.Name, value.Label),
			Price: choice.Price,
		})
	}

	return total, breakdown
}

// ApplyRequiredDefaults pre-selects the first choice of every required radio
// option that the selection leaves out, so required radios always contribute
// a breakdown line even for clients that skipped the option UI. The input
// map is not modified.
func ApplyRequiredDefaults(product *models.Product, selected models.SelectedOptions) models.SelectedOptions {
	out := make(models.SelectedOptions, len(selected))
	for name, value := range selected {
		out[name] = value
	}
	for _, option := range product.Options {
		if !option.Required || option.Type != "radio" || len(option.Choices) == 0 {
			continue
		}
		if _, ok := out[option.Name]; ok {
			continue
		}
		out[option.Name] = models.SelectedValue{Label: option.Choices[0].Label}
	}
	return out
}
