package services

import (
	"bytes"
	"fmt"

	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// GenerateOrderConfirmationPDF renders the order confirmation document the
// customer downloads after submitting an order: the product snapshot, the
// itemized price breakdown, and the totals with and without VAT.
func GenerateOrderConfirmationPDF(order *models.Order) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("ORDER CONFIRMATION", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("NAUTICA MARINE STORE", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(8, func() {})

	// Order / customer block
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("CUSTOMER", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("ORDER DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.CustomerInfo.FullName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Order #%s", order.OrderNumber), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.CustomerInfo.Email, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.Date.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	if order.CustomerInfo.Phone != "" || order.CustomerInfo.City != "" {
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(fmt.Sprintf("%s  %s", order.CustomerInfo.Phone, order.CustomerInfo.City), props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Product
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s %s", order.ProductBrand, order.ProductName), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {})

	// Price breakdown table header
	m.Row(6, func() {
		m.Col(8, func() {
			m.Text("Item", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, line := range order.PriceBreakdown {
		m.Row(5, func() {
			m.Col(8, func() {
				m.Text(line.Label, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(formatPrice(line.Price), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(6, func() {})

	// Totals
	m.Row(5, func() {
		m.Col(8, func() {
			m.Text("Total (excl. VAT)", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("EUR %.2f", order.TotalExclVAT), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(6, func() {
		m.Col(8, func() {
			m.Text("Total (incl. 19% VAT)", props.Text{
				Size:  11,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("EUR %.2f", order.TotalInclVAT), props.Text{
				Size:  11,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render order PDF: %w", err)
	}
	return &buf, nil
}

func formatPrice(p float64) string {
	if p > 0 {
		return fmt.Sprintf("+EUR %.2f", p)
	}
	return fmt.Sprintf("EUR %.2f", p)
}
