package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Order statuses. The admin path only writes the status field; everything
// else is an immutable snapshot taken at order time.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// SelectedValue is the selection for a single option: a single choice label
// for radio options, a list of labels for checkbox options.
type SelectedValue struct {
	Label  string
	Labels []string
	Multi  bool
}

func (v *SelectedValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		v.Label = single
		v.Multi = false
		v.Labels = nil
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("selected option must be a label or a list of labels")
	}
	v.Labels = many
	v.Multi = true
	v.Label = ""
	return nil
}

func (v SelectedValue) MarshalJSON() ([]byte, error) {
	if v.Multi {
		if v.Labels == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.Labels)
	}
	return json.Marshal(v.Label)
}

// SelectedOptions maps option name to the customer's selection.
type SelectedOptions map[string]SelectedValue

func (s *SelectedOptions) Scan(value any) error {
	if value == nil {
		*s = make(SelectedOptions)
		return nil
	}
	return scanJSONB(s, value)
}

func (s SelectedOptions) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(map[string]SelectedValue{})
	}
	return json.Marshal(map[string]SelectedValue(s))
}

// PriceBreakdownLine is one itemized price contribution: the base price
// first, then one line per selected choice.
type PriceBreakdownLine struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type BreakdownList []PriceBreakdownLine

func (b *BreakdownList) Scan(value any) error {
	if value == nil {
		*b = make(BreakdownList, 0)
		return nil
	}
	return scanJSONB(b, value)
}

func (b BreakdownList) Value() (driver.Value, error) {
	if b == nil {
		return json.Marshal([]PriceBreakdownLine{})
	}
	return json.Marshal([]PriceBreakdownLine(b))
}

// CustomerInfo is the contact block captured with an order.
type CustomerInfo struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

func (c *CustomerInfo) Scan(value any) error {
	if value == nil {
		*c = CustomerInfo{}
		return nil
	}
	return scanJSONB(c, value)
}

func (c CustomerInfo) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// ═══════════════════════════════════════════════════════════
// Main Order Model (GORM)
// ═══════════════════════════════════════════════════════════

// Order is an immutable historical record: product data is denormalized into
// it at creation time so later product edits or deletions never change what
// the customer ordered.
type Order struct {
	ID                       int64           `json:"id,string" gorm:"primaryKey;autoIncrement"`
	OrderNumber              string          `json:"orderNumber" gorm:"uniqueIndex;not null"`
	ProductID                *int64          `json:"productId,string,omitempty"`
	ProductName              string          `json:"productName" gorm:"not null"`
	ProductBrand             string          `json:"productBrand"`
	ProductPrice             float64         `json:"productPrice" gorm:"type:numeric(10,2)"`
	SelectedOptions          SelectedOptions `json:"selectedOptions" gorm:"type:jsonb;not null;default:'{}'"`
	PriceBreakdown           BreakdownList   `json:"priceBreakdown" gorm:"type:jsonb;not null;default:'[]'"`
	TotalExclVAT             float64         `json:"totalExclVAT" gorm:"type:numeric(10,2)"`
	TotalInclVAT             float64         `json:"totalInclVAT" gorm:"type:numeric(10,2)"`
	CustomerInfo             CustomerInfo    `json:"customerInfo" gorm:"type:jsonb;not null"`
	ProductImages            ImageList       `json:"productImages" gorm:"type:jsonb;not null;default:'[]'"`
	ProductDescription       string          `json:"productDescription"`
	ProductSpecs             SpecsList       `json:"productSpecs" gorm:"type:jsonb;not null;default:'[]'"`
	ProductStandardEquipment EquipmentList   `json:"productStandardEquipment" gorm:"type:jsonb;not null;default:'[]'"`
	Status                   string          `json:"status" gorm:"not null;default:'pending';index"`
	Date                     time.Time       `json:"date" gorm:"autoCreateTime"`
	CreatedAt                time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt                time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type CreateOrderRequest struct {
	ProductID       int64           `json:"productId,string" binding:"required"`
	SelectedOptions SelectedOptions `json:"selectedOptions"`
	CustomerInfo    CustomerInfo    `json:"customerInfo" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
