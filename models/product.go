package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
	"time"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// Choice is one selectable value within an Option. Price is a delta added to
// the product base price when selected; it may be zero or negative.
type Choice struct {
	Label string  `json:"label" binding:"required" example:"Blue"`
	Price float64 `json:"price" example:"50"`
}

// Option is a product-level customization axis ("Color", "Extras").
// Type "radio" means exactly one choice, "checkbox" means zero or more.
// Required is only meaningful for radio options.
type Option struct {
	Name     string   `json:"name" binding:"required" example:"Color"`
	Type     string   `json:"type" binding:"required,oneof=radio checkbox" example:"radio"`
	Required bool     `json:"required"`
	Choices  []Choice `json:"choices" binding:"required,dive"`
}

// SpecEntry is one row of a product spec table. Specs are kept as an ordered
// list of pairs because JSONB object key order is not preserved.
type SpecEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EquipmentGroup is one section of the standard equipment list.
type EquipmentGroup struct {
	Header string   `json:"header,omitempty"`
	Items  []string `json:"items,omitempty"`
}

// Custom slice types so we can attach JSONB Scan/Value methods
type (
	OptionsList   []Option
	SpecsList     []SpecEntry
	EquipmentList []EquipmentGroup
	ImageList     []string
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID                int64         `json:"id,string" gorm:"primaryKey;autoIncrement"`
	Name              string        `json:"name" gorm:"not null;index"`
	Category          string        `json:"category" gorm:"index"` // brand name
	Price             float64       `json:"price" gorm:"type:numeric(10,2);not null"`
	Stock             int           `json:"stock" gorm:"default:0"`
	Description       string        `json:"description"`
	StandardEquipment EquipmentList `json:"standardEquipment" gorm:"type:jsonb;not null;default:'[]'"`
	Specs             SpecsList     `json:"specs" gorm:"type:jsonb;not null;default:'[]'"`
	Images            ImageList     `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Options           OptionsList   `json:"options" gorm:"type:jsonb;not null;default:'[]'"`
	DisplayOrder      int           `json:"displayOrder" gorm:"default:0;index"`
	PdfPhoto          *string       `json:"pdfPhoto,omitempty"`
	SpecsColumns      int           `json:"specsColumns" gorm:"default:1"`
	CreatedAt         time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// FindOption returns the option with the given name, or nil.
func (p *Product) FindOption(name string) *Option {
	for i := range p.Options {
		if p.Options[i].Name == name {
			return &p.Options[i]
		}
	}
	return nil
}

// FindChoice returns the choice with the given label, or nil.
func (o *Option) FindChoice(label string) *Choice {
	for i := range o.Choices {
		if o.Choices[i].Label == label {
			return &o.Choices[i]
		}
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name              string          `json:"name" binding:"required" example:"Noblesse 720"`
	Category          string          `json:"category" example:"Nordline"`
	Price             float64         `json:"price" binding:"required,min=0" example:"89900"`
	Stock             int             `json:"stock" binding:"min=0" example:"2"`
	Description       string          `json:"description"`
	StandardEquipment json.RawMessage `json:"standardEquipment"`
	Specs             json.RawMessage `json:"specs"`
	Images            []string        `json:"images"`
	Options           []RawOption     `json:"options"`
	DisplayOrder      *int            `json:"displayOrder"`
	PdfPhoto          *string         `json:"pdfPhoto"`
	SpecsColumns      int             `json:"specsColumns" binding:"omitempty,oneof=1 2"`
}

// RawOption is the admin options-editor payload: choices arrive as raw JSON
// text. An option with a blank name or choices that do not parse as a list of
// {label, price} is discarded whole; there is no partial-choice recovery.
type RawOption struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Required bool            `json:"required"`
	Choices  json.RawMessage `json:"choices"`
}

type ReorderProductRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

func scanJSONB(dest any, value any) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		s, okStr := value.(string)
		if !okStr {
			return errors.New("failed to scan JSONB column")
		}
		bytes = []byte(s)
	}
	return json.Unmarshal(bytes, dest)
}

// OptionsList methods
func (o *OptionsList) Scan(value any) error {
	if value == nil {
		*o = make(OptionsList, 0)
		return nil
	}
	return scanJSONB(o, value)
}

func (o OptionsList) Value() (driver.Value, error) {
	if o == nil {
		return json.Marshal([]Option{})
	}
	return json.Marshal(o)
}

// SpecsList methods. Legacy rows stored specs as a plain JSON object; new
// rows store an ordered list of {key, value} pairs. UnmarshalJSON upgrades
// the legacy shape at the storage boundary so business logic never branches
// on runtime shape.
func (s *SpecsList) UnmarshalJSON(data []byte) error {
	var asPairs []SpecEntry
	if err := json.Unmarshal(data, &asPairs); err == nil {
		*s = SpecsList(asPairs)
		return nil
	}

	var asObject map[string]string
	if err := json.Unmarshal(data, &asObject); err != nil {
		return err
	}
	keys := make([]string, 0, len(asObject))
	for k := range asObject {
		keys = append(keys, k)
	}
	// Object key order is undefined; sort for a stable canonical form.
	sort.Strings(keys)
	upgraded := make(SpecsList, 0, len(keys))
	for _, k := range keys {
		upgraded = append(upgraded, SpecEntry{Key: k, Value: asObject[k]})
	}
	*s = upgraded
	return nil
}

func (s *SpecsList) Scan(value any) error {
	if value == nil {
		*s = make(SpecsList, 0)
		return nil
	}
	return scanJSONB(s, value)
}

func (s SpecsList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]SpecEntry{})
	}
	return json.Marshal([]SpecEntry(s))
}

// EquipmentList methods. Each element is either a {header, items} group or a
// bare string (legacy flat list); bare strings become item-only groups.
func (e *EquipmentList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(EquipmentList, 0, len(raw))
	for _, el := range raw {
		var group EquipmentGroup
		if err := json.Unmarshal(el, &group); err == nil && (group.Header != "" || len(group.Items) > 0) {
			out = append(out, group)
			continue
		}
		var plain string
		if err := json.Unmarshal(el, &plain); err == nil && plain != "" {
			out = append(out, EquipmentGroup{Items: []string{plain}})
		}
	}
	*e = out
	return nil
}

func (e *EquipmentList) Scan(value any) error {
	if value == nil {
		*e = make(EquipmentList, 0)
		return nil
	}
	return scanJSONB(e, value)
}

func (e EquipmentList) Value() (driver.Value, error) {
	if e == nil {
		return json.Marshal([]EquipmentGroup{})
	}
	return json.Marshal([]EquipmentGroup(e))
}

// ImageList methods
func (i *ImageList) Scan(value any) error {
	if value == nil {
		*i = make(ImageList, 0)
		return nil
	}
	return scanJSONB(i, value)
}

func (i ImageList) Value() (driver.Value, error) {
	if i == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(i))
}

// ═══════════════════════════════════════════════════════════
// Options editor validation
// ═══════════════════════════════════════════════════════════

// ParseRawOptions converts the admin options-editor payload into an
// OptionsList. Options with a blank name, an unknown type, or choices that
// do not parse as a list of choices are dropped entirely.
func ParseRawOptions(raw []RawOption) OptionsList {
	out := make(OptionsList, 0, len(raw))
	for _, ro := range raw {
		if ro.Name == "" {
			continue
		}
		if ro.Type != "radio" && ro.Type != "checkbox" {
			continue
		}
		var choices []Choice
		if err := json.Unmarshal(ro.Choices, &choices); err != nil {
			continue
		}
		out = append(out, Option{
			Name:     ro.Name,
			Type:     ro.Type,
			Required: ro.Required,
			Choices:  choices,
		})
	}
	return out
}
