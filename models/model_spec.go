package models

import "time"

// ModelSpec is a detailed specification sheet keyed by model name, rendered
// on product pages as a sectioned table.
type ModelSpec struct {
	ID             int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	ModelName      string    `json:"modelName" gorm:"uniqueIndex;not null"`
	Specifications SpecsList `json:"specifications" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ModelSpec) TableName() string {
	return "model_specifications"
}

type ModelSpecRequest struct {
	ModelName      string      `json:"modelName" binding:"required"`
	Specifications []SpecEntry `json:"specifications" binding:"required"`
}
