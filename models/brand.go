package models

import "time"

type Brand struct {
	ID        int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Brand) TableName() string {
	return "brands"
}

type BrandRequest struct {
	Name string `json:"name" binding:"required" example:"Nordline"`
	Logo string `json:"logo"`
}
