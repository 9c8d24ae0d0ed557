package models

import "time"

// Query is a contact or rental-inquiry form submission. Rental inquiries
// arrive as a composed message with the partner details inlined.
type Query struct {
	ID        int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Query) TableName() string {
	return "queries"
}

type QueryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}
