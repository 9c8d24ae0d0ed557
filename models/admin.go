package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AdminUser struct {
	ID           int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Resource types for activity logging
const (
	ResourceTypeProduct   = "product"
	ResourceTypeBrand     = "brand"
	ResourceTypeOrder     = "order"
	ResourceTypeQuery     = "query"
	ResourceTypeModelSpec = "model_spec"
	ResourceTypeSetting   = "setting"
)

// ActivityLog records one admin mutation for the back-office audit trail.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      int64          `json:"admin_id" gorm:"index"`
	AdminName    string         `json:"admin_name"`
	Action       string         `json:"action" gorm:"not null"`
	ResourceType string         `json:"resource_type" gorm:"index"`
	ResourceID   string         `json:"resource_id"`
	Changes      datatypes.JSON `json:"changes,omitempty" gorm:"type:jsonb"`
	Status       string         `json:"status" gorm:"default:'success'"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
