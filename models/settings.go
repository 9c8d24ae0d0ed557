package models

import "time"

const SettingShopLogo = "shop_logo"

type Setting struct {
	ID        int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Setting) TableName() string {
	return "settings"
}

type UpdateLogoRequest struct {
	Logo string `json:"logo"`
}
