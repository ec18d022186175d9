package models

import "time"

type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:50;index" json:"category"`

	Quantity     int `gorm:"default:0" json:"quantity"`
	MinThreshold int `gorm:"default:1" json:"min_threshold"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
