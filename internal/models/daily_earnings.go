package models

import "time"

type DailyEarnings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date        time.Time `gorm:"uniqueIndex" json:"date"`
	AmountCents int       `gorm:"default:0" json:"amount_cents"`
	Notes       string    `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
