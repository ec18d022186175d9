package models

import "time"

type AccessCode struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UniqueCode string `gorm:"size:50;uniqueIndex;not null" json:"unique_code"`

	UsedByClientID *uint      `json:"used_by_client_id"`
	UsedAt         *time.Time `json:"used_at"`

	CreatedAt time.Time `json:"created_at"`
}
