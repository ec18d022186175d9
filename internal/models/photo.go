package models

import "time"

type Photo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ImageURL    string `gorm:"size:500;not null" json:"image_url"`
	Description string `gorm:"size:255" json:"description"`
	NailStyle   string `gorm:"size:100" json:"nail_style"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	UploadedAt time.Time  `json:"uploaded_at"`
	ApprovedAt *time.Time `json:"approved_at"`
}

type Like struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhotoID  uint `gorm:"index:idx_likes_photo_client,unique" json:"photo_id"`
	ClientID uint `gorm:"index:idx_likes_photo_client,unique" json:"client_id"`

	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhotoID  uint `gorm:"index" json:"photo_id"`
	ClientID uint `json:"client_id"`

	Content string `gorm:"size:500;not null" json:"content"`

	CreatedAt time.Time `json:"created_at"`
}
