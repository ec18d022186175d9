package models

import "time"

// Cliente do salão, identificada pelo código de acesso (sem senha)
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UniqueCode   string `gorm:"size:50;uniqueIndex;not null" json:"unique_code"`
	PersonalCode string `gorm:"size:20" json:"personal_code"`

	FullName    string `gorm:"size:100;not null" json:"full_name"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	// saldos em centavos
	CreditBalance  int `gorm:"default:0" json:"credit_balance"`
	AdvanceBalance int `gorm:"default:0" json:"advance_balance"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
