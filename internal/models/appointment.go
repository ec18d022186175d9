package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	AppointmentDate time.Time `gorm:"index" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5;not null" json:"appointment_time"`

	Service string `gorm:"size:100;not null" json:"service"`

	// "YYYY-MM", denormalizado para consultas mensais
	MonthYear string `gorm:"size:7;index" json:"month_year"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
