package models

import "time"

// Notificação persistida com flag de leitura por registro,
// sobrevive a restart do processo
type AdminNotification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type    string `gorm:"size:50;not null" json:"type"`
	Message string `gorm:"size:1000;not null" json:"message"`

	ClientID      *uint `json:"client_id"`
	AppointmentID *uint `json:"appointment_id"`

	Read bool `gorm:"default:false;index" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
