package models

import "time"

// Verificação enviada à cliente antes do atendimento (unhas quebradas etc);
// alimenta o cálculo do valor no lembrete
type PreAppointmentCheck struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointment"`

	BrokenNails int    `gorm:"default:0" json:"broken_nails"`
	Notes       string `gorm:"size:255" json:"notes"`

	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
}
