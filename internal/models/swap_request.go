package models

import "time"

type SwapRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequesterClientID      uint `gorm:"not null;index" json:"requester_client_id"`
	RequesterAppointmentID uint `gorm:"not null" json:"requester_appointment_id"`

	// nulos para admin_move
	TargetClientID      *uint `gorm:"index" json:"target_client_id"`
	TargetAppointmentID *uint `json:"target_appointment_id"`

	RequestType string `gorm:"size:20;not null;default:'client_swap'" json:"request_type"`
	Status      string `gorm:"size:20;not null;default:'pending'" json:"status"`

	RequestMessage string `gorm:"size:500" json:"request_message"`

	// payload JSON {date, time, service} para admin_move sem target
	NewSlotInfo string `gorm:"type:text" json:"new_slot_info"`

	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at"`
}
