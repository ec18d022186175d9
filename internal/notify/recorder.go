package notify

import (
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/models"
)

// Recorder persiste o aviso como AdminNotification com flag de leitura
// própria, em vez do estado global em memória
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) Record(msg Message) error {
	n := models.AdminNotification{
		Type:          msg.Type,
		Message:       msg.Text,
		ClientID:      msg.ClientID,
		AppointmentID: msg.AppointmentID,
	}

	return r.db.Create(&n).Error
}
