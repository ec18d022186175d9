package swap

import (
	"encoding/json"
	"time"

	"github.com/frannienails/salon-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ExchangeSlots troca horário e serviço entre os dois agendamentos,
// mantendo cada registro com a cliente original (preserva histórico).
// Aplicar duas vezes devolve os dois aos valores iniciais.
func ExchangeSlots(a, b *models.Appointment) {
	a.AppointmentTime, b.AppointmentTime = b.AppointmentTime, a.AppointmentTime
	a.Service, b.Service = b.Service, a.Service
}

// Relocate move um único agendamento para o slot livre descrito
// por um admin_move
func Relocate(ap *models.Appointment, slot SlotInfo) error {
	if slot.Time == "" {
		return NewValidationError("new_slot_info", "horário do novo slot é obrigatório")
	}

	if slot.Date != "" {
		d, err := time.Parse("2006-01-02", slot.Date)
		if err != nil {
			return NewValidationError("new_slot_info", "data do novo slot inválida")
		}
		ap.AppointmentDate = d
		ap.MonthYear = d.Format("2006-01")
	}

	ap.AppointmentTime = slot.Time
	if slot.Service != "" {
		ap.Service = slot.Service
	}
	return nil
}

// Respond grava a transição terminal na entidade
func Respond(req *models.SwapRequest, status Status, now time.Time) error {
	if err := CanRespond(Status(req.Status)); err != nil {
		return err
	}

	req.Status = string(status)
	req.RespondedAt = &now
	return nil
}

// ===============================
// Slot payload (admin_move)
// ===============================

type SlotInfo struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Service string `json:"service"`
}

func ParseSlotInfo(raw string) (SlotInfo, error) {
	var slot SlotInfo
	if raw == "" {
		return slot, NewValidationError("new_slot_info", "slot de destino ausente")
	}
	if err := json.Unmarshal([]byte(raw), &slot); err != nil {
		return slot, NewValidationError("new_slot_info", "payload do slot inválido")
	}
	return slot, nil
}

func (s SlotInfo) Encode() string {
	b, _ := json.Marshal(s)
	return string(b)
}
