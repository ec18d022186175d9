package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	"github.com/frannienails/salon-manager/internal/models"
	"github.com/frannienails/salon-manager/internal/notify"
)

type PreCheckHandler struct {
	db       *gorm.DB
	notifier *notify.Dispatcher
}

func NewPreCheckHandler(db *gorm.DB, notifier *notify.Dispatcher) *PreCheckHandler {
	return &PreCheckHandler{db: db, notifier: notifier}
}

type SubmitPreCheckRequest struct {
	ClientID    uint   `json:"clientId" binding:"required"`
	BrokenNails int    `json:"brokenNails"`
	Notes       string `json:"notes"`
}

func (h *PreCheckHandler) GetByAppointment(c *gin.Context) {
	var check models.PreAppointmentCheck
	if err := h.db.
		Where("appointment_id = ?", c.Param("appointmentId")).
		First(&check).Error; err != nil {

		httperr.NotFound(c, "pre_check_not_found", "Pre-check não encontrado.")
		return
	}

	httpresp.OK(c, check)
}

// Submit fecha o pre-check da cliente; o valor do lembrete do dia
// seguinte usa as unhas quebradas informadas aqui
func (h *PreCheckHandler) Submit(c *gin.Context) {
	var req SubmitPreCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cliente é obrigatória.")
		return
	}
	if req.BrokenNails < 0 || req.BrokenNails > 10 {
		httperr.BadRequest(c, "invalid_broken_nails", "Número de unhas inválido.")
		return
	}

	var check models.PreAppointmentCheck
	if err := h.db.
		Preload("Appointment").
		Where("appointment_id = ?", c.Param("appointmentId")).
		First(&check).Error; err != nil {

		httperr.NotFound(c, "pre_check_not_found", "Pre-check não encontrado.")
		return
	}

	if check.Appointment.ClientID != req.ClientID {
		httperr.Forbidden(c, "not_authorized", "Este horário não é seu.")
		return
	}
	if check.Completed {
		httperr.BadRequest(c, "pre_check_completed", "Pre-check já foi respondido.")
		return
	}

	now := time.Now()
	check.BrokenNails = req.BrokenNails
	check.Notes = req.Notes
	check.Completed = true
	check.CompletedAt = &now

	if err := h.db.Save(&check).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pre_check", "Erro ao gravar pre-check.")
		return
	}

	if req.BrokenNails > 0 {
		var client models.Client
		if err := h.db.First(&client, req.ClientID).Error; err == nil {
			h.notifier.Dispatch(notify.Message{
				Type:          "pre_check_answered",
				Text:          client.FullName + " respondeu o pre-check com unhas quebradas.",
				ClientID:      &client.ID,
				AppointmentID: &check.AppointmentID,
			})
		}
	}

	httpresp.OK(c, check)
}
