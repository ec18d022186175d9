package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frannienails/salon-manager/internal/domain/schedule"
	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	"github.com/frannienails/salon-manager/internal/models"
	"github.com/frannienails/salon-manager/internal/notify"
	"github.com/frannienails/salon-manager/internal/pricing"
	"github.com/frannienails/salon-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db       *gorm.DB
	notifier *notify.Dispatcher
	tz       string
}

func NewAppointmentHandler(db *gorm.DB, notifier *notify.Dispatcher, tz string) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		notifier: notifier,
		tz:       tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Service  string `json:"service" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !schedule.IsValidSlot(req.Time) {
		httperr.BadRequest(c, "invalid_time_slot", "Horário fora da grade do salão.")
		return
	}

	if !pricing.IsKnownService(req.Service) {
		httperr.BadRequest(c, "unknown_service", "Serviço não encontrado na tabela.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}
	if !client.IsActive {
		httperr.BadRequest(c, "client_inactive", "Cliente desativada.")
		return
	}

	var created models.Appointment

	err = h.db.Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"appointment_date = ? AND appointment_time = ?",
				date, req.Time,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_slot_taken")
		}

		ap := models.Appointment{
			ClientID:        client.ID,
			AppointmentDate: date,
			AppointmentTime: req.Time,
			Service:         req.Service,
			MonthYear:       date.Format("2006-01"),
		}

		if err := tx.Create(&ap).Error; err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		if httperr.IsBusiness(err, "time_slot_taken") {
			httperr.BadRequest(c, "time_slot_taken", "Horário já ocupado.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.notifier.Dispatch(notify.Message{
		Type: "appointment_created",
		Text: fmt.Sprintf(
			"Olá %s! O seu horário foi confirmado: %s às %s (%s). Frannie NAILS 💅",
			client.FullName,
			created.AppointmentDate.Format("02/01/2006"),
			created.AppointmentTime,
			created.Service,
		),
		Phone:         client.PhoneNumber,
		ClientID:      &client.ID,
		AppointmentID: &created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.
		Preload("Client").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var aps []models.Appointment
	if err := h.db.
		Preload("Client").
		Where("appointment_date = ?", date).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.
		Where("client_id = ?", c.Param("clientId")).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

// AvailableSlots devolve os horários livres de uma data
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var taken []models.Appointment
	if err := h.db.
		Select("appointment_time").
		Where("appointment_date = ?", date).
		Find(&taken).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao verificar horários.")
		return
	}

	occupied := make(map[string]bool, len(taken))
	for _, ap := range taken {
		occupied[ap.AppointmentTime] = true
	}

	free := make([]string, 0, len(schedule.DailySlots))
	for _, slot := range schedule.DailySlots {
		if !occupied[slot] {
			free = append(free, slot)
		}
	}

	httpresp.OK(c, gin.H{"date": dateStr, "slots": free})
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	var ap models.Appointment
	if err := h.db.First(&ap, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, ap.ClientID).Error; err == nil {
		h.notifier.Dispatch(notify.Message{
			Type: "appointment_cancelled",
			Text: fmt.Sprintf(
				"Olá %s! O seu horário de %s às %s foi cancelado. Reagendamos quando quiser! Frannie NAILS 💅",
				client.FullName,
				ap.AppointmentDate.Format("02/01/2006"),
				ap.AppointmentTime,
			),
			Phone:    client.PhoneNumber,
			ClientID: &client.ID,
		})
	}

	httpresp.OK(c, gin.H{"deleted": ap.ID})
}
