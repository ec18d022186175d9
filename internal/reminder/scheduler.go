package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/models"
	"github.com/frannienails/salon-manager/internal/notify"
	"github.com/frannienails/salon-manager/internal/pricing"
)

const (
	preCheckHour = 12
	reminderHour = 18
)

// Scheduler roda os avisos diários em background. Cada tarefa marca
// um SETNX por dia no Redis, então restart do processo não duplica
// envio.
type Scheduler struct {
	db       *gorm.DB
	rdb      *redis.Client
	notifier *notify.Dispatcher
	logger   *zap.Logger
	loc      *time.Location
	stopChan chan struct{}
}

func NewScheduler(
	db *gorm.DB,
	rdb *redis.Client,
	notifier *notify.Dispatcher,
	logger *zap.Logger,
	loc *time.Location,
) *Scheduler {
	return &Scheduler{
		db:       db,
		rdb:      rdb,
		notifier: notifier,
		logger:   logger,
		loc:      loc,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("starting reminder scheduler")
	go s.run(ctx)
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping reminder scheduler")
	close(s.stopChan)
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now().In(s.loc)
			if now.Hour() >= preCheckHour {
				s.runOncePerDay(ctx, "precheck", now, s.sendPreCheckPrompts)
			}
			if now.Hour() >= reminderHour {
				s.runOncePerDay(ctx, "reminder", now, s.sendTomorrowReminders)
			}
		case <-s.stopChan:
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ctx.Done():
			s.logger.Info("reminder scheduler cancelled")
			return
		}
	}
}

func (s *Scheduler) runOncePerDay(
	ctx context.Context,
	kind string,
	now time.Time,
	job func(ctx context.Context, now time.Time),
) {
	key := fmt.Sprintf("reminder:%s:%s", kind, now.Format("2006-01-02"))

	ok, err := s.rdb.SetNX(ctx, key, "1", 48*time.Hour).Result()
	if err != nil {
		s.logger.Error("failed to acquire daily marker",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}
	if !ok {
		return
	}

	s.logger.Info("running daily job", zap.String("kind", kind))
	job(ctx, now)
}

// sendTomorrowReminders avisa cada cliente do horário de amanhã com o
// valor a levar: serviço + unhas quebradas do pre-check - anticipo
func (s *Scheduler) sendTomorrowReminders(ctx context.Context, now time.Time) {
	for _, ap := range s.tomorrowAppointments(ctx, now) {
		var client models.Client
		if err := s.db.WithContext(ctx).First(&client, ap.ClientID).Error; err != nil {
			continue
		}
		if !client.IsActive || client.PhoneNumber == "" {
			continue
		}

		brokenNails := 0
		var check models.PreAppointmentCheck
		if err := s.db.WithContext(ctx).
			Where("appointment_id = ? AND completed = ?", ap.ID, true).
			First(&check).Error; err == nil {
			brokenNails = check.BrokenNails
		}

		amount := pricing.ReminderAmount(ap.Service, brokenNails, client.AdvanceBalance)

		text := fmt.Sprintf(
			"Olá %s! Lembrete do seu horário de amanhã:\n📅 %s\n⏰ %s\n💅 %s\n\n💰 Valor a levar: €%d,%02d\n\nAté amanhã! ✨\nFrannie NAILS 💅",
			client.FullName,
			ap.AppointmentDate.Format("02/01/2006"),
			ap.AppointmentTime,
			ap.Service,
			amount/100, amount%100,
		)

		s.notifier.Dispatch(notify.Message{
			Type:          "service_reminder",
			Text:          text,
			Phone:         client.PhoneNumber,
			ClientID:      &ap.ClientID,
			AppointmentID: &ap.ID,
		})
	}
}

// sendPreCheckPrompts abre o pre-check dos horários de amanhã que
// ainda não têm um e pede a resposta da cliente
func (s *Scheduler) sendPreCheckPrompts(ctx context.Context, now time.Time) {
	for _, ap := range s.tomorrowAppointments(ctx, now) {
		var existing models.PreAppointmentCheck
		err := s.db.WithContext(ctx).
			Where("appointment_id = ?", ap.ID).
			First(&existing).Error
		if err == nil {
			continue
		}

		check := models.PreAppointmentCheck{AppointmentID: ap.ID}
		if err := s.db.WithContext(ctx).Create(&check).Error; err != nil {
			s.logger.Error("failed to create pre-check",
				zap.Uint("appointment_id", ap.ID),
				zap.Error(err),
			)
			continue
		}

		var client models.Client
		if err := s.db.WithContext(ctx).First(&client, ap.ClientID).Error; err != nil {
			continue
		}
		if !client.IsActive || client.PhoneNumber == "" {
			continue
		}

		s.notifier.Dispatch(notify.Message{
			Type:          "pre_check",
			Text:          fmt.Sprintf("Olá %s! Amanhã é o seu horário das %s. Alguma unha quebrada para eu preparar o material? Responda aqui. 💅", client.FullName, ap.AppointmentTime),
			Phone:         client.PhoneNumber,
			ClientID:      &ap.ClientID,
			AppointmentID: &ap.ID,
		})
	}
}

func (s *Scheduler) tomorrowAppointments(ctx context.Context, now time.Time) []models.Appointment {
	tomorrow := now.AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, s.loc)
	end := start.Add(24 * time.Hour)

	var aps []models.Appointment
	if err := s.db.WithContext(ctx).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {

		s.logger.Error("failed to list tomorrow appointments", zap.Error(err))
		return nil
	}
	return aps
}
