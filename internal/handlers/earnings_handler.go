package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	"github.com/frannienails/salon-manager/internal/models"
	"github.com/frannienails/salon-manager/internal/pricing"
	"github.com/frannienails/salon-manager/internal/timezone"
)

type EarningsHandler struct {
	db *gorm.DB
	tz string
}

func NewEarningsHandler(db *gorm.DB, tz string) *EarningsHandler {
	return &EarningsHandler{db: db, tz: tz}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertEarningsRequest struct {
	Date        string `json:"date" binding:"required"`
	AmountCents int    `json:"amount_cents"`
	Notes       string `json:"notes"`
}

// ======================================================
// DAILY
// ======================================================

// Upsert grava o fechamento do dia; um registro por data
func (h *EarningsHandler) Upsert(c *gin.Context) {
	var req UpsertEarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Data é obrigatória.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	earnings := models.DailyEarnings{
		Date:        date,
		AmountCents: req.AmountCents,
		Notes:       req.Notes,
	}

	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount_cents", "notes", "updated_at"}),
		}).
		Create(&earnings).Error; err != nil {

		httperr.Internal(c, "failed_to_save_earnings", "Erro ao gravar fechamento.")
		return
	}

	httpresp.OK(c, earnings)
}

func (h *EarningsHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if month := c.Query("month"); month != "" {
		start, err := time.ParseInLocation("2006-01", month, timezone.Location(h.tz))
		if err != nil {
			httperr.BadRequest(c, "invalid_month", "Mês inválido, use AAAA-MM.")
			return
		}
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	}

	var entries []models.DailyEarnings
	if err := q.
		Order("date DESC").
		Find(&entries).Error; err != nil {

		httperr.Internal(c, "failed_to_list_earnings", "Erro ao carregar fechamentos.")
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// MONTHLY SUMMARY
// ======================================================

type serviceStat struct {
	Service    string `json:"service"`
	Count      int64  `json:"count"`
	PriceCents int    `json:"price_cents"`
	TotalCents int64  `json:"total_cents"`
}

// MonthlySummary agrega o fechamento registado e a estimativa
// por serviço dos agendamentos do mês
func (h *EarningsHandler) MonthlySummary(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().In(timezone.Location(h.tz)).Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido, use AAAA-MM.")
		return
	}

	start, _ := time.ParseInLocation("2006-01", month, timezone.Location(h.tz))

	var recorded int64
	if err := h.db.
		Model(&models.DailyEarnings{}).
		Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0)).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&recorded).Error; err != nil {

		httperr.Internal(c, "failed_to_summarize_earnings", "Erro ao calcular o resumo.")
		return
	}

	type serviceCount struct {
		Service string
		Count   int64
	}

	var counts []serviceCount
	if err := h.db.
		Model(&models.Appointment{}).
		Where("month_year = ?", month).
		Select("service, COUNT(*) AS count").
		Group("service").
		Scan(&counts).Error; err != nil {

		httperr.Internal(c, "failed_to_summarize_earnings", "Erro ao calcular o resumo.")
		return
	}

	stats := make([]serviceStat, 0, len(counts))
	var estimated int64
	for _, sc := range counts {
		price := pricing.ServicePrice(sc.Service)
		total := sc.Count * int64(price)
		estimated += total

		stats = append(stats, serviceStat{
			Service:    sc.Service,
			Count:      sc.Count,
			PriceCents: price,
			TotalCents: total,
		})
	}

	httpresp.OK(c, gin.H{
		"month":                 month,
		"recorded_total_cents":  recorded,
		"estimated_total_cents": estimated,
		"services":              stats,
	})
}
