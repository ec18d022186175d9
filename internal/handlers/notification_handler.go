package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	"github.com/frannienails/salon-manager/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if c.Query("unread") == "true" {
		q = q.Where("read = ?", false)
	}

	var notifications []models.AdminNotification
	if err := q.
		Order("created_at DESC").
		Limit(200).
		Find(&notifications).Error; err != nil {

		httperr.Internal(c, "failed_to_list_notifications", "Erro ao carregar notificações.")
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) ListUnread(c *gin.Context) {
	var notifications []models.AdminNotification
	if err := h.db.
		Where("read = ?", false).
		Order("created_at DESC").
		Limit(200).
		Find(&notifications).Error; err != nil {

		httperr.Internal(c, "failed_to_list_notifications", "Erro ao carregar notificações.")
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var notification models.AdminNotification
	if err := h.db.First(&notification, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	notification.Read = true
	if err := h.db.Save(&notification).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notification", "Erro ao atualizar notificação.")
		return
	}

	httpresp.OK(c, notification)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.db.
		Model(&models.AdminNotification{}).
		Where("read = ?", false).
		Update("read", true).Error; err != nil {

		httperr.Internal(c, "failed_to_update_notifications", "Erro ao atualizar notificações.")
		return
	}

	httpresp.OK(c, gin.H{"updated": true})
}
