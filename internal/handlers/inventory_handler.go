package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	"github.com/frannienails/salon-manager/internal/models"
	"github.com/frannienails/salon-manager/internal/notify"
)

type InventoryHandler struct {
	db       *gorm.DB
	notifier *notify.Dispatcher
}

func NewInventoryHandler(db *gorm.DB, notifier *notify.Dispatcher) *InventoryHandler {
	return &InventoryHandler{db: db, notifier: notifier}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateInventoryItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"min_threshold"`
	Notes        string `json:"notes"`
}

type UpdateInventoryItemRequest struct {
	Name         *string `json:"name,omitempty"`
	Category     *string `json:"category,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
	MinThreshold *int    `json:"min_threshold,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome do produto é obrigatório.")
		return
	}

	item := models.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		MinThreshold: req.MinThreshold,
		Notes:        req.Notes,
	}
	if item.MinThreshold <= 0 {
		item.MinThreshold = 1
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_item", "Erro ao criar produto.")
		return
	}

	httpresp.Created(c, item)
}

func (h *InventoryHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("query"))); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+search+"%")
	}

	var items []models.InventoryItem
	if err := q.
		Order("category ASC, name ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_items", "Erro ao carregar produtos.")
		return
	}

	httpresp.List(c, items)
}

// LowStock lista os produtos no ponto de reposição
func (h *InventoryHandler) LowStock(c *gin.Context) {
	var items []models.InventoryItem
	if err := h.db.
		Where("quantity <= min_threshold").
		Order("quantity ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_items", "Erro ao carregar produtos.")
		return
	}

	httpresp.List(c, items)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var item models.InventoryItem
	if err := h.db.First(&item, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "item_not_found", "Produto não encontrado.")
		return
	}

	var req UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.MinThreshold != nil {
		item.MinThreshold = *req.MinThreshold
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Erro ao atualizar produto.")
		return
	}

	httpresp.OK(c, item)
}

// AdjustStock aplica delta positivo ou negativo; nunca deixa
// a quantidade negativa
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var item models.InventoryItem
	if err := h.db.First(&item, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "item_not_found", "Produto não encontrado.")
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Delta é obrigatório.")
		return
	}

	item.Quantity += req.Delta
	if item.Quantity < 0 {
		item.Quantity = 0
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Erro ao atualizar estoque.")
		return
	}

	if item.Quantity <= item.MinThreshold {
		h.notifier.Dispatch(notify.Message{
			Type: "low_stock",
			Text: "Estoque baixo: " + item.Name,
		})
	}

	httpresp.OK(c, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	var item models.InventoryItem
	if err := h.db.First(&item, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "item_not_found", "Produto não encontrado.")
		return
	}

	if err := h.db.Delete(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_item", "Erro ao remover produto.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": item.ID})
}
