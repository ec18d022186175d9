package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	"github.com/frannienails/salon-manager/internal/models"
	"github.com/frannienails/salon-manager/internal/notify"
	"github.com/frannienails/salon-manager/internal/validators"
)

type ClientHandler struct {
	db       *gorm.DB
	notifier *notify.Dispatcher
}

func NewClientHandler(db *gorm.DB, notifier *notify.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, notifier: notifier}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientAccessRequest struct {
	UniqueCode  string `json:"uniqueCode" binding:"required"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

type UpdateClientRequest struct {
	FullName       *string `json:"full_name,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	CreditBalance  *int    `json:"credit_balance,omitempty"`
	AdvanceBalance *int    `json:"advance_balance,omitempty"`
}

// ======================================================
// ACCESS (CLIENT)
// ======================================================

// Access identifica a cliente pelo código; no primeiro uso de um
// código de acesso válido, o cadastro é criado e o código marcado
// como usado
func (h *ClientHandler) Access(c *gin.Context) {
	var req ClientAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Código de acesso é obrigatório.")
		return
	}

	code := strings.TrimSpace(req.UniqueCode)

	var client models.Client
	err := h.db.Where("unique_code = ?", code).First(&client).Error
	if err == nil {
		if !client.IsActive {
			httperr.Forbidden(c, "client_inactive", "Cadastro desativado. Fale com o salão.")
			return
		}
		httpresp.OK(c, client)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	// primeiro acesso: precisa de um código emitido e não usado
	var access models.AccessCode
	if err := h.db.
		Where("unique_code = ? AND used_by_client_id IS NULL", code).
		First(&access).Error; err != nil {

		httperr.NotFound(c, "invalid_access_code", "Código de acesso inválido.")
		return
	}

	if req.FullName == "" || req.PhoneNumber == "" {
		httperr.BadRequest(c, "invalid_request", "Nome e telefone são obrigatórios no primeiro acesso.")
		return
	}
	if !validators.IsPhoneValid(req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	client = models.Client{
		UniqueCode:   code,
		PersonalCode: personalCodeFrom(req.FullName),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		IsActive:     true,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		now := time.Now()
		access.UsedByClientID = &client.ID
		access.UsedAt = &now
		return tx.Save(&access).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cadastro.")
		return
	}

	h.notifier.Dispatch(notify.Message{
		Type:     "client_registered",
		Text:     fmt.Sprintf("Nova cliente cadastrada: %s (%s)", client.FullName, client.PhoneNumber),
		ClientID: &client.ID,
	})

	httpresp.Created(c, client)
}

// código curto exibido no app: inicial + sufixo numérico do id
func personalCodeFrom(fullName string) string {
	initial := "C"
	if name := strings.TrimSpace(fullName); name != "" {
		initial = strings.ToUpper(name[:1])
	}
	return fmt.Sprintf("%s%03d", initial, time.Now().UnixNano()%1000)
}

// ======================================================
// LIST (ADMIN)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR phone_number LIKE ? OR LOWER(unique_code) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// UPDATE (ADMIN)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	balanceChanged := false

	if req.FullName != nil {
		client.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		if !validators.IsPhoneValid(*req.PhoneNumber) {
			httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
			return
		}
		client.PhoneNumber = *req.PhoneNumber
	}
	if req.CreditBalance != nil {
		client.CreditBalance = *req.CreditBalance
		balanceChanged = true
	}
	if req.AdvanceBalance != nil {
		client.AdvanceBalance = *req.AdvanceBalance
		balanceChanged = true
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	if balanceChanged {
		h.notifier.Dispatch(notify.Message{
			Type: "balance_updated",
			Text: fmt.Sprintf(
				"Olá %s! O seu saldo foi atualizado: crédito €%d,%02d, anticipo €%d,%02d. Frannie NAILS 💅",
				client.FullName,
				client.CreditBalance/100, client.CreditBalance%100,
				client.AdvanceBalance/100, client.AdvanceBalance%100,
			),
			Phone:    client.PhoneNumber,
			ClientID: &client.ID,
		})
	}

	httpresp.OK(c, client)
}

// ======================================================
// TOGGLE ACTIVE (ADMIN)
// ======================================================

// clientes nunca são apagadas; desativação é o caminho de saída
func (h *ClientHandler) ToggleActive(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	client.IsActive = !client.IsActive
	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, client)
}
