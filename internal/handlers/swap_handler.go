package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/frannienails/salon-manager/internal/domain/swap"
	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	ucSwap "github.com/frannienails/salon-manager/internal/usecase/swap"
)

// ======================================================
// HANDLER
// ======================================================

type SwapHandler struct {
	createUC        *ucSwap.CreateSwapRequest
	respondClientUC *ucSwap.RespondClient
	respondAdminUC  *ucSwap.RespondAdmin
	listUC          *ucSwap.ListSwapRequests
	listClientUC    *ucSwap.ListClientSwapRequests
}

func NewSwapHandler(
	createUC *ucSwap.CreateSwapRequest,
	respondClientUC *ucSwap.RespondClient,
	respondAdminUC *ucSwap.RespondAdmin,
	listUC *ucSwap.ListSwapRequests,
	listClientUC *ucSwap.ListClientSwapRequests,
) *SwapHandler {
	return &SwapHandler{
		createUC:        createUC,
		respondClientUC: respondClientUC,
		respondAdminUC:  respondAdminUC,
		listUC:          listUC,
		listClientUC:    listClientUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSwapRequestBody struct {
	RequesterClientID      uint   `json:"requesterClientId" binding:"required"`
	RequesterAppointmentID uint   `json:"requesterAppointmentId" binding:"required"`
	TargetClientID         *uint  `json:"targetClientId"`
	TargetAppointmentID    *uint  `json:"targetAppointmentId"`
	RequestType            string `json:"requestType"`
	RequestMessage         string `json:"requestMessage"`

	NewSlotInfo *domain.SlotInfo `json:"newSlotInfo"`
}

type ClientRespondBody struct {
	ClientID uint   `json:"clientId" binding:"required"`
	Response string `json:"response" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *SwapHandler) Create(c *gin.Context) {
	var req CreateSwapRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cliente e agendamento são obrigatórios.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucSwap.CreateSwapRequestInput{
		RequesterClientID:      req.RequesterClientID,
		RequesterAppointmentID: req.RequesterAppointmentID,
		TargetClientID:         req.TargetClientID,
		TargetAppointmentID:    req.TargetAppointmentID,
		RequestType:            req.RequestType,
		RequestMessage:         req.RequestMessage,
		NewSlotInfo:            req.NewSlotInfo,
	})
	if err != nil {
		writeSwapError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// LIST
// ======================================================

func (h *SwapHandler) List(c *gin.Context) {
	reqs, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_swap_requests", "Erro ao carregar solicitações de troca.")
		return
	}

	httpresp.List(c, reqs)
}

func (h *SwapHandler) ListForClient(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "ID de cliente inválido.")
		return
	}

	view, err := h.listClientUC.Execute(c.Request.Context(), uint(clientID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_swap_requests", "Erro ao carregar solicitações.")
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// RESPOND (CLIENT)
// ======================================================

// RespondBody aceita o formato {clientId, response}
func (h *SwapHandler) RespondClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request_id", "ID de solicitação inválido.")
		return
	}

	var body ClientRespondBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cliente e resposta são obrigatórios.")
		return
	}

	updated, err := h.respondClientUC.Execute(
		c.Request.Context(),
		uint(id),
		body.Response,
		body.ClientID,
	)
	if err != nil {
		writeSwapError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// RespondClientAction aceita o formato /:id/:action com accept|reject
func (h *SwapHandler) RespondClientAction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request_id", "ID de solicitação inválido.")
		return
	}

	var body struct {
		ClientID uint `json:"clientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cliente é obrigatório.")
		return
	}

	updated, err := h.respondClientUC.Execute(
		c.Request.Context(),
		uint(id),
		c.Param("action"),
		body.ClientID,
	)
	if err != nil {
		writeSwapError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// RESPOND (ADMIN)
// ======================================================

func (h *SwapHandler) RespondAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request_id", "ID de solicitação inválido.")
		return
	}

	updated, err := h.respondAdminUC.Execute(
		c.Request.Context(),
		uint(id),
		c.Param("action"),
	)
	if err != nil {
		writeSwapError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeSwapError(c *gin.Context, err error) {
	switch {
	case domain.IsMutation(err):
		httperr.Internal(c, "swap_mutation_failed", "Erro ao aplicar a troca; nada foi alterado.")
	case domain.IsValidation(err):
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotAuthorized):
		httperr.Forbidden(c, httperr.CodeUnauthorized, "Não autorizado.")
	case errors.Is(err, domain.ErrNotPending):
		httperr.Conflict(c, httperr.CodeConflict, "Solicitação já respondida.")
	case domain.IsNotFound(err):
		httperr.NotFound(c, httperr.CodeNotFound, err.Error())
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
