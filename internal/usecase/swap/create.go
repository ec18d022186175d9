package swap

import (
	"context"

	domain "github.com/frannienails/salon-manager/internal/domain/swap"
	"github.com/frannienails/salon-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSwapRequestInput struct {
	RequesterClientID      uint
	RequesterAppointmentID uint

	TargetClientID      *uint
	TargetAppointmentID *uint

	RequestType    string
	RequestMessage string

	NewSlotInfo *domain.SlotInfo
}

// ======================================================
// USE CASE
// ======================================================

type CreateSwapRequest struct {
	repo domain.Repository
}

func NewCreateSwapRequest(repo domain.Repository) *CreateSwapRequest {
	return &CreateSwapRequest{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSwapRequest) Execute(
	ctx context.Context,
	in CreateSwapRequestInput,
) (*models.SwapRequest, error) {

	if in.RequesterClientID == 0 || in.RequesterAppointmentID == 0 {
		return nil, domain.NewValidationError(
			"requester",
			"cliente e agendamento solicitantes são obrigatórios",
		)
	}

	reqType := domain.RequestType(in.RequestType)
	if reqType == "" {
		reqType = domain.TypeClientSwap
	}
	if reqType != domain.TypeClientSwap && reqType != domain.TypeAdminMove {
		return nil, domain.NewValidationError(
			"request_type",
			"tipo de solicitação desconhecido",
		)
	}

	// troca entre clientes exige os dois lados
	if reqType == domain.TypeClientSwap {
		if in.TargetClientID == nil || *in.TargetClientID == 0 ||
			in.TargetAppointmentID == nil || *in.TargetAppointmentID == 0 {
			return nil, domain.NewValidationError(
				"target",
				"para trocas entre clientes todos os campos são obrigatórios",
			)
		}
	}

	if _, err := uc.repo.GetClient(ctx, in.RequesterClientID); err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetAppointment(ctx, in.RequesterAppointmentID); err != nil {
		return nil, err
	}

	if reqType == domain.TypeClientSwap {
		if _, err := uc.repo.GetClient(ctx, *in.TargetClientID); err != nil {
			return nil, err
		}
		if _, err := uc.repo.GetAppointment(ctx, *in.TargetAppointmentID); err != nil {
			return nil, err
		}
	}

	req := &models.SwapRequest{
		RequesterClientID:      in.RequesterClientID,
		RequesterAppointmentID: in.RequesterAppointmentID,
		TargetClientID:         in.TargetClientID,
		TargetAppointmentID:    in.TargetAppointmentID,
		RequestType:            string(reqType),
		Status:                 string(domain.InitialStatus()),
		RequestMessage:         in.RequestMessage,
	}

	if in.NewSlotInfo != nil {
		req.NewSlotInfo = in.NewSlotInfo.Encode()
	}

	// nenhuma notificação na criação; os avisos saem na resposta
	if err := uc.repo.CreateSwapRequest(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}
