package swap

import (
	"context"
	"fmt"

	domain "github.com/frannienails/salon-manager/internal/domain/swap"
	"github.com/frannienails/salon-manager/internal/models"
	"github.com/frannienails/salon-manager/internal/notify"
)

// ======================================================
// USE CASE
// ======================================================

type RespondClient struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewRespondClient(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *RespondClient {
	return &RespondClient{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RespondClient) Execute(
	ctx context.Context,
	requestID uint,
	action string,
	respondingClientID uint,
) (*models.SwapRequest, error) {

	status, err := domain.ClientActionStatus(action)
	if err != nil {
		return nil, err
	}

	req, err := uc.repo.GetSwapRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.RequestType != string(domain.TypeClientSwap) {
		return nil, domain.NewValidationError(
			"request_type",
			"somente solicitações client_swap podem ser respondidas por clientes",
		)
	}

	if req.TargetClientID == nil || *req.TargetClientID != respondingClientID {
		return nil, domain.ErrNotAuthorized
	}

	resolved, err := uc.repo.Resolve(
		ctx,
		requestID,
		status,
		func(ctx context.Context, tx domain.Tx, locked *models.SwapRequest) error {
			if status != domain.StatusAccepted {
				return nil
			}
			return applyExchange(ctx, tx, locked)
		},
	)
	if err != nil {
		return nil, err
	}

	uc.notifyOutcome(ctx, resolved, status)

	return resolved, nil
}

// applyExchange troca horário e serviço entre os dois agendamentos
// vinculados; os registros continuam com as clientes originais
func applyExchange(
	ctx context.Context,
	tx domain.Tx,
	req *models.SwapRequest,
) error {

	if req.TargetAppointmentID == nil {
		return domain.NewValidationError(
			"target_appointment_id",
			"solicitação sem agendamento de destino",
		)
	}

	requesterAp, err := tx.GetAppointmentForUpdate(ctx, req.RequesterAppointmentID)
	if err != nil {
		return domain.WrapMutation(err)
	}

	targetAp, err := tx.GetAppointmentForUpdate(ctx, *req.TargetAppointmentID)
	if err != nil {
		return domain.WrapMutation(err)
	}

	domain.ExchangeSlots(requesterAp, targetAp)

	if err := tx.SaveAppointment(ctx, requesterAp); err != nil {
		return domain.WrapMutation(err)
	}
	return domain.WrapMutation(tx.SaveAppointment(ctx, targetAp))
}

// ======================================================
// NOTIFICATION
// ======================================================

func (uc *RespondClient) notifyOutcome(
	ctx context.Context,
	req *models.SwapRequest,
	status domain.Status,
) {
	if uc.notifier == nil {
		return
	}

	requester, err := uc.repo.GetClient(ctx, req.RequesterClientID)
	if err != nil {
		return
	}

	target := &models.Client{}
	if req.TargetClientID != nil {
		if t, err := uc.repo.GetClient(ctx, *req.TargetClientID); err == nil {
			target = t
		}
	}

	if status == domain.StatusAccepted {
		text := fmt.Sprintf(
			"%s ACEITOU a troca de horário com %s!",
			target.FullName,
			requester.FullName,
		)

		if ap, err := uc.repo.GetAppointment(ctx, req.RequesterAppointmentID); err == nil {
			text += fmt.Sprintf(
				" %s agora tem %s às %s (%s)",
				requester.FullName,
				ap.AppointmentDate.Format("02/01"),
				ap.AppointmentTime,
				ap.Service,
			)
		}
		if req.TargetAppointmentID != nil {
			if ap, err := uc.repo.GetAppointment(ctx, *req.TargetAppointmentID); err == nil {
				text += fmt.Sprintf(
					"; %s ficou com %s às %s (%s)",
					target.FullName,
					ap.AppointmentDate.Format("02/01"),
					ap.AppointmentTime,
					ap.Service,
				)
			}
		}

		uc.notifier.Dispatch(notify.Message{
			Type:     "swap_accepted",
			Text:     text,
			ClientID: &req.RequesterClientID,
		})
		return
	}

	uc.notifier.Dispatch(notify.Message{
		Type: "swap_rejected",
		Text: fmt.Sprintf(
			"%s recusou a troca de horário pedida por %s.",
			target.FullName,
			requester.FullName,
		),
		ClientID: &req.RequesterClientID,
	})
}
