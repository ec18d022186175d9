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

type RespondAdmin struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewRespondAdmin(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *RespondAdmin {
	return &RespondAdmin{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RespondAdmin) Execute(
	ctx context.Context,
	requestID uint,
	action string,
) (*models.SwapRequest, error) {

	status, err := domain.AdminActionStatus(action)
	if err != nil {
		return nil, err
	}

	req, err := uc.repo.GetSwapRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.RequestType != string(domain.TypeAdminMove) {
		return nil, domain.NewValidationError(
			"request_type",
			"somente solicitações admin_move podem ser tratadas aqui",
		)
	}

	resolved, err := uc.repo.Resolve(
		ctx,
		requestID,
		status,
		func(ctx context.Context, tx domain.Tx, locked *models.SwapRequest) error {
			if status != domain.StatusAccepted {
				return nil
			}
			return applyRelocation(ctx, tx, locked)
		},
	)
	if err != nil {
		return nil, err
	}

	uc.notifyClient(ctx, resolved, status)

	return resolved, nil
}

// applyRelocation move o agendamento da solicitante para o slot
// descrito em newSlotInfo; não há segundo agendamento para trocar
func applyRelocation(
	ctx context.Context,
	tx domain.Tx,
	req *models.SwapRequest,
) error {

	slot, err := domain.ParseSlotInfo(req.NewSlotInfo)
	if err != nil {
		return err
	}

	ap, err := tx.GetAppointmentForUpdate(ctx, req.RequesterAppointmentID)
	if err != nil {
		return domain.WrapMutation(err)
	}

	if err := domain.Relocate(ap, slot); err != nil {
		return err
	}

	return domain.WrapMutation(tx.SaveAppointment(ctx, ap))
}

// ======================================================
// NOTIFICATION
// ======================================================

func (uc *RespondAdmin) notifyClient(
	ctx context.Context,
	req *models.SwapRequest,
	status domain.Status,
) {
	if uc.notifier == nil {
		return
	}

	client, err := uc.repo.GetClient(ctx, req.RequesterClientID)
	if err != nil {
		return
	}

	if status == domain.StatusAccepted {
		text := fmt.Sprintf("Olá %s! O seu horário foi remarcado.", client.FullName)
		if ap, err := uc.repo.GetAppointment(ctx, req.RequesterAppointmentID); err == nil {
			text = fmt.Sprintf(
				"Olá %s! O seu horário foi remarcado para %s às %s (%s). Frannie NAILS 💅",
				client.FullName,
				ap.AppointmentDate.Format("02/01/2006"),
				ap.AppointmentTime,
				ap.Service,
			)
		}

		uc.notifier.Dispatch(notify.Message{
			Type:          "swap_response",
			Text:          text,
			Phone:         client.PhoneNumber,
			ClientID:      &req.RequesterClientID,
			AppointmentID: &req.RequesterAppointmentID,
		})
		return
	}

	uc.notifier.Dispatch(notify.Message{
		Type: "swap_response",
		Text: fmt.Sprintf(
			"Olá %s! O pedido de remarcação não pôde ser atendido. Frannie NAILS 💅",
			client.FullName,
		),
		Phone:    client.PhoneNumber,
		ClientID: &req.RequesterClientID,
	})
}
