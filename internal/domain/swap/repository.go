package swap

import (
	"context"

	"github.com/frannienails/salon-manager/internal/models"
)

// Tx expõe as operações de agendamento disponíveis dentro da
// transação de resolução
type Tx interface {
	GetAppointmentForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Swap Request --------
	CreateSwapRequest(
		ctx context.Context,
		req *models.SwapRequest,
	) error

	GetSwapRequest(
		ctx context.Context,
		id uint,
	) (*models.SwapRequest, error)

	ListSwapRequests(
		ctx context.Context,
	) ([]models.SwapRequest, error)

	ListSwapRequestsForTarget(
		ctx context.Context,
		clientID uint,
	) ([]models.SwapRequest, error)

	ListSwapRequestsByRequester(
		ctx context.Context,
		clientID uint,
	) ([]models.SwapRequest, error)

	// Resolve trava a linha da solicitação, confere que ainda está
	// pending, executa apply e grava status + respondedAt. Qualquer
	// erro desfaz a transação inteira e a solicitação segue pending.
	Resolve(
		ctx context.Context,
		id uint,
		status Status,
		apply func(ctx context.Context, tx Tx, req *models.SwapRequest) error,
	) (*models.SwapRequest, error)
}
