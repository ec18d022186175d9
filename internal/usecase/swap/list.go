package swap

import (
	"context"

	domain "github.com/frannienails/salon-manager/internal/domain/swap"
	"github.com/frannienails/salon-manager/internal/models"
)

type ListSwapRequests struct {
	repo domain.Repository
}

func NewListSwapRequests(repo domain.Repository) *ListSwapRequests {
	return &ListSwapRequests{repo: repo}
}

func (uc *ListSwapRequests) Execute(
	ctx context.Context,
) ([]models.SwapRequest, error) {
	return uc.repo.ListSwapRequests(ctx)
}

// ======================================================
// PER-CLIENT VIEW
// ======================================================

type ClientSwapRequests struct {
	PendingForResponse []models.SwapRequest `json:"pendingForResponse"`
	MyRequests         []models.SwapRequest `json:"myRequests"`
}

type ListClientSwapRequests struct {
	repo domain.Repository
}

func NewListClientSwapRequests(repo domain.Repository) *ListClientSwapRequests {
	return &ListClientSwapRequests{repo: repo}
}

func (uc *ListClientSwapRequests) Execute(
	ctx context.Context,
	clientID uint,
) (*ClientSwapRequests, error) {

	targeted, err := uc.repo.ListSwapRequestsForTarget(ctx, clientID)
	if err != nil {
		return nil, err
	}

	pending := make([]models.SwapRequest, 0, len(targeted))
	for _, req := range targeted {
		if req.Status == string(domain.StatusPending) {
			pending = append(pending, req)
		}
	}

	mine, err := uc.repo.ListSwapRequestsByRequester(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &ClientSwapRequests{
		PendingForResponse: pending,
		MyRequests:         mine,
	}, nil
}
