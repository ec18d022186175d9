package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/frannienails/salon-manager/internal/domain/swap"
	"github.com/frannienails/salon-manager/internal/models"
)

type SwapGormRepository struct {
	db *gorm.DB
}

func NewSwapGormRepository(db *gorm.DB) *SwapGormRepository {
	return &SwapGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *SwapGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *SwapGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Swap Request
// --------------------------------------------------

func (r *SwapGormRepository) CreateSwapRequest(
	ctx context.Context,
	req *models.SwapRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *SwapGormRepository) GetSwapRequest(
	ctx context.Context,
	id uint,
) (*models.SwapRequest, error) {

	var req models.SwapRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *SwapGormRepository) ListSwapRequests(
	ctx context.Context,
) ([]models.SwapRequest, error) {

	var reqs []models.SwapRequest
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *SwapGormRepository) ListSwapRequestsForTarget(
	ctx context.Context,
	clientID uint,
) ([]models.SwapRequest, error) {

	var reqs []models.SwapRequest
	if err := r.db.WithContext(ctx).
		Where("target_client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *SwapGormRepository) ListSwapRequestsByRequester(
	ctx context.Context,
	clientID uint,
) ([]models.SwapRequest, error) {

	var reqs []models.SwapRequest
	if err := r.db.WithContext(ctx).
		Where("requester_client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// --------------------------------------------------
// Resolve (transição + mutação atômicas)
// --------------------------------------------------

// Resolve trava a linha da solicitação com FOR UPDATE; de duas
// respostas concorrentes, a segunda encontra status != pending e
// recebe ErrNotPending sem reaplicar a mutação.
func (r *SwapGormRepository) Resolve(
	ctx context.Context,
	id uint,
	status domain.Status,
	apply func(ctx context.Context, tx domain.Tx, req *models.SwapRequest) error,
) (*models.SwapRequest, error) {

	var resolved *models.SwapRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var req models.SwapRequest
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, id).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := domain.CanRespond(domain.Status(req.Status)); err != nil {
			return err
		}

		if apply != nil {
			if err := apply(ctx, &gormTx{db: tx}, &req); err != nil {
				return err
			}
		}

		if err := domain.Respond(&req, status, time.Now()); err != nil {
			return err
		}

		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		resolved = &req
		return nil
	})

	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// gormTx expõe as operações de agendamento dentro da transação
type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) GetAppointmentForUpdate(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (t *gormTx) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return t.db.WithContext(ctx).Save(ap).Error
}

// Compile-time checks
var (
	_ domain.Repository = (*SwapGormRepository)(nil)
	_ domain.Tx         = (*gormTx)(nil)
)
