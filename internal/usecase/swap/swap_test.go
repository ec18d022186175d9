package swap

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/frannienails/salon-manager/internal/domain/swap"
	"github.com/frannienails/salon-manager/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment
	requests     map[uint]*models.SwapRequest
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      map[uint]*models.Client{},
		appointments: map[uint]*models.Appointment{},
		requests:     map[uint]*models.SwapRequest{},
	}
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		return ap, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *fakeRepo) CreateSwapRequest(_ context.Context, req *models.SwapRequest) error {
	r.nextID++
	req.ID = r.nextID
	req.CreatedAt = time.Now()
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRepo) GetSwapRequest(_ context.Context, id uint) (*models.SwapRequest, error) {
	if req, ok := r.requests[id]; ok {
		cp := *req
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepo) ListSwapRequests(_ context.Context) ([]models.SwapRequest, error) {
	out := make([]models.SwapRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (r *fakeRepo) ListSwapRequestsForTarget(_ context.Context, clientID uint) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, req := range r.requests {
		if req.TargetClientID != nil && *req.TargetClientID == clientID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListSwapRequestsByRequester(_ context.Context, clientID uint) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, req := range r.requests {
		if req.RequesterClientID == clientID {
			out = append(out, *req)
		}
	}
	return out, nil
}

// Resolve imita o contrato da implementação real: apply roda numa
// cópia e só é efetivado junto com a transição de status
func (r *fakeRepo) Resolve(
	ctx context.Context,
	id uint,
	status domain.Status,
	apply func(ctx context.Context, tx domain.Tx, req *models.SwapRequest) error,
) (*models.SwapRequest, error) {

	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := domain.CanRespond(domain.Status(req.Status)); err != nil {
		return nil, err
	}

	scratch := make(map[uint]*models.Appointment, len(r.appointments))
	for apID, ap := range r.appointments {
		cp := *ap
		scratch[apID] = &cp
	}

	cp := *req
	if err := apply(ctx, &fakeTx{appointments: scratch}, &cp); err != nil {
		return nil, err
	}

	if err := domain.Respond(&cp, status, time.Now()); err != nil {
		return nil, err
	}

	r.appointments = scratch
	*req = cp
	return req, nil
}

type fakeTx struct {
	appointments map[uint]*models.Appointment
}

func (t *fakeTx) GetAppointmentForUpdate(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := t.appointments[id]; ok {
		return ap, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (t *fakeTx) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	t.appointments[ap.ID] = ap
	return nil
}

// ======================================================
// FIXTURES
// ======================================================

func uintPtr(v uint) *uint { return &v }

func seedExchange(repo *fakeRepo) *models.SwapRequest {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	repo.clients[1] = &models.Client{ID: 1, FullName: "Ana", IsActive: true}
	repo.clients[2] = &models.Client{ID: 2, FullName: "Bruna", IsActive: true}

	repo.appointments[10] = &models.Appointment{
		ID: 10, ClientID: 1,
		AppointmentDate: date, AppointmentTime: "10:00", Service: "Gel",
	}
	repo.appointments[20] = &models.Appointment{
		ID: 20, ClientID: 2,
		AppointmentDate: date, AppointmentTime: "14:00", Service: "Ricostruzione",
	}

	req := &models.SwapRequest{
		RequesterClientID:      1,
		RequesterAppointmentID: 10,
		TargetClientID:         uintPtr(2),
		TargetAppointmentID:    uintPtr(20),
		RequestType:            string(domain.TypeClientSwap),
		Status:                 string(domain.StatusPending),
	}
	_ = repo.CreateSwapRequest(context.Background(), req)
	return req
}

// ======================================================
// CREATE
// ======================================================

func TestCreateSwapRequestStartsPending(t *testing.T) {
	repo := newFakeRepo()
	seedExchange(repo)
	uc := NewCreateSwapRequest(repo)

	req, err := uc.Execute(context.Background(), CreateSwapRequestInput{
		RequesterClientID:      1,
		RequesterAppointmentID: 10,
		TargetClientID:         uintPtr(2),
		TargetAppointmentID:    uintPtr(20),
		RequestMessage:         "podemos trocar?",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if req.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q, want pending", req.Status)
	}
	if req.RequestType != string(domain.TypeClientSwap) {
		t.Fatalf("type = %q, want client_swap by default", req.RequestType)
	}
	if req.RespondedAt != nil {
		t.Fatal("respondedAt must be nil on creation")
	}
}

func TestCreateSwapRequestValidation(t *testing.T) {
	repo := newFakeRepo()
	seedExchange(repo)
	uc := NewCreateSwapRequest(repo)

	cases := []struct {
		name string
		in   CreateSwapRequestInput
	}{
		{"missing requester", CreateSwapRequestInput{
			RequesterAppointmentID: 10,
		}},
		{"client_swap without target", CreateSwapRequestInput{
			RequesterClientID:      1,
			RequesterAppointmentID: 10,
		}},
		{"unknown type", CreateSwapRequestInput{
			RequesterClientID:      1,
			RequesterAppointmentID: 10,
			RequestType:            "barter",
		}},
	}

	for _, tt := range cases {
		if _, err := uc.Execute(context.Background(), tt.in); !domain.IsValidation(err) {
			t.Fatalf("%s: err = %v, want validation error", tt.name, err)
		}
	}
}

func TestCreateSwapRequestUnknownTarget(t *testing.T) {
	repo := newFakeRepo()
	seedExchange(repo)
	uc := NewCreateSwapRequest(repo)

	_, err := uc.Execute(context.Background(), CreateSwapRequestInput{
		RequesterClientID:      1,
		RequesterAppointmentID: 10,
		TargetClientID:         uintPtr(99),
		TargetAppointmentID:    uintPtr(20),
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCreateAdminMoveWithoutTarget(t *testing.T) {
	repo := newFakeRepo()
	seedExchange(repo)
	uc := NewCreateSwapRequest(repo)

	req, err := uc.Execute(context.Background(), CreateSwapRequestInput{
		RequesterClientID:      1,
		RequesterAppointmentID: 10,
		RequestType:            string(domain.TypeAdminMove),
		NewSlotInfo:            &domain.SlotInfo{Date: "2026-09-12", Time: "11:30"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if req.TargetClientID != nil || req.TargetAppointmentID != nil {
		t.Fatal("admin_move must keep targets nil")
	}
	if req.NewSlotInfo == "" {
		t.Fatal("admin_move must persist the slot payload")
	}
}

// ======================================================
// RESPOND (CLIENT)
// ======================================================

func TestRespondClientAcceptExchangesSlots(t *testing.T) {
	repo := newFakeRepo()
	req := seedExchange(repo)
	uc := NewRespondClient(repo, nil)

	resolved, err := uc.Execute(context.Background(), req.ID, "accept", 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if resolved.Status != string(domain.StatusAccepted) {
		t.Fatalf("status = %q, want accepted", resolved.Status)
	}
	if resolved.RespondedAt == nil {
		t.Fatal("respondedAt must be set")
	}

	a, b := repo.appointments[10], repo.appointments[20]
	if a.AppointmentTime != "14:00" || a.Service != "Ricostruzione" {
		t.Fatalf("requester appointment after accept: %s %s", a.AppointmentTime, a.Service)
	}
	if b.AppointmentTime != "10:00" || b.Service != "Gel" {
		t.Fatalf("target appointment after accept: %s %s", b.AppointmentTime, b.Service)
	}
	if a.ClientID != 1 || b.ClientID != 2 {
		t.Fatal("accept must not reassign appointment ownership")
	}
}

func TestRespondClientRejectLeavesAppointments(t *testing.T) {
	repo := newFakeRepo()
	req := seedExchange(repo)
	uc := NewRespondClient(repo, nil)

	resolved, err := uc.Execute(context.Background(), req.ID, "reject", 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if resolved.Status != string(domain.StatusRejected) {
		t.Fatalf("status = %q, want rejected", resolved.Status)
	}
	if repo.appointments[10].AppointmentTime != "10:00" {
		t.Fatal("reject must not touch any appointment")
	}
}

func TestRespondClientWrongResponder(t *testing.T) {
	repo := newFakeRepo()
	req := seedExchange(repo)
	uc := NewRespondClient(repo, nil)

	_, err := uc.Execute(context.Background(), req.ID, "accept", 1)
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}

	if repo.requests[req.ID].Status != string(domain.StatusPending) {
		t.Fatal("unauthorized response must leave the request pending")
	}
	if repo.appointments[10].AppointmentTime != "10:00" {
		t.Fatal("unauthorized response must not mutate appointments")
	}
}

func TestRespondClientTwiceConflicts(t *testing.T) {
	repo := newFakeRepo()
	req := seedExchange(repo)
	uc := NewRespondClient(repo, nil)

	if _, err := uc.Execute(context.Background(), req.ID, "accept", 2); err != nil {
		t.Fatalf("first response: %v", err)
	}

	_, err := uc.Execute(context.Background(), req.ID, "reject", 2)
	if !errors.Is(err, domain.ErrNotPending) {
		t.Fatalf("second response err = %v, want ErrNotPending", err)
	}

	// a primeira resposta permanece
	if repo.requests[req.ID].Status != string(domain.StatusAccepted) {
		t.Fatal("second response must not overwrite the first")
	}
	if repo.appointments[10].AppointmentTime != "14:00" {
		t.Fatal("second response must not re-mutate appointments")
	}
}

func TestRespondClientRejectsAdminMove(t *testing.T) {
	repo := newFakeRepo()
	seedExchange(repo)

	req := &models.SwapRequest{
		RequesterClientID:      1,
		RequesterAppointmentID: 10,
		RequestType:            string(domain.TypeAdminMove),
		Status:                 string(domain.StatusPending),
		NewSlotInfo:            domain.SlotInfo{Date: "2026-09-12", Time: "11:30"}.Encode(),
	}
	_ = repo.CreateSwapRequest(context.Background(), req)

	uc := NewRespondClient(repo, nil)
	if _, err := uc.Execute(context.Background(), req.ID, "accept", 2); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for type mismatch", err)
	}
}

func TestRespondClientMissingTargetAppointment(t *testing.T) {
	repo := newFakeRepo()
	req := seedExchange(repo)
	delete(repo.appointments, 20)

	uc := NewRespondClient(repo, nil)
	_, err := uc.Execute(context.Background(), req.ID, "accept", 2)
	if !domain.IsMutation(err) {
		t.Fatalf("err = %v, want mutation error", err)
	}

	// mutação falhou: solicitação segue pending e nada mudou
	if repo.requests[req.ID].Status != string(domain.StatusPending) {
		t.Fatal("failed mutation must leave the request pending")
	}
	if repo.appointments[10].AppointmentTime != "10:00" {
		t.Fatal("failed mutation must roll back every appointment change")
	}
}

// ======================================================
// RESPOND (ADMIN)
// ======================================================

func seedAdminMove(repo *fakeRepo, slot domain.SlotInfo) *models.SwapRequest {
	seedExchange(repo)

	req := &models.SwapRequest{
		RequesterClientID:      1,
		RequesterAppointmentID: 10,
		RequestType:            string(domain.TypeAdminMove),
		Status:                 string(domain.StatusPending),
		NewSlotInfo:            slot.Encode(),
	}
	_ = repo.CreateSwapRequest(context.Background(), req)
	return req
}

func TestRespondAdminApproveRelocates(t *testing.T) {
	repo := newFakeRepo()
	req := seedAdminMove(repo, domain.SlotInfo{Date: "2026-10-02", Time: "16:00"})
	uc := NewRespondAdmin(repo, nil)

	resolved, err := uc.Execute(context.Background(), req.ID, "approve")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if resolved.Status != string(domain.StatusAccepted) {
		t.Fatalf("status = %q, want accepted", resolved.Status)
	}

	ap := repo.appointments[10]
	if ap.AppointmentTime != "16:00" {
		t.Fatalf("time = %q, want 16:00", ap.AppointmentTime)
	}
	if ap.MonthYear != "2026-10" {
		t.Fatalf("month_year = %q, want 2026-10", ap.MonthYear)
	}
}

func TestRespondAdminRejectLeavesAppointment(t *testing.T) {
	repo := newFakeRepo()
	req := seedAdminMove(repo, domain.SlotInfo{Date: "2026-10-02", Time: "16:00"})
	uc := NewRespondAdmin(repo, nil)

	resolved, err := uc.Execute(context.Background(), req.ID, "reject")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if resolved.Status != string(domain.StatusRejected) {
		t.Fatalf("status = %q, want rejected", resolved.Status)
	}
	if repo.appointments[10].AppointmentTime != "10:00" {
		t.Fatal("reject must not move the appointment")
	}
}

func TestRespondAdminRejectsClientSwap(t *testing.T) {
	repo := newFakeRepo()
	req := seedExchange(repo)
	uc := NewRespondAdmin(repo, nil)

	if _, err := uc.Execute(context.Background(), req.ID, "approve"); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for type mismatch", err)
	}
}

func TestRespondAdminBrokenSlotPayload(t *testing.T) {
	repo := newFakeRepo()
	seedExchange(repo)

	req := &models.SwapRequest{
		RequesterClientID:      1,
		RequesterAppointmentID: 10,
		RequestType:            string(domain.TypeAdminMove),
		Status:                 string(domain.StatusPending),
		NewSlotInfo:            "",
	}
	_ = repo.CreateSwapRequest(context.Background(), req)

	uc := NewRespondAdmin(repo, nil)
	_, err := uc.Execute(context.Background(), req.ID, "approve")
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if repo.requests[req.ID].Status != string(domain.StatusPending) {
		t.Fatal("failed approve must leave the request pending")
	}
}

func TestRespondAdminMissingAppointment(t *testing.T) {
	repo := newFakeRepo()
	req := seedAdminMove(repo, domain.SlotInfo{Date: "2026-10-02", Time: "16:00"})
	delete(repo.appointments, 10)

	uc := NewRespondAdmin(repo, nil)
	_, err := uc.Execute(context.Background(), req.ID, "approve")
	if !domain.IsMutation(err) {
		t.Fatalf("err = %v, want mutation error", err)
	}
	if repo.requests[req.ID].Status != string(domain.StatusPending) {
		t.Fatal("failed mutation must leave the request pending")
	}
}

// ======================================================
// LIST
// ======================================================

func TestListClientSwapRequests(t *testing.T) {
	repo := newFakeRepo()
	req := seedExchange(repo)

	// solicitação já resolvida não entra em pendingForResponse
	resolved := &models.SwapRequest{
		RequesterClientID:      1,
		RequesterAppointmentID: 10,
		TargetClientID:         uintPtr(2),
		TargetAppointmentID:    uintPtr(20),
		RequestType:            string(domain.TypeClientSwap),
		Status:                 string(domain.StatusRejected),
	}
	_ = repo.CreateSwapRequest(context.Background(), resolved)

	uc := NewListClientSwapRequests(repo)

	view, err := uc.Execute(context.Background(), 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(view.PendingForResponse) != 1 || view.PendingForResponse[0].ID != req.ID {
		t.Fatalf("pendingForResponse = %+v, want only the pending request", view.PendingForResponse)
	}
	if len(view.MyRequests) != 0 {
		t.Fatalf("client 2 has no own requests, got %d", len(view.MyRequests))
	}

	view, err = uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(view.MyRequests) != 2 {
		t.Fatalf("client 1 owns both requests, got %d", len(view.MyRequests))
	}
}
