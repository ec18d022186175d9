package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/frannienails/salon-manager/internal/domain/swap"
	"github.com/frannienails/salon-manager/internal/models"
	ucSwap "github.com/frannienails/salon-manager/internal/usecase/swap"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeSwapRepo struct {
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment
	requests     map[uint]*models.SwapRequest
	nextID       uint
}

func newFakeSwapRepo() *fakeSwapRepo {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	target := uint(2)
	targetAp := uint(20)

	return &fakeSwapRepo{
		clients: map[uint]*models.Client{
			1: {ID: 1, FullName: "Ana", IsActive: true},
			2: {ID: 2, FullName: "Bruna", IsActive: true},
		},
		appointments: map[uint]*models.Appointment{
			10: {ID: 10, ClientID: 1, AppointmentDate: date, AppointmentTime: "10:00", Service: "Gel"},
			20: {ID: 20, ClientID: 2, AppointmentDate: date, AppointmentTime: "14:00", Service: "Ricostruzione"},
		},
		requests: map[uint]*models.SwapRequest{
			1: {
				ID:                     1,
				RequesterClientID:      1,
				RequesterAppointmentID: 10,
				TargetClientID:         &target,
				TargetAppointmentID:    &targetAp,
				RequestType:            string(domain.TypeClientSwap),
				Status:                 string(domain.StatusPending),
			},
		},
		nextID: 1,
	}
}

func (r *fakeSwapRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *fakeSwapRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		return ap, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *fakeSwapRepo) CreateSwapRequest(_ context.Context, req *models.SwapRequest) error {
	r.nextID++
	req.ID = r.nextID
	r.requests[req.ID] = req
	return nil
}

func (r *fakeSwapRepo) GetSwapRequest(_ context.Context, id uint) (*models.SwapRequest, error) {
	if req, ok := r.requests[id]; ok {
		cp := *req
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSwapRepo) ListSwapRequests(_ context.Context) ([]models.SwapRequest, error) {
	out := make([]models.SwapRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (r *fakeSwapRepo) ListSwapRequestsForTarget(_ context.Context, clientID uint) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, req := range r.requests {
		if req.TargetClientID != nil && *req.TargetClientID == clientID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeSwapRepo) ListSwapRequestsByRequester(_ context.Context, clientID uint) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, req := range r.requests {
		if req.RequesterClientID == clientID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeSwapRepo) Resolve(
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

	cp := *req
	if err := apply(ctx, &fakeSwapTx{repo: r}, &cp); err != nil {
		return nil, err
	}
	if err := domain.Respond(&cp, status, time.Now()); err != nil {
		return nil, err
	}

	*req = cp
	return req, nil
}

type fakeSwapTx struct {
	repo *fakeSwapRepo
}

func (t *fakeSwapTx) GetAppointmentForUpdate(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := t.repo.appointments[id]; ok {
		return ap, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (t *fakeSwapTx) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	t.repo.appointments[ap.ID] = ap
	return nil
}

// ======================================================
// SETUP
// ======================================================

func newSwapRouter(repo *fakeSwapRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewSwapHandler(
		ucSwap.NewCreateSwapRequest(repo),
		ucSwap.NewRespondClient(repo, nil),
		ucSwap.NewRespondAdmin(repo, nil),
		ucSwap.NewListSwapRequests(repo),
		ucSwap.NewListClientSwapRequests(repo),
	)

	r := gin.New()
	r.POST("/api/swap-requests", h.Create)
	r.GET("/api/swap-requests", h.List)
	r.GET("/api/client/:clientId/swap-requests", h.ListForClient)
	r.POST("/api/client/swap-requests/:id/respond", h.RespondClient)
	r.POST("/api/client/swap-requests/:id/:action", h.RespondClientAction)
	r.POST("/api/admin/swap-requests/:id/:action", h.RespondAdmin)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ======================================================
// TESTS
// ======================================================

func TestCreateSwapRequestEndpoint(t *testing.T) {
	r := newSwapRouter(newFakeSwapRepo())

	w := doJSON(t, r, http.MethodPost, "/api/swap-requests", gin.H{
		"requesterClientId":      1,
		"requesterAppointmentId": 10,
		"targetClientId":         2,
		"targetAppointmentId":    20,
		"requestMessage":         "podemos trocar?",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool               `json:"success"`
		Data    models.SwapRequest `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("success must be true")
	}
	if resp.Data.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q, want pending", resp.Data.Status)
	}
}

func TestCreateSwapRequestEndpointMissingTarget(t *testing.T) {
	r := newSwapRouter(newFakeSwapRepo())

	w := doJSON(t, r, http.MethodPost, "/api/swap-requests", gin.H{
		"requesterClientId":      1,
		"requesterAppointmentId": 10,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRespondEndpointAccept(t *testing.T) {
	repo := newFakeSwapRepo()
	r := newSwapRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/client/swap-requests/1/respond", gin.H{
		"clientId": 2,
		"response": "accept",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if repo.appointments[10].AppointmentTime != "14:00" {
		t.Fatal("accept must exchange the appointment slots")
	}
}

func TestRespondEndpointActionRoute(t *testing.T) {
	repo := newFakeSwapRepo()
	r := newSwapRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/client/swap-requests/1/reject", gin.H{
		"clientId": 2,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.requests[1].Status != string(domain.StatusRejected) {
		t.Fatalf("status = %q, want rejected", repo.requests[1].Status)
	}
}

func TestRespondEndpointWrongClient(t *testing.T) {
	r := newSwapRouter(newFakeSwapRepo())

	w := doJSON(t, r, http.MethodPost, "/api/client/swap-requests/1/respond", gin.H{
		"clientId": 1,
		"response": "accept",
	})

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRespondEndpointAlreadyResolved(t *testing.T) {
	repo := newFakeSwapRepo()
	repo.requests[1].Status = string(domain.StatusAccepted)
	r := newSwapRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/client/swap-requests/1/respond", gin.H{
		"clientId": 2,
		"response": "reject",
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestRespondEndpointUnknownRequest(t *testing.T) {
	r := newSwapRouter(newFakeSwapRepo())

	w := doJSON(t, r, http.MethodPost, "/api/client/swap-requests/99/respond", gin.H{
		"clientId": 2,
		"response": "accept",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestAdminRespondEndpointTypeMismatch(t *testing.T) {
	r := newSwapRouter(newFakeSwapRepo())

	w := doJSON(t, r, http.MethodPost, "/api/admin/swap-requests/1/approve", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListForClientEndpoint(t *testing.T) {
	r := newSwapRouter(newFakeSwapRepo())

	w := doJSON(t, r, http.MethodGet, "/api/client/2/swap-requests", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			PendingForResponse []models.SwapRequest `json:"pendingForResponse"`
			MyRequests         []models.SwapRequest `json:"myRequests"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.PendingForResponse) != 1 {
		t.Fatalf("pendingForResponse = %d, want 1", len(resp.Data.PendingForResponse))
	}
}
