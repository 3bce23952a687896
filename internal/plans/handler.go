package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/validation"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type planStore interface {
	Create(ctx context.Context, userID string, in PlanInput) (*Plan, error)
	Update(ctx context.Context, planID int, userID string, in PlanInput) (*Plan, error)
	Delete(ctx context.Context, planID int, userID string) error
	SetActive(ctx context.Context, planID int, userID string, active bool) error
	Get(ctx context.Context, planID int) (*Plan, error)
	ListByUser(ctx context.Context, userID string, onlyActive bool) ([]Plan, error)
}

type ListResponse struct {
	Plans []Plan `json:"plans"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type Handler struct {
	store planStore
}

func NewHandler(store planStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans", h.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans", h.HandleCreate).Methods("POST", "OPTIONS").Name("create-plan")
	r.HandleFunc("/plans/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-plan")
	r.HandleFunc("/plans/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
	r.HandleFunc("/plans/{id}/active", h.HandleSetActive).Methods("PUT", "OPTIONS").Name("set-plan-active")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	identity, ok := auth.FromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	onlyActive := r.URL.Query().Get("active") == "true"
	plans, err := h.store.ListByUser(ctx, identity.UserID, onlyActive)
	if err != nil {
		log.Errorf("list plans for %s: %s", identity.UserID, err)
		http.Error(w, "failed to list plans", http.StatusInternalServerError)
		return
	}
	if plans == nil {
		plans = []Plan{}
	}

	pkg.WriteJSONResponseOK(w, ListResponse{Plans: plans})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	identity, ok := auth.FromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("plan.id", planID))

	plan, err := h.store.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("get plan %d: %s", planID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	// other users' plans are indistinguishable from missing ones
	if plan.UserID != identity.UserID {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSONResponseOK(w, plan)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
	defer span.End()

	identity, ok := auth.FromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	in, ok := decodePlanInput(w, r)
	if !ok {
		return
	}

	plan, err := h.store.Create(ctx, identity.UserID, in)
	if err != nil {
		h.writeStoreErr(w, "create plan", err)
		return
	}

	log.Debugf("plan %d created by %s", plan.ID, identity.UserID)
	pkg.WriteJSONResponse(w, http.StatusCreated, plan)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	identity, ok := auth.FromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	in, ok := decodePlanInput(w, r)
	if !ok {
		return
	}

	plan, err := h.store.Update(ctx, planID, identity.UserID, in)
	if err != nil {
		h.writeStoreErr(w, "update plan", err)
		return
	}

	pkg.WriteJSONResponseOK(w, plan)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	identity, ok := auth.FromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	if err := h.store.Delete(ctx, planID, identity.UserID); err != nil {
		h.writeStoreErr(w, "delete plan", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.set-active")
	defer span.End()

	identity, ok := auth.FromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.SetActive(ctx, planID, identity.UserID, req.Active); err != nil {
		h.writeStoreErr(w, "set plan active", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeStoreErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		http.Error(w, "plan not found", http.StatusNotFound)
	case errors.Is(err, ErrUnknownExercise):
		validation.WriteErrors(w, []validation.FieldError{{
			Field:   "exercises",
			Tag:     "exists",
			Message: "unknown exercise",
		}})
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to "+op, http.StatusInternalServerError)
	}
}

func decodePlanInput(w http.ResponseWriter, r *http.Request) (PlanInput, bool) {
	var in PlanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return in, false
	}

	fieldErrs, err := validation.Struct(in)
	if err != nil {
		log.Errorf("validate plan input: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return in, false
	}
	if len(fieldErrs) > 0 {
		validation.WriteErrors(w, fieldErrs)
		return in, false
	}

	return in, true
}
