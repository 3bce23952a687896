package training

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/validation"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=training_mocks_test.go -package=training_test

type sessionEngine interface {
	StartFreeSession(ctx context.Context, userID string) (Result[int], error)
	StartPlanSession(ctx context.Context, userID string, planID int) (Result[int], error)
	LogExercise(ctx context.Context, sessionID int, callerID string, exerciseID int, in LogInput) (Result[LogResult], error)
	LogExerciseFromPlan(ctx context.Context, sessionID, exerciseID int, callerID string, in LogInput) (Result[LogResult], error)
	PlanLogForm(ctx context.Context, sessionID, exerciseID int, callerID string) (Result[PlanLogForm], error)
	SkipExercise(ctx context.Context, sessionID, exerciseID int, callerID string) (Result[bool], error)
	GetLastLogged(ctx context.Context, userID string, exerciseID int) (Result[*LoggedExercise], error)
	EditLoggedExercise(ctx context.Context, logID int, callerID string, in LogInput) (Result[LoggedExercise], error)
	DeleteLoggedExercise(ctx context.Context, logID int, callerID string) (Result[int], error)
	FinishSession(ctx context.Context, sessionID int, callerID string) (Result[struct{}], error)
	DeleteSession(ctx context.Context, sessionID int, callerID string) (Result[struct{}], error)
	ExecutePlanView(ctx context.Context, sessionID int, callerID string) (Result[PlanView], error)
	ListSessions(ctx context.Context, userID string) (Result[[]Session], error)
	RecentSessions(ctx context.Context, userID string, n int) (Result[[]Session], error)
	ViewSession(ctx context.Context, sessionID int, callerID string) (Result[Session], error)
	HasWorkoutToday(ctx context.Context, userID string) (Result[bool], error)
	ActiveSession(ctx context.Context, userID string) (Result[*Session], error)
}

type StartSessionResponse struct {
	SessionID int    `json:"sessionId"`
	Next      string `json:"next"`
}

type LogExerciseRequest struct {
	ExerciseID int `json:"exerciseId"`
	LogInput
}

type SkipResponse struct {
	Skipped bool   `json:"skipped"`
	Next    string `json:"next"`
}

type SessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

type TodayResponse struct {
	HasWorkout bool `json:"hasWorkout"`
}

type ActiveSessionResponse struct {
	Session *Session `json:"session"`
}

type LastLoggedResponse struct {
	Last *LoggedExercise `json:"last"`
}

type Handler struct {
	engine sessionEngine
}

func NewHandler(engine sessionEngine) *Handler {
	return &Handler{
		engine: engine,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	// static paths first, so they are not taken for session ids
	r.HandleFunc("/sessions/free", h.HandleStartFree).Methods("POST", "OPTIONS").Name("start-free-session")
	r.HandleFunc("/sessions/recent", h.HandleRecent).Methods("GET", "OPTIONS").Name("recent-sessions")
	r.HandleFunc("/sessions/today", h.HandleToday).Methods("GET", "OPTIONS").Name("today")
	r.HandleFunc("/sessions/active", h.HandleActive).Methods("GET", "OPTIONS").Name("active-session")
	r.HandleFunc("/sessions", h.HandleList).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/plans/{id}/sessions", h.HandleStartPlan).Methods("POST", "OPTIONS").Name("start-plan-session")

	r.HandleFunc("/sessions/{id}", h.HandleView).Methods("GET", "OPTIONS").Name("view-session")
	r.HandleFunc("/sessions/{id}", h.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")
	r.HandleFunc("/sessions/{id}/finish", h.HandleFinish).Methods("POST", "OPTIONS").Name("finish-session")
	r.HandleFunc("/sessions/{id}/exercises", h.HandleLogExercise).Methods("POST", "OPTIONS").Name("log-exercise")
	r.HandleFunc("/sessions/{id}/plan", h.HandlePlanView).Methods("GET", "OPTIONS").Name("plan-view")
	r.HandleFunc("/sessions/{id}/plan/exercises/{exid}", h.HandlePlanLogForm).Methods("GET", "OPTIONS").Name("plan-log-form")
	r.HandleFunc("/sessions/{id}/plan/exercises/{exid}", h.HandleLogPlanExercise).Methods("POST", "OPTIONS").Name("log-plan-exercise")
	r.HandleFunc("/sessions/{id}/plan/exercises/{exid}/skip", h.HandleSkip).Methods("POST", "OPTIONS").Name("skip-exercise")

	r.HandleFunc("/logs/{id}", h.HandleEditLog).Methods("PUT", "OPTIONS").Name("edit-log")
	r.HandleFunc("/logs/{id}", h.HandleDeleteLog).Methods("DELETE", "OPTIONS").Name("delete-log")
	r.HandleFunc("/exercises/{id}/last", h.HandleLastLogged).Methods("GET", "OPTIONS").Name("last-logged")
}

func (h *Handler) HandleStartFree(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.start-free")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	res, err := h.engine.StartFreeSession(ctx, userID)
	if !handleOutcome(w, r, "start free session", res, err) {
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, StartSessionResponse{
		SessionID: res.Value,
		Next:      freeLogPath(res.Value),
	})
}

func (h *Handler) HandleStartPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.start-plan")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	planID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.engine.StartPlanSession(ctx, userID, planID)
	if !handleOutcome(w, r, "start plan session", res, err) {
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, StartSessionResponse{
		SessionID: res.Value,
		Next:      planViewPath(res.Value),
	})
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.list")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	res, err := h.engine.ListSessions(ctx, userID)
	if !handleOutcome(w, r, "list sessions", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, SessionsResponse{Sessions: res.Value})
}

func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.recent")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	res, err := h.engine.RecentSessions(ctx, userID, RecentSessionsCount)
	if !handleOutcome(w, r, "recent sessions", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, SessionsResponse{Sessions: res.Value})
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.today")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	res, err := h.engine.HasWorkoutToday(ctx, userID)
	if !handleOutcome(w, r, "has workout today", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, TodayResponse{HasWorkout: res.Value})
}

func (h *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.active")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	res, err := h.engine.ActiveSession(ctx, userID)
	if !handleOutcome(w, r, "active session", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, ActiveSessionResponse{Session: res.Value})
}

func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.view")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.engine.ViewSession(ctx, sessionID, userID)
	if !handleOutcome(w, r, "view session", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, res.Value)
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.delete-session")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.engine.DeleteSession(ctx, sessionID, userID)
	if !handleOutcome(w, r, "delete session", res, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.finish")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.engine.FinishSession(ctx, sessionID, userID)
	if !handleOutcome(w, r, "finish session", res, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleLogExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.log-exercise")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req LogExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if req.ExerciseID <= 0 {
		validation.WriteErrors(w, []validation.FieldError{{
			Field:   "exerciseId",
			Tag:     "gt",
			Message: "must be greater than 0",
		}})
		return
	}

	res, err := h.engine.LogExercise(ctx, sessionID, userID, req.ExerciseID, req.LogInput)
	if !handleOutcome(w, r, "log exercise", res, err) {
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, res.Value)
}

func (h *Handler) HandlePlanView(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plan-view")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.engine.ExecutePlanView(ctx, sessionID, userID)
	if !handleOutcome(w, r, "plan view", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, res.Value)
}

func (h *Handler) HandlePlanLogForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plan-log-form")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r, "exid")
	if !ok {
		return
	}

	res, err := h.engine.PlanLogForm(ctx, sessionID, exerciseID, userID)
	if !handleOutcome(w, r, "plan log form", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, res.Value)
}

func (h *Handler) HandleLogPlanExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.log-plan-exercise")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r, "exid")
	if !ok {
		return
	}

	var in LogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.engine.LogExerciseFromPlan(ctx, sessionID, exerciseID, userID, in)
	if !handleOutcome(w, r, "log plan exercise", res, err) {
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, res.Value)
}

func (h *Handler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.skip")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r, "exid")
	if !ok {
		return
	}

	res, err := h.engine.SkipExercise(ctx, sessionID, exerciseID, userID)
	if !handleOutcome(w, r, "skip exercise", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, SkipResponse{
		Skipped: res.Value,
		Next:    planViewPath(sessionID),
	})
}

func (h *Handler) HandleEditLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.edit-log")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var in LogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.engine.EditLoggedExercise(ctx, logID, userID, in)
	if !handleOutcome(w, r, "edit logged exercise", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, res.Value)
}

func (h *Handler) HandleDeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.delete-log")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.engine.DeleteLoggedExercise(ctx, logID, userID)
	if !handleOutcome(w, r, "delete logged exercise", res, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleLastLogged(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.last-logged")
	defer span.End()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.engine.GetLastLogged(ctx, userID, exerciseID)
	if !handleOutcome(w, r, "get last logged", res, err) {
		return
	}
	pkg.WriteJSONResponseOK(w, LastLoggedResponse{Last: res.Value})
}

// handleOutcome writes the response for every outcome but OK and reports
// whether the caller should go on writing the payload.
func handleOutcome[T any](w http.ResponseWriter, r *http.Request, op string, res Result[T], err error) bool {
	if err != nil {
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}

	switch res.Outcome {
	case OutcomeOK:
		return true
	case OutcomeDenied:
		log.Tracef("%s denied: %s", op, res.Denial.Reason)
		http.Redirect(w, r, res.Denial.Redirect, http.StatusSeeOther)
	case OutcomeInvalid:
		validation.WriteErrors(w, res.Fields)
	default:
		log.Errorf("%s: unexpected outcome %s", op, res.Outcome)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	return false
}

func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return "", false
	}
	return identity.UserID, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := pkg.IntPathVar(r, name)
	if err != nil {
		http.Error(w, "error, invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
