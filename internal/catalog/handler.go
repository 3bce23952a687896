package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

type exerciseCatalog interface {
	GetExercise(ctx context.Context, id int) (*Exercise, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type Handler struct {
	catalog exerciseCatalog
}

func NewHandler(catalog exerciseCatalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	exercises, err := h.catalog.ListExercises(ctx)
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	if exercises == nil {
		exercises = []Exercise{}
	}
	pkg.WriteJSONResponseOK(w, ListResponse{Exercises: exercises})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	e, err := h.catalog.GetExercise(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, e)
}
