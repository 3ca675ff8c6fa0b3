package events

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lopes/lopes-events/backend/internal/models"
	"github.com/lopes/lopes-events/backend/internal/transport"
)

var validate = validator.New()

// Store defines the interface for event persistence.
type Store interface {
	List(ctx context.Context) ([]models.Event, error)
	Insert(ctx context.Context, ev *models.Event) (*models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Replace(ctx context.Context, id string, ev *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

// OpenFunc acquires a store scoped to a single request. The release
// function must be called once the request is done with the store.
type OpenFunc func(ctx context.Context) (Store, func(), error)

// Handler holds event HTTP handlers.
type Handler struct {
	open OpenFunc
}

func NewHandler(open OpenFunc) *Handler {
	return &Handler{open: open}
}

// List returns every event in the collection.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, release, err := h.open(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	defer release()

	evs, err := s.List(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	if evs == nil {
		evs = []models.Event{}
	}
	transport.SendJSON(w, http.StatusOK, evs)
}

// Create inserts a new event and echoes it back with the assigned _id.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.SendDetail(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		transport.SendDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s, release, err := h.open(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	defer release()

	created, err := s.Insert(r.Context(), req.Event())
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	transport.SendJSON(w, http.StatusOK, created)
}

// Get returns a single event by identifier.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, release, err := h.open(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	defer release()

	ev, err := s.Get(r.Context(), id)
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	transport.SendJSON(w, http.StatusOK, ev)
}

// Update replaces every field of the matched event with the payload. All
// fields are mandatory; this is a full replace, not a merge.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.SendDetail(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		transport.SendDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s, release, err := h.open(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	defer release()

	updated, err := s.Replace(r.Context(), id, req.Event())
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	transport.SendJSON(w, http.StatusOK, updated)
}

// Delete removes an event by identifier.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, release, err := h.open(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	defer release()

	if err := s.Delete(r.Context(), id); err != nil {
		transport.SendStoreError(w, err, "Event")
		return
	}
	transport.SendJSON(w, http.StatusOK, map[string]string{"message": "Event successfully deleted"})
}
