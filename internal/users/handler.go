package users

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

// Store defines the interface for user persistence. Users cannot be
// updated, only created, read, and deleted.
type Store interface {
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, u *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// OpenFunc acquires a store scoped to a single request. The release
// function must be called once the request is done with the store.
type OpenFunc func(ctx context.Context) (Store, func(), error)

// Handler holds user HTTP handlers.
type Handler struct {
	open OpenFunc
}

func NewHandler(open OpenFunc) *Handler {
	return &Handler{open: open}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, release, err := h.open(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "User")
		return
	}
	defer release()

	users, err := s.List(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "User")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	transport.SendJSON(w, http.StatusOK, users)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
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
		transport.SendStoreError(w, err, "User")
		return
	}
	defer release()

	created, err := s.Insert(r.Context(), req.User())
	if err != nil {
		transport.SendStoreError(w, err, "User")
		return
	}
	transport.SendJSON(w, http.StatusOK, created)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, release, err := h.open(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "User")
		return
	}
	defer release()

	u, err := s.Get(r.Context(), id)
	if err != nil {
		transport.SendStoreError(w, err, "User")
		return
	}
	transport.SendJSON(w, http.StatusOK, u)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, release, err := h.open(r.Context())
	if err != nil {
		transport.SendStoreError(w, err, "User")
		return
	}
	defer release()

	if err := s.Delete(r.Context(), id); err != nil {
		transport.SendStoreError(w, err, "User")
		return
	}
	transport.SendJSON(w, http.StatusOK, map[string]string{"message": "User successfully deleted"})
}
