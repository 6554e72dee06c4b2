package handlers

import (
	"net/http"

	"clocking/models"
	"clocking/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewUserHandler(s *store.Store, logger *zap.Logger) *UserHandler {
	return &UserHandler{store: s, logger: logger}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Users())
}

type createUserRequest struct {
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	Specialty string      `json:"specialty"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}

	u, err := h.store.AddUser(r.Context(), req.Name, req.Role, req.Specialty)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeErr(w, err)
		return
	}

	u, found, err := h.store.UpdateUser(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !found {
		writeNotFound(w, "user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteUser(r.Context(), chi.URLParam(r, "id")) {
		writeNotFound(w, "user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	u, found := h.store.ToggleUserStatus(r.Context(), chi.URLParam(r, "id"))
	if !found {
		writeNotFound(w, "user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type importRequest struct {
	Names string `json:"names"`
}

// Import adds one collaborator per non-blank line of the submitted text.
func (h *UserHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}

	added := h.store.ImportUsers(r.Context(), req.Names)
	if added == nil {
		added = []models.User{}
	}
	writeJSON(w, http.StatusCreated, added)
}

func (h *UserHandler) Specialties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Specialties)
}
