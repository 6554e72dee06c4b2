package handlers

import (
	"net/http"

	"clocking/models"
	"clocking/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewProjectHandler(s *store.Store, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{store: s, logger: logger}
}

// List returns every project, or only the active ones with ?active=true.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("active") == "true" {
		writeJSON(w, http.StatusOK, h.store.ActiveProjects())
		return
	}
	writeJSON(w, http.StatusOK, h.store.Projects())
}

type createProjectRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}

	p, err := h.store.AddProject(r.Context(), req.Name, req.Code)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

type projectStatusRequest struct {
	Status models.ProjectStatus `json:"status"`
}

func (h *ProjectHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req projectStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}

	p, found, err := h.store.SetProjectStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !found {
		writeNotFound(w, "project")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Activities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Activities())
}
