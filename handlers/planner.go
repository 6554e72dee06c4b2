package handlers

import (
	"net/http"
	"time"

	"clocking/metrics"
	"clocking/models"
	"clocking/planner"
	"clocking/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PlannerHandler struct {
	store   *store.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewPlannerHandler(s *store.Store, m *metrics.Metrics, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		store:   s,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// window picks the grid window from ?start= and ?mode=, falling back to
// the session's window and then to the default fortnight from today.
func (h *PlannerHandler) window(r *http.Request) (planner.Window, error) {
	today := models.DateOf(h.now())
	w := planner.DefaultWindow(today)
	if sess, ok := h.store.Session(); ok {
		w = sess.Window
	}

	if raw := r.URL.Query().Get("mode"); raw != "" {
		mode, err := planner.ParseViewMode(raw)
		if err != nil {
			return planner.Window{}, err
		}
		w = w.WithMode(mode)
	}
	start, err := parseDateParam(r, "start")
	if err != nil {
		return planner.Window{}, err
	}
	if !start.IsZero() {
		w.Start = start
	}
	return w, nil
}

func (h *PlannerHandler) Grid(w http.ResponseWriter, r *http.Request) {
	window, err := h.window(r)
	if err != nil {
		writeErr(w, err)
		return
	}

	users, allocations, logs := h.store.Snapshot()
	writeJSON(w, http.StatusOK, planner.BuildGrid(users, allocations, logs, window, models.DateOf(h.now())))
}

type loadResponse struct {
	UserID   string            `json:"userId"`
	Date     models.Date       `json:"date"`
	Load     planner.DailyLoad `json:"load"`
	Capacity planner.Capacity  `json:"capacity"`
}

// Load reports the daily load of ?user= on ?date=.
func (h *PlannerHandler) Load(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	date, err := parseDateParam(r, "date")
	if err != nil {
		writeErr(w, err)
		return
	}
	if date.IsZero() {
		date = models.DateOf(h.now())
	}

	_, allocations, logs := h.store.Snapshot()
	load := planner.ComputeDailyLoad(userID, date, allocations, logs)
	writeJSON(w, http.StatusOK, loadResponse{
		UserID:   userID,
		Date:     date,
		Load:     load,
		Capacity: load.Capacity(),
	})
}

func (h *PlannerHandler) Allocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Allocations())
}

func (h *PlannerHandler) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	var draft models.AllocationDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeErr(w, err)
		return
	}

	a, err := h.store.AddAllocation(r.Context(), draft)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

type moveRequest struct {
	UserID    string      `json:"userId"`
	StartDate models.Date `json:"startDate"`
}

// MoveAllocation handles a drop on the grid: the allocation keeps its
// duration and hours and takes the target row's user and the target day.
func (h *PlannerHandler) MoveAllocation(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	if req.UserID == "" {
		writeErr(w, models.ErrAllocationUserRequired)
		return
	}
	if req.StartDate.IsZero() {
		writeErr(w, models.ErrAllocationStartRequired)
		return
	}

	a, found := h.store.MoveAllocation(r.Context(), chi.URLParam(r, "id"), req.UserID, req.StartDate)
	if !found {
		writeNotFound(w, "allocation")
		return
	}
	h.metrics.AllocationMoved()
	writeJSON(w, http.StatusOK, a)
}

func (h *PlannerHandler) DeleteAllocation(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteAllocation(r.Context(), chi.URLParam(r, "id")) {
		writeNotFound(w, "allocation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
