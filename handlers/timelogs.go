package handlers

import (
	"errors"
	"net/http"

	"clocking/metrics"
	"clocking/middleware"
	"clocking/models"
	"clocking/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TimeLogHandler struct {
	store   *store.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewTimeLogHandler(s *store.Store, m *metrics.Metrics, logger *zap.Logger) *TimeLogHandler {
	return &TimeLogHandler{
		store:   s,
		metrics: m,
		logger:  logger,
	}
}

// timeLogView adds the long-shift warning to a log.
type timeLogView struct {
	models.TimeLog
	LongShift bool `json:"longShift"`
}

func viewsOf(logs []models.TimeLog) []timeLogView {
	out := make([]timeLogView, 0, len(logs))
	for i := range logs {
		out = append(out, timeLogView{TimeLog: logs[i], LongShift: logs[i].IsLongShift()})
	}
	return out
}

func filterFromQuery(r *http.Request) (models.TimeLogFilter, error) {
	date, err := parseDateParam(r, "date")
	if err != nil {
		return models.TimeLogFilter{}, err
	}
	return models.TimeLogFilter{
		CollaboratorID: r.URL.Query().Get("collaborator"),
		Date:           date,
		Search:         r.URL.Query().Get("q"),
	}, nil
}

type myDayResponse struct {
	Date  models.Date   `json:"date"`
	Total float64       `json:"total"`
	Logs  []timeLogView `json:"logs"`
}

// MyLogs lists the signed-in user's logs, newest first. With ?date= it also
// reports that day's total.
func (h *TimeLogHandler) MyLogs(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	filter, err := filterFromQuery(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	filter.CollaboratorID = user.ID

	logs := h.store.Logs(filter)
	if filter.Date.IsZero() {
		writeJSON(w, http.StatusOK, viewsOf(logs))
		return
	}
	writeJSON(w, http.StatusOK, myDayResponse{
		Date:  filter.Date,
		Total: h.store.DayTotal(user.ID, filter.Date),
		Logs:  viewsOf(logs),
	})
}

// TeamLogs lists everyone's logs for coordinators and directors.
func (h *TimeLogHandler) TeamLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewsOf(h.store.Logs(filter)))
}

func (h *TimeLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var draft models.TimeLogDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeErr(w, err)
		return
	}

	log, err := h.store.AddLog(r.Context(), *user, draft)
	if err != nil {
		h.metrics.LogRejected(rejectReason(err))
		writeErr(w, err)
		return
	}
	h.metrics.LogRecorded(string(log.DemandType), log.Hours)

	writeJSON(w, http.StatusCreated, timeLogView{TimeLog: log, LongShift: log.IsLongShift()})
}

func (h *TimeLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var patch models.TimeLogPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeErr(w, err)
		return
	}

	log, found, err := h.store.UpdateLog(r.Context(), *user, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !found {
		writeNotFound(w, "time log")
		return
	}
	writeJSON(w, http.StatusOK, timeLogView{TimeLog: log, LongShift: log.IsLongShift()})
}

func (h *TimeLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	found, err := h.store.DeleteLog(r.Context(), *user, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	if !found {
		writeNotFound(w, "time log")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, models.ErrDailyCapExceeded):
		return "daily_cap"
	case errors.Is(err, models.ErrHoursOutOfRange), errors.Is(err, models.ErrHoursStep):
		return "hours"
	case errors.Is(err, models.ErrProjectRequired), errors.Is(err, models.ErrPhaseRequired):
		return "project"
	default:
		return "other"
	}
}
