package handlers

import (
	"fmt"
	"net/http"
	"time"

	"clocking/models"
	"clocking/reports"
	"clocking/store"

	"go.uber.org/zap"
)

type ReportHandler struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewReportHandler(s *store.Store, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{store: s, logger: logger, now: time.Now}
}

type summaryResponse struct {
	reports.Summary
	Logs []timeLogView `json:"logs"`
}

// Summary consolidates every log. ?q= narrows the consolidation table only;
// the totals always cover all logs.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	all := h.store.Logs(models.TimeLogFilter{})
	summary := reports.Summarize(all, h.store.Projects(), h.store.Users())

	filtered := h.store.Logs(models.TimeLogFilter{Search: r.URL.Query().Get("q")})
	writeJSON(w, http.StatusOK, summaryResponse{Summary: summary, Logs: viewsOf(filtered)})
}

func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	logs := h.store.Logs(models.TimeLogFilter{})

	filename := reports.ExportFilename(models.DateOf(h.now()))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := reports.WriteCSV(w, logs); err != nil {
		h.logger.Error("csv export failed", zap.Error(err))
	}
}
