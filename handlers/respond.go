package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"clocking/models"
	"clocking/planner"
	"clocking/store"
)

// badRequestErrors are rejections of user input; their message is shown as
// the inline form error.
var badRequestErrors = []error{
	models.ErrDateRequired,
	models.ErrInvalidDemandType,
	models.ErrInvalidPhase,
	models.ErrPhaseRequired,
	models.ErrProjectRequired,
	models.ErrActivityRequired,
	models.ErrHoursOutOfRange,
	models.ErrHoursStep,
	models.ErrDailyCapExceeded,
	models.ErrAllocationUserRequired,
	models.ErrAllocationProjectRequired,
	models.ErrAllocationStartRequired,
	models.ErrInvalidDuration,
	models.ErrInvalidHoursPerDay,
	store.ErrNameRequired,
	store.ErrInvalidRole,
	store.ErrInvalidProjectStatus,
	store.ErrInvalidTab,
	errInvalidBody,
	errInvalidDate,
	planner.ErrInvalidViewMode,
}

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotSignedIn), errors.Is(err, store.ErrUserNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrForbidden):
		return http.StatusForbidden
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeErr maps err to its status code. Internal errors are not echoed.
func writeErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func writeNotFound(w http.ResponseWriter, what string) {
	writeError(w, http.StatusNotFound, what+" not found")
}

func decodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return errInvalidBody
	}
	return nil
}

// parseDate reads an optional YYYY-MM-DD value; empty gives the zero Date.
func parseDate(raw string) (models.Date, error) {
	if raw == "" {
		return models.Date{}, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, errInvalidDate
	}
	return d, nil
}

func parseDateParam(r *http.Request, name string) (models.Date, error) {
	return parseDate(r.URL.Query().Get(name))
}
