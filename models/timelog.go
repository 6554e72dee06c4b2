package models

import (
	"errors"
	"math"
	"strings"
	"time"
)

type DemandType string

const (
	DemandFEL01    DemandType = "FEL 0 / FEL 1"
	DemandWarranty DemandType = "Garantia"
	DemandRoutine  DemandType = "Rotina"
	DemandSupport  DemandType = "Suporte de Engenharia"
	DemandProject  DemandType = "Projeto"
)

var DemandTypes = []DemandType{DemandFEL01, DemandWarranty, DemandRoutine, DemandSupport, DemandProject}

func (d DemandType) Valid() bool {
	for _, v := range DemandTypes {
		if d == v {
			return true
		}
	}
	return false
}

// IsRoutine reports whether the demand counts as routine work in reports.
func (d DemandType) IsRoutine() bool {
	return d == DemandRoutine || d == DemandSupport
}

// IsProjectWork reports whether the demand counts as project work in reports.
func (d DemandType) IsProjectWork() bool {
	return d == DemandProject || d == DemandFEL01
}

type Phase string

const (
	PhaseFEL01            Phase = "FEL 0 / FEL 1"
	PhasePE               Phase = "PE"
	PhasePC               Phase = "PC"
	PhasePostConstruction Phase = "Pós obra"
	PhaseCO               Phase = "CO"
	PhaseLS               Phase = "LS"
	PhaseNA               Phase = "N/A"
)

var Phases = []Phase{PhaseFEL01, PhasePE, PhasePC, PhasePostConstruction, PhaseCO, PhaseLS, PhaseNA}

func (p Phase) Valid() bool {
	for _, v := range Phases {
		if p == v {
			return true
		}
	}
	return false
}

const (
	// NotApplicable marks a log with no project.
	NotApplicable = "N/A"
	// NoProjectID is the project id written when the demand type locks the project.
	NoProjectID = "NA"

	MinLogHours   = 0.25
	MaxDailyHours = 24.0
	HoursStep     = 0.25
	// LongShiftHours is the threshold past which an entry is flagged, never rejected.
	LongShiftHours = 12.0
)

var (
	ErrDateRequired      = errors.New("date is required")
	ErrInvalidDemandType = errors.New("invalid demand type")
	ErrInvalidPhase      = errors.New("invalid phase")
	ErrPhaseRequired     = errors.New("project demands require a valid phase")
	ErrProjectRequired   = errors.New("select a valid project")
	ErrActivityRequired  = errors.New("select an activity type")
	ErrHoursOutOfRange   = errors.New("hours must be between 0.25 and 24")
	ErrHoursStep         = errors.New("hours must be a multiple of 0.25")
	ErrDailyCapExceeded  = errors.New("daily total cannot exceed 24h")
)

type TimeLog struct {
	ID               string     `json:"id"`
	CollaboratorID   string     `json:"collaboratorId"`
	CollaboratorName string     `json:"collaboratorName"`
	Date             Date       `json:"date"`
	DemandType       DemandType `json:"demandType"`
	ProjectID        string     `json:"projectId"`
	ProjectName      string     `json:"projectName"`
	Phase            Phase      `json:"phase"`
	ActivityType     string     `json:"activityType"`
	Hours            float64    `json:"hours"`
	Observation      string     `json:"observation,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (l *TimeLog) IsLongShift() bool {
	return l.Hours > LongShiftHours
}

// Draft returns the editable fields of l.
func (l *TimeLog) Draft() TimeLogDraft {
	return TimeLogDraft{
		Date:         l.Date,
		DemandType:   l.DemandType,
		ProjectID:    l.ProjectID,
		ProjectName:  l.ProjectName,
		Phase:        l.Phase,
		ActivityType: l.ActivityType,
		Hours:        l.Hours,
		Observation:  l.Observation,
	}
}

// TimeLogDraft is the form content of a new or edited log.
type TimeLogDraft struct {
	Date         Date       `json:"date"`
	DemandType   DemandType `json:"demandType"`
	ProjectID    string     `json:"projectId"`
	ProjectName  string     `json:"projectName"`
	Phase        Phase      `json:"phase"`
	ActivityType string     `json:"activityType"`
	Hours        float64    `json:"hours"`
	Observation  string     `json:"observation,omitempty"`
}

// TimeLogPatch is a partial edit of a log; nil fields keep their value.
type TimeLogPatch struct {
	Date         *Date       `json:"date,omitempty"`
	DemandType   *DemandType `json:"demandType,omitempty"`
	ProjectID    *string     `json:"projectId,omitempty"`
	Phase        *Phase      `json:"phase,omitempty"`
	ActivityType *string     `json:"activityType,omitempty"`
	Hours        *float64    `json:"hours,omitempty"`
	Observation  *string     `json:"observation,omitempty"`
}

func (p TimeLogPatch) Apply(d TimeLogDraft) TimeLogDraft {
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.DemandType != nil {
		d.DemandType = *p.DemandType
	}
	if p.ProjectID != nil {
		d.ProjectID = *p.ProjectID
		d.ProjectName = ""
	}
	if p.Phase != nil {
		d.Phase = *p.Phase
	}
	if p.ActivityType != nil {
		d.ActivityType = *p.ActivityType
	}
	if p.Hours != nil {
		d.Hours = *p.Hours
	}
	if p.Observation != nil {
		d.Observation = *p.Observation
	}
	return d
}

// WithDemandDefaults applies the field locks and defaults implied by the
// demand type. FEL01 locks the phase, Routine and Support lock project and
// phase to N/A, and Warranty fills an unset phase with post-construction.
func (d TimeLogDraft) WithDemandDefaults() TimeLogDraft {
	if d.Phase == "" {
		d.Phase = PhaseNA
	}
	switch d.DemandType {
	case DemandFEL01:
		d.Phase = PhaseFEL01
	case DemandRoutine, DemandSupport:
		d.ProjectID = NoProjectID
		d.ProjectName = NotApplicable
		d.Phase = PhaseNA
	case DemandWarranty:
		if d.Phase == PhaseNA {
			d.Phase = PhasePostConstruction
		}
	}
	return d
}

// HasProject reports whether the draft references a concrete project.
func (d TimeLogDraft) HasProject() bool {
	id := strings.TrimSpace(d.ProjectID)
	return id != "" && id != NoProjectID && id != NotApplicable
}

// Validate checks the field rules of a log entry. The daily cap and project
// existence depend on the stored collections and are checked by the store.
func (d TimeLogDraft) Validate() error {
	if d.Date.IsZero() {
		return ErrDateRequired
	}
	if !d.DemandType.Valid() {
		return ErrInvalidDemandType
	}
	if d.Phase != "" && !d.Phase.Valid() {
		return ErrInvalidPhase
	}
	if d.DemandType == DemandProject {
		if d.Phase == "" || d.Phase == PhaseNA {
			return ErrPhaseRequired
		}
		if !d.HasProject() {
			return ErrProjectRequired
		}
	}
	if strings.TrimSpace(d.ActivityType) == "" {
		return ErrActivityRequired
	}
	return ValidateHours(d.Hours)
}

func ValidateHours(hours float64) error {
	if math.IsNaN(hours) || hours < MinLogHours || hours > MaxDailyHours {
		return ErrHoursOutOfRange
	}
	if math.Mod(hours, HoursStep) != 0 {
		return ErrHoursStep
	}
	return nil
}

type TimeLogFilter struct {
	CollaboratorID string
	Date           Date
	Search         string
}

func (f TimeLogFilter) Match(l *TimeLog) bool {
	if f.CollaboratorID != "" && l.CollaboratorID != f.CollaboratorID {
		return false
	}
	if !f.Date.IsZero() && l.Date != f.Date {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		return strings.Contains(strings.ToLower(l.CollaboratorName), term) ||
			strings.Contains(strings.ToLower(l.ProjectName), term) ||
			strings.Contains(strings.ToLower(l.ActivityType), term)
	}
	return true
}
