// Package reports consolidates time logs for the reports tab.
package reports

import (
	"sort"

	"clocking/models"
)

// TopProjects is how many projects the project ranking keeps.
const TopProjects = 10

type Bucket struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

type Summary struct {
	TotalHours     float64  `json:"totalHours"`
	ActiveProjects int      `json:"activeProjects"`
	ActiveUsers    int      `json:"activeUsers"`
	ByProject      []Bucket `json:"byProject"`
	ByDemand       []Bucket `json:"byDemand"`
	ByCollaborator []Bucket `json:"byCollaborator"`
	RoutinePercent float64  `json:"routinePercent"`
	ProjectPercent float64  `json:"projectPercent"`
}

// Summarize aggregates logs by their recorded project and collaborator
// names. Routine and project percentages share a denominator of the routine
// plus project-work hours, floored at 1.
func Summarize(logs []models.TimeLog, projects []models.Project, users []models.User) Summary {
	var s Summary
	byProject := map[string]float64{}
	byDemand := map[string]float64{}
	byCollaborator := map[string]float64{}
	var routine, projectWork float64

	for i := range logs {
		l := &logs[i]
		s.TotalHours += l.Hours
		byProject[l.ProjectName] += l.Hours
		byDemand[string(l.DemandType)] += l.Hours
		byCollaborator[l.CollaboratorName] += l.Hours
		switch {
		case l.DemandType.IsRoutine():
			routine += l.Hours
		case l.DemandType.IsProjectWork():
			projectWork += l.Hours
		}
	}

	for i := range projects {
		if projects[i].IsActive() {
			s.ActiveProjects++
		}
	}
	for i := range users {
		if users[i].Active {
			s.ActiveUsers++
		}
	}

	s.ByProject = ranked(byProject)
	if len(s.ByProject) > TopProjects {
		s.ByProject = s.ByProject[:TopProjects]
	}
	s.ByDemand = ranked(byDemand)
	s.ByCollaborator = ranked(byCollaborator)

	relevant := routine + projectWork
	if relevant == 0 {
		relevant = 1
	}
	s.RoutinePercent = routine / relevant * 100
	s.ProjectPercent = projectWork / relevant * 100
	return s
}

// ranked orders buckets by hours, descending, then by name.
func ranked(m map[string]float64) []Bucket {
	out := make([]Bucket, 0, len(m))
	for name, hours := range m {
		out = append(out, Bucket{Name: name, Hours: hours})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return out[i].Name < out[j].Name
	})
	return out
}
