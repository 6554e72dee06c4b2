package models

type ProjectStatus string

const (
	ProjectActive ProjectStatus = "ativo"
	ProjectClosed ProjectStatus = "encerrado"
)

func (s ProjectStatus) Valid() bool {
	return s == ProjectActive || s == ProjectClosed
}

type Project struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Code   string        `json:"code,omitempty"`
	Status ProjectStatus `json:"status"`
}

func (p *Project) IsActive() bool {
	return p.Status == ProjectActive
}
