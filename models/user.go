package models

import "strings"

type Role string

const (
	RoleCollaborator Role = "Colaborador"
	RoleCoordinator  Role = "Coordenador"
	RoleDirector     Role = "Diretoria/Visor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCollaborator, RoleCoordinator, RoleDirector:
		return true
	}
	return false
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Active    bool   `json:"active"`
	Specialty string `json:"specialty,omitempty"`
}

// UserPatch carries the fields of an edit; nil fields are left untouched.
type UserPatch struct {
	Name      *string `json:"name,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	if p.Specialty != nil {
		u.Specialty = *p.Specialty
	}
	return u
}

func (u *User) IsCollaborator() bool {
	return u.Role == RoleCollaborator
}

func (u *User) IsCoordinator() bool {
	return u.Role == RoleCoordinator
}

func (u *User) IsDirector() bool {
	return u.Role == RoleDirector
}

// CanManageLogOf reports whether u may edit or delete a log owned by collaboratorID.
func (u *User) CanManageLogOf(collaboratorID string) bool {
	if u.IsCoordinator() {
		return true
	}
	return u.ID == collaboratorID
}

func (u *User) CanLogHours() bool {
	return u.IsCollaborator() || u.IsCoordinator()
}

func (u *User) CanManageTeam() bool {
	return u.IsCoordinator() || u.IsDirector()
}

func (u *User) CanExport() bool {
	return u.IsCoordinator() || u.IsDirector()
}
