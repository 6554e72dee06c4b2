package models

import "fmt"

const AdminID = "admin-id"

var Activities = []string{
	"RGP/RDG", "Periódico", "Relatório de Despesa", "Deslocamento",
	"Evento/Congresso/WS", "Treinamento", "TI", "Elaboração",
	"Revisão", "Validação", "Reunião", "Falha de manutenção",
	"Acompanhamento de performance", "Análise de log", "Atividades de rescaldo",
	"Elaboração Planilha Teste", "Elaboração Roteiro CO", "Comissionamento",
}

var Specialties = []string{
	"Estagiário(a)", "Assistente", "Técnico", "Analista Junior",
	"Analista Pleno", "Analista Sênior", "Especialista I",
	"Especialista II", "Especialista III", "Especialista IV",
}

var seedCollaborators = []string{
	"Admin",
	"Raphael", "Abner Orra", "Adalberto Kumagaia", "Alan Wliam", "Alexandre Meneghel",
	"Antônio Leal", "Barbara Diolindo", "Guilherme Rodrigues", "Hygor Teodoro",
	"Iago Marques", "Jesus Figueredo", "João Paulo Rocha", "Jonatas Cedro",
	"Lucas Abreu", "Marcio Moreira", "Marcos Reinh", "Paulo Henrique",
	"Pedro Melo", "Pedro Pinto", "Pedro Santana", "Rodrigo Gonçalves",
	"Tiago Gomes", "Tony Dornelas", "Vinicius Rodrigues", "Marcos Taninho",
}

var seedProjects = []string{
	"CBTC – Margem Direita", "Pátio de cruzamento de Aparecida",
	"Pátio de Manobras de Campo Grande", "Pátio Regulador Jurubatuba",
	"Pátio Regulador Prainha", "Remotas 2025/2026", "Subestação de Cremalheira",
	"272 – CBTC Serra do MAR", "272 – Adequações de pátios (FOS – Santa Rosa)",
	"Automação Cremalheira", "Cancelas Automáticas Ar-4", "CTC–Vale do Paraíba",
	"Expansão Terminal Casa de Pedra", "Intercâmbio EFVM", "Metrô BH",
	"272 – Comunicação UHF", "Pátio Integrado de Santos Fase Ampliada",
	"Viaduto Mário Campos 1", "Drenagem de Santos", "Expansão Brismarr (TECAR)",
	"Requalificação Urbana da via ferroviária (Ciclovia)", "Trecho 1 (Campo Limpo e Jundiaí – Segregações)",
	"PROJETONOVO",
}

func SeedUsers() []User {
	users := make([]User, 0, len(seedCollaborators))
	for i, name := range seedCollaborators {
		u := User{
			ID:     fmt.Sprintf("u-%d", i),
			Name:   name,
			Role:   RoleCollaborator,
			Active: true,
		}
		switch name {
		case "Admin":
			u.ID = AdminID
			u.Role = RoleDirector
			u.Specialty = "Especialista IV"
		case "Alexandre Meneghel":
			u.Role = RoleCoordinator
		case "Guilherme Rodrigues":
			u.Role = RoleDirector
		}
		users = append(users, u)
	}
	return users
}

func SeedProjects() []Project {
	projects := make([]Project, 0, len(seedProjects))
	for i, name := range seedProjects {
		projects = append(projects, Project{
			ID:     fmt.Sprintf("p-%d", i),
			Name:   name,
			Status: ProjectActive,
		})
	}
	return projects
}

func SeedAllocations(today Date) []Allocation {
	return []Allocation{
		{ID: "a1", UserID: "u-1", ProjectID: "p-1", ProjectName: "Pátio Aparecida", StartDate: today, DurationDays: 3, HoursPerDay: 8, Color: "#003057"},
		{ID: "a2", UserID: "u-2", ProjectID: "p-2", ProjectName: "CBTC Serra", StartDate: today, DurationDays: 5, HoursPerDay: 4, Color: "#0058a3"},
		{ID: "a3", UserID: "u-3", ProjectID: "p-3", ProjectName: "Cancelas Ar-4", StartDate: today, DurationDays: 2, HoursPerDay: 6, Color: "#001b31"},
	}
}
