package main

import (
	"net/http"

	"clocking/config"
	"clocking/handlers"
	"clocking/metrics"
	"clocking/middleware"
	"clocking/models"
	"clocking/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func newRouter(cfg *config.Config, s *store.Store, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	authHandler := handlers.NewAuthHandler(cfg, s, logger)
	timeLogHandler := handlers.NewTimeLogHandler(s, m, logger)
	userHandler := handlers.NewUserHandler(s, logger)
	projectHandler := handlers.NewProjectHandler(s, logger)
	plannerHandler := handlers.NewPlannerHandler(s, m, logger)
	reportHandler := handlers.NewReportHandler(s, logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(m.Middleware)

	if cfg.MetricsEnabled {
		router.Handle(cfg.MetricsPath, m.Handler())
	}
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(s))

			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
			r.Get("/session", authHandler.GetSession)
			r.Put("/session", authHandler.UpdateSession)
			r.Get("/projects", projectHandler.List)
			r.Get("/activities", projectHandler.Activities)
			r.Get("/specialties", userHandler.Specialties)

			// My day and history
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleCollaborator, models.RoleCoordinator))
				r.Get("/logs", timeLogHandler.MyLogs)
				r.Post("/logs", timeLogHandler.Create)
				r.Put("/logs/{id}", timeLogHandler.Update)
				r.Delete("/logs/{id}", timeLogHandler.Delete)
			})

			// Team, planning and reports
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleCoordinator, models.RoleDirector))

				r.Get("/users", userHandler.List)
				r.Post("/users", userHandler.Create)
				r.Post("/users/import", userHandler.Import)
				r.Put("/users/{id}", userHandler.Update)
				r.Delete("/users/{id}", userHandler.Delete)
				r.Post("/users/{id}/toggle", userHandler.ToggleStatus)

				r.Post("/projects", projectHandler.Create)
				r.Put("/projects/{id}/status", projectHandler.SetStatus)

				r.Get("/team/logs", timeLogHandler.TeamLogs)

				r.Get("/planner", plannerHandler.Grid)
				r.Get("/planner/load", plannerHandler.Load)
				r.Get("/allocations", plannerHandler.Allocations)
				r.Post("/allocations", plannerHandler.CreateAllocation)
				r.Put("/allocations/{id}/move", plannerHandler.MoveAllocation)
				r.Delete("/allocations/{id}", plannerHandler.DeleteAllocation)

				r.Get("/reports/summary", reportHandler.Summary)
				r.Get("/reports/export.csv", reportHandler.ExportCSV)
			})
		})
	})

	return router
}
