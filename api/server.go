/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. RequestLogger: structured request logging via httplog/slog
  2. Recoverer:     Panic recovery (500 instead of crash)
  3. CORS:          Cross-origin requests for frontend
  4. Heartbeat:     /health liveness check

ROUTE GROUPS:
  /api/workers/*     Worker management, salary, attendance history
  /api/attendance/*  Day marking and day queries
  /api/payments/*    Payment recording
  /api/analytics/*   Rolling summary, metrics, insights
  /api/settings      Display and scheduling preferences
  /api/seed          Demo data loading (dev only)

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, corsOrigin string) *chi.Mux {
	logFormat := httplog.SchemaECS.Concise(true)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "house-help"),
	)

	r := chi.NewRouter()

	// Middleware
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin, "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Heartbeat("/health"))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Worker routes
		r.Route("/workers", func(r chi.Router) {
			r.Get("/", h.ListWorkers)
			r.Post("/", h.CreateWorker)
			r.Get("/{id}", h.GetWorker)
			r.Patch("/{id}", h.UpdateWorker)
			r.Delete("/{id}", h.DeleteWorker)
			r.Get("/{id}/salary", h.GetWorkerSalary)
			r.Get("/{id}/attendance", h.GetWorkerAttendance)
		})

		// Attendance routes
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.ListAttendance)
			r.Post("/", h.MarkAttendance)
		})

		// Payment routes
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.ListPayments)
			r.Post("/", h.CreatePayment)
			r.Patch("/{id}", h.UpdatePayment)
			r.Delete("/{id}", h.DeletePayment)
		})

		// Analytics routes
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/", h.GetAnalytics)
			r.Get("/metrics", h.GetWorkerMetrics)
			r.Get("/insights", h.GetInsights)
		})

		// Settings routes
		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.PutSettings)

		// Demo data
		r.Post("/seed", h.SeedDemoData)
	})

	return r
}
