package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/gsh-hris/roster-backend-go/internal/handler/http/middleware"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	dutyHandler DutyScheduleHandler,
	masterHandler MasterHandler,
	employeeHandler EmployeeHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "roster-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/duty-schedules", func(r chi.Router) {
				r.Get("/", dutyHandler.List)
				r.Get("/{scheduleID}", dutyHandler.Get)
				r.Get("/{scheduleID}/calendar", dutyHandler.GetCalendarView)
				r.Get("/{scheduleID}/export", dutyHandler.Export)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", dutyHandler.Create)
					r.Delete("/{scheduleID}", dutyHandler.Delete)
					r.Put("/{scheduleID}/entries", dutyHandler.UpsertEntry)
					r.Delete("/{scheduleID}/entries/{date}", dutyHandler.DeleteEntry)
					r.Post("/{scheduleID}/submit", dutyHandler.SubmitForApproval)
				})

				// Approver or admin
				r.With(middleware.RequireApprover).
					Post("/{scheduleID}/decision", dutyHandler.RecordDecision)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{employeeID}", employeeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.Create)
					r.Put("/{employeeID}", employeeHandler.Update)
					r.Delete("/{employeeID}", employeeHandler.Delete)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Route("/shift-templates", func(r chi.Router) {
					r.Get("/", masterHandler.ListShiftTemplates)
					r.Get("/{templateID}", masterHandler.GetShiftTemplate)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", masterHandler.CreateShiftTemplate)
						r.Put("/{templateID}", masterHandler.UpdateShiftTemplate)
						r.Delete("/{templateID}", masterHandler.DeleteShiftTemplate)
					})
				})

				r.Route("/leave-templates", func(r chi.Router) {
					r.Get("/", masterHandler.ListLeaveTemplates)
					r.Get("/{templateID}", masterHandler.GetLeaveTemplate)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", masterHandler.CreateLeaveTemplate)
						r.Put("/{templateID}", masterHandler.UpdateLeaveTemplate)
						r.Delete("/{templateID}", masterHandler.DeleteLeaveTemplate)
					})
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", masterHandler.ListHolidays)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", masterHandler.CreateHoliday)
						r.Put("/{holidayID}", masterHandler.UpdateHoliday)
						r.Delete("/{holidayID}", masterHandler.DeleteHoliday)
					})
				})
			})
		})
	})
	return r
}
