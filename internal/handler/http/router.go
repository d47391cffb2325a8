package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pontocerto/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	companyHandler CompanyHandler,
	afdHandler AfdHandler,
	punchHandler PunchHandler,
	adjustmentHandler AdjustmentHandler,
	timesheetHandler TimesheetHandler,
	auditHandler AuditHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-certo"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Self-service
			r.Post("/punches/clock-in", punchHandler.ClockIn)
			r.Get("/timesheet/my", timesheetHandler.GetMyMonthlyMirror)
			r.Route("/adjustments", func(r chi.Router) {
				r.Post("/", adjustmentHandler.Create)
				r.Get("/my", adjustmentHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", adjustmentHandler.ListPending)
					r.Post("/{id}/process", adjustmentHandler.Process)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
					r.Get("/{id}/punches", punchHandler.ListByEmployee)
					r.Get("/{id}/timesheet", timesheetHandler.GetMonthlyMirror)
					r.Get("/{id}/audit", auditHandler.ListByEmployee)
				})

				r.Route("/company", func(r chi.Router) {
					r.Get("/settings", companyHandler.GetSettings)
					r.Put("/settings", companyHandler.UpdateSettings)
					r.Route("/holidays", func(r chi.Router) {
						r.Get("/", companyHandler.ListHolidays)
						r.Post("/", companyHandler.CreateHoliday)
						r.Delete("/{id}", companyHandler.DeleteHoliday)
					})
				})

				r.Route("/afd", func(r chi.Router) {
					r.Post("/upload", afdHandler.Upload)
					r.Get("/imports", afdHandler.ListImports)
				})

				r.Route("/punches", func(r chi.Router) {
					r.Post("/", punchHandler.CreateManual)
					r.Put("/{id}", punchHandler.Edit)
					r.Delete("/{id}", punchHandler.SoftDelete)
				})

				r.Get("/audit", auditHandler.List)
			})
		})
	})
	return r
}
