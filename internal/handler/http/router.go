package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workforge-hr/workforge-backend-go/internal/config"
	"github.com/workforge-hr/workforge-backend-go/internal/handler/http/middleware"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Team       TeamHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Task       TaskHandler
	Settings   SettingsHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforge-hr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/profile", h.User.GetProfile)
			r.Get("/dashboard/stats", h.Dashboard.Stats)

			r.Route("/users", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Get("/", h.User.List)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.User.Create)
					r.Get("/grouping", h.User.TeamGrouping)
					r.Get("/{id}", h.User.Get)
					r.Put("/{id}", h.User.Update)
					r.Post("/{id}/reset-password", h.User.ResetPassword)
					r.Delete("/{id}", h.User.Delete)
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Team.List)
				r.Get("/{id}", h.Team.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Team.Create)
					r.Put("/{id}", h.Team.Update)
					r.Delete("/{id}", h.Team.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/", h.Attendance.Mark)
					r.Put("/{id}", h.Attendance.Update)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.List)
				r.Get("/{id}", h.Payroll.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Payroll.Create)
					r.Post("/bulk", h.Payroll.BulkReconcile)
					r.Put("/{id}", h.Payroll.Update)
					r.Delete("/{id}", h.Payroll.Delete)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Get("/{id}", h.Task.Get)
				r.Put("/{id}", h.Task.Update)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/", h.Task.Create)
					r.Delete("/{id}", h.Task.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/organization", h.Settings.GetOrganization)
				r.Put("/organization", h.Settings.UpdateOrganization)
				r.Get("/preferences", h.Settings.GetPreferences)
				r.Put("/preferences", h.Settings.UpdatePreferences)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
