package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/handler/http/middleware"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	corsOrigin string,
	authHandler AuthHandler,
	timesheetHandler TimesheetHandler,
	absenceHandler AbsenceHandler,
	validationHandler ValidationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeflow"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

			r.Get("/semaines", timesheetHandler.WeekOptions)

			r.Route("/pointages", func(r chi.Router) {
				r.Post("/", timesheetHandler.Upsert)
				r.Get("/", timesheetHandler.List)
				r.Delete("/{id}", timesheetHandler.Delete)
				r.Get("/semaine/{annee}/{semaine}", timesheetHandler.Week)

				r.Post("/soumettre", validationHandler.Submit)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/valider", validationHandler.Validate)
					r.Post("/rejeter", validationHandler.Reject)
					r.Post("/rouvrir", validationHandler.Reopen)
					r.Get("/a-valider", validationHandler.PendingQueue)
				})
			})

			r.Route("/conges", func(r chi.Router) {
				r.Post("/", absenceHandler.Set)
				r.Get("/", absenceHandler.List)
				r.Delete("/{id}", absenceHandler.Delete)
				r.Get("/types", absenceHandler.Types)
				r.Get("/jours-feries", absenceHandler.Holidays)
			})
		})
	})

	return r
}
