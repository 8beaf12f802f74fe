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
	"github.com/suweldo-hq/payroll-engine-go/internal/handler/http/middleware"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, periodHandler PeriodHandler, payrollHandler PayrollHandler, employeeHandler EmployeeHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-engine"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireCompany)

			r.Route("/periods", func(r chi.Router) {
				r.Get("/", periodHandler.List)
				r.Post("/", periodHandler.Create)

				r.Route("/{periodID}", func(r chi.Router) {
					r.Get("/", periodHandler.GetByID)
					r.Post("/compute", payrollHandler.ComputePeriod)
					r.Get("/entries", payrollHandler.ListEntries)

					r.Route("/employees/{employeeID}", func(r chi.Router) {
						r.Post("/compute", payrollHandler.ComputeEmployee)
						r.Get("/preview", payrollHandler.Preview)
					})
				})
			})

			r.Route("/entries/{entryID}", func(r chi.Router) {
				r.Get("/", payrollHandler.GetEntry)
				r.Post("/review", payrollHandler.Review)
				r.Post("/approve", payrollHandler.Approve)
				r.Post("/pay", payrollHandler.MarkPaid)
			})

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/adjustments", employeeHandler.ListAdjustments)
				r.Get("/loans", employeeHandler.ListLoans)
			})
		})
	})
	return r
}
