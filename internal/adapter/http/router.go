package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/fletero/backoffice/internal/adapter/http/handler"
	"github.com/fletero/backoffice/internal/adapter/http/middleware"
	"github.com/fletero/backoffice/internal/infrastructure/auth"
	"github.com/fletero/backoffice/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	CajaHandler         *handler.CajaHandler
	IngresoHandler      *handler.IngresoHandler
	GastoHandler        *handler.GastoHandler
	RemuneracionHandler *handler.RemuneracionHandler
	LegalHandler        *handler.LegalHandler
	RendicionHandler    *handler.RendicionHandler
	SalidaHandler       *handler.SalidaHandler
	OrdenHandler        *handler.OrdenHandler
	ChoferHandler       *handler.ChoferHandler
	HealthHandler       *handler.HealthHandler
	EventStream         http.Handler
	JWTManager          *auth.JWTManager
	CookieName          string
	IdempotencyStore    usecase.IdempotencyStore
	Logger              zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Session endpoints, no auth required
		r.Group(func(r chi.Router) {
			r.Post("/signup", cfg.AuthHandler.Signup)
			r.Post("/signin", cfg.AuthHandler.Signin)
			r.Post("/signout", cfg.AuthHandler.Signout)
		})

		// Authenticated API
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager, cfg.CookieName))

			// Replays of money mutations must not move the caja twice
			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
				r.Use(idempotencyMiddleware.Wrap)
			}

			r.Get("/profile", cfg.AuthHandler.Profile)

			// Live event stream
			if cfg.EventStream != nil {
				r.Handle("/events", cfg.EventStream)
			}

			// Cajas
			r.Route("/cajas", func(r chi.Router) {
				r.Post("/", cfg.CajaHandler.Provision)
				r.Get("/", cfg.CajaHandler.List)
				r.Get("/consistency", cfg.CajaHandler.Consistency)
				r.Get("/{id}", cfg.CajaHandler.Get)
				r.With(middleware.RequireAdmin).Put("/{id}/total", cfg.CajaHandler.SetTotal)
			})

			// Ingresos
			r.Route("/ingresos", func(r chi.Router) {
				r.Post("/", cfg.IngresoHandler.Create)
				r.Get("/", cfg.IngresoHandler.List)
				r.Get("/mensual", cfg.IngresoHandler.ListMensual)
				r.Get("/rango", cfg.IngresoHandler.ListPorFechas)
				r.With(middleware.RequireAdmin).Get("/admin", cfg.IngresoHandler.ListAdmin)
				r.Get("/{id}", cfg.IngresoHandler.Get)
				r.Put("/{id}", cfg.IngresoHandler.Update)
				r.Delete("/{id}", cfg.IngresoHandler.Delete)
			})

			// Gastos
			r.Route("/gastos", func(r chi.Router) {
				r.Post("/", cfg.GastoHandler.Create)
				r.Get("/", cfg.GastoHandler.List)
				r.Get("/mensual", cfg.GastoHandler.ListMensual)
				r.Get("/rango", cfg.GastoHandler.ListPorFechas)
				r.With(middleware.RequireAdmin).Get("/admin", cfg.GastoHandler.ListAdmin)
				r.Get("/{id}", cfg.GastoHandler.Get)
				r.Put("/{id}", cfg.GastoHandler.Update)
				r.Delete("/{id}", cfg.GastoHandler.Delete)
			})

			// Remuneraciones
			r.Route("/remuneraciones", func(r chi.Router) {
				r.Post("/", cfg.RemuneracionHandler.Create)
				r.Get("/", cfg.RemuneracionHandler.List)
				r.Get("/mensual", cfg.RemuneracionHandler.ListMensual)
				r.Get("/rango", cfg.RemuneracionHandler.ListPorFechas)
				r.With(middleware.RequireAdmin).Get("/admin", cfg.RemuneracionHandler.ListAdmin)
				r.Get("/{id}", cfg.RemuneracionHandler.Get)
				r.Put("/{id}", cfg.RemuneracionHandler.Update)
				r.Delete("/{id}", cfg.RemuneracionHandler.Delete)
			})

			// Legales
			r.Route("/legales", func(r chi.Router) {
				r.Post("/", cfg.LegalHandler.Create)
				r.Get("/", cfg.LegalHandler.List)
				r.Get("/mensual", cfg.LegalHandler.ListMensual)
				r.Get("/rango", cfg.LegalHandler.ListPorFechas)
				r.With(middleware.RequireAdmin).Get("/admin", cfg.LegalHandler.ListAdmin)
				r.Get("/{id}", cfg.LegalHandler.Get)
				r.Put("/{id}", cfg.LegalHandler.Update)
				r.Delete("/{id}", cfg.LegalHandler.Delete)
			})

			// Rendiciones
			r.Route("/rendiciones", func(r chi.Router) {
				r.Post("/", cfg.RendicionHandler.Create)
				r.Get("/", cfg.RendicionHandler.List)
				r.Get("/mensual", cfg.RendicionHandler.ListMensual)
				r.Get("/rango", cfg.RendicionHandler.ListPorFechas)
				r.With(middleware.RequireAdmin).Get("/admin", cfg.RendicionHandler.ListAdmin)
				r.Get("/{id}", cfg.RendicionHandler.Get)
				r.Put("/{id}", cfg.RendicionHandler.Update)
				r.Delete("/{id}", cfg.RendicionHandler.Delete)
			})

			// Salidas
			r.Route("/salidas", func(r chi.Router) {
				r.Post("/", cfg.SalidaHandler.Create)
				r.Get("/", cfg.SalidaHandler.List)
				r.Get("/mensual", cfg.SalidaHandler.ListMensual)
				r.Get("/rango", cfg.SalidaHandler.ListPorFechas)
				r.Get("/{id}", cfg.SalidaHandler.Get)
				r.Put("/{id}", cfg.SalidaHandler.Update)
				r.Delete("/{id}", cfg.SalidaHandler.Delete)
			})

			// Ordenes
			r.Route("/ordenes", func(r chi.Router) {
				r.Post("/", cfg.OrdenHandler.Create)
				r.Get("/", cfg.OrdenHandler.List)
				r.Get("/mensual", cfg.OrdenHandler.ListMensual)
				r.Get("/rango", cfg.OrdenHandler.ListPorFechas)
				r.Get("/{id}", cfg.OrdenHandler.Get)
				r.Put("/{id}", cfg.OrdenHandler.Update)
				r.Post("/{id}/finalizar", cfg.OrdenHandler.Finalizar)
				r.Delete("/{id}", cfg.OrdenHandler.Delete)
			})

			// Choferes
			r.Route("/choferes", func(r chi.Router) {
				r.Post("/", cfg.ChoferHandler.Create)
				r.Get("/", cfg.ChoferHandler.List)
				r.Get("/{id}", cfg.ChoferHandler.Get)
				r.Put("/{id}", cfg.ChoferHandler.Update)
				r.Delete("/{id}", cfg.ChoferHandler.Delete)
			})
		})
	})

	return r
}
