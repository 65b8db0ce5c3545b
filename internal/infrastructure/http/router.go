// Package http wires the chi router: middleware chain, public auth
// endpoints and the guarded back-office resources.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/http/handlers"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/http/middleware"
)

// RouterConfig carries everything the router needs. All handlers are
// required; RateLimit and CORSOrigins may be empty to disable.
type RouterConfig struct {
	Logger        zerolog.Logger
	Guard         *middleware.RequestGuard
	Auth          *handlers.AuthHandler
	Accounts      *handlers.AccountsHandler
	Clients       *handlers.ClientsHandler
	Insurers      *handlers.InsurersHandler
	Policies      *handlers.PoliciesHandler
	Opportunities *handlers.OpportunitiesHandler
	Tasks         *handlers.TasksHandler
	Health        *handlers.HealthHandler
	RateLimit     string
	CORSOrigins   []string
	DevMode       bool
}

// NewRouter builds the HTTP surface. Auth endpoints stay outside the
// guard; everything else requires a valid access token.
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(chimid.Recoverer)
	r.Use(chimid.Timeout(30 * time.Second))
	r.Use(middleware.Prometheus)
	r.Use(middleware.NewSecure(middleware.SecureOptions(cfg.DevMode)))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	rateLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r.Get("/health", cfg.Health.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rateLimit)
			r.Use(chimid.AllowContentType("application/json"))
			r.Post("/login", cfg.Auth.Login)
			r.Post("/refresh", cfg.Auth.Refresh)
			r.Post("/logout", cfg.Auth.Logout)
		})
		r.Group(func(r chi.Router) {
			r.Use(cfg.Guard.Handler)
			r.Get("/me", cfg.Auth.Me)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(cfg.Guard.Handler)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", cfg.Clients.List)
			r.Post("/", cfg.Clients.Create)
			r.Get("/{id}", cfg.Clients.Get)
			r.Put("/{id}", cfg.Clients.Update)
			r.Delete("/{id}", cfg.Clients.Delete)
		})

		r.Route("/insurers", func(r chi.Router) {
			r.Get("/", cfg.Insurers.List)
			r.Post("/", cfg.Insurers.Create)
			r.Get("/{id}", cfg.Insurers.Get)
			r.Put("/{id}", cfg.Insurers.Update)
			r.Delete("/{id}", cfg.Insurers.Delete)
		})

		r.Route("/policies", func(r chi.Router) {
			r.Get("/", cfg.Policies.List)
			r.Post("/", cfg.Policies.Create)
			r.Get("/{id}", cfg.Policies.Get)
			r.Put("/{id}", cfg.Policies.Update)
			r.Delete("/{id}", cfg.Policies.Delete)
		})
		r.Get("/renewals", cfg.Policies.Renewals)

		r.Route("/opportunities", func(r chi.Router) {
			r.Get("/", cfg.Opportunities.List)
			r.Post("/", cfg.Opportunities.Create)
			r.Get("/{id}", cfg.Opportunities.Get)
			r.Patch("/{id}/stage", cfg.Opportunities.MoveStage)
			r.Delete("/{id}", cfg.Opportunities.Delete)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", cfg.Tasks.List)
			r.Post("/", cfg.Tasks.Create)
			r.Post("/{id}/complete", cfg.Tasks.Complete)
			r.Delete("/{id}", cfg.Tasks.Delete)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleAdmin))
			r.Get("/", cfg.Accounts.List)
			r.Post("/", cfg.Accounts.Create)
			r.Put("/{id}/password", cfg.Accounts.SetPassword)
		})
	})

	return r, nil
}

func requestLogger(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimid.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", chimid.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
