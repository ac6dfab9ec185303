package router

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/learnsphere-dev/learnsphere/frontend/internal/middleware"
	"github.com/learnsphere-dev/learnsphere/frontend/internal/setup"
	"github.com/learnsphere-dev/learnsphere/shared/csrf"
	mw "github.com/learnsphere-dev/learnsphere/shared/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config
	h := deps.Handler

	r := chi.NewRouter()
	r.Use(deps.Metrics.Middleware)

	// Pages hosted next to the API fetch the bundle and config cross-origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Frontend.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", csrf.HeaderName},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeadersWithCSP(cfg.Frontend.HSTS, mw.WasmCSP(apiOrigin(cfg.API.BaseURL))))

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))

	// Page routes get the csrftoken cookie the API expects on unsafe calls.
	r.Group(func(r chi.Router) {
		r.Use(middleware.GenerateCSRFToken(middleware.CSRFConfig{SecureCookies: cfg.Frontend.SecureCookies}))

		r.Get("/config.json", h.GetPublicConfig)
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Frontend.StaticDir)))
		r.Handle("/static/*", fs)
		// FileServer answers index.html itself and redirects that name to the directory.
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/static/", http.StatusFound)
		})
	})

	return r
}

// apiOrigin reduces the API base URL to scheme://host for connect-src.
func apiOrigin(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
