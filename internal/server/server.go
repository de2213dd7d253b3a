package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"kartabogor.or.id/web/internal/config"
	"kartabogor.or.id/web/internal/handlers"
	mw "kartabogor.or.id/web/internal/middleware"
	"kartabogor.or.id/web/internal/observability"
	"kartabogor.or.id/web/public"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Renderer handlers.Renderer
	Logger   *zap.Logger
}

// defaultRequestTimeout applies when the write timeout is unset.
const defaultRequestTimeout = 15 * time.Second

var errNoRenderer = errors.New("server: renderer is required")

// NewRouter builds the chi router with the middleware stack and routes.
// Handlers are cut off after cfg.WriteTimeout.
func NewRouter(cfg config.ServerConfig, deps Deps) (http.Handler, error) {
	if isNil(deps.Renderer) {
		return nil, errNoRenderer
	}
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(observability.TraceMiddleware)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(timeout))

	r.Get("/healthz", handlers.Healthz)
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(staticContent)))
	r.Get("/", handlers.Home(deps.Renderer))
	r.Get("/selfcheck", handlers.SelfCheck(deps.Renderer))

	return r, nil
}

// New constructs the HTTP server for cfg.
func New(cfg config.ServerConfig, deps Deps) (*http.Server, error) {
	router, err := NewRouter(cfg, deps)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}, nil
}

// isNil also catches a typed nil pointer stored in the interface.
func isNil(v handlers.Renderer) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
