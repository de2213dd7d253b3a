package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"kartabogor.or.id/web/internal/config"
	"kartabogor.or.id/web/internal/content"
	"kartabogor.or.id/web/internal/observability"
	"kartabogor.or.id/web/internal/page"
	"kartabogor.or.id/web/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Flags override the environment for local runs.
	var port, tmplPath, contentPath string
	var noPanel bool
	flag.StringVar(&port, "port", cfg.Server.Port, "HTTP listen port")
	flag.StringVar(&tmplPath, "templates", cfg.Site.TemplatesDir, "templates directory (read in dev mode)")
	flag.StringVar(&contentPath, "content", cfg.Site.ContentFile, "YAML content override")
	flag.BoolVar(&noPanel, "no-selfcheck", false, "hide the self-check panel")
	flag.Parse()

	cfg.Server.Port = strings.TrimPrefix(port, ":")
	cfg.Site.TemplatesDir = tmplPath
	cfg.Site.ContentFile = contentPath
	if noPanel {
		cfg.Site.SelfCheckPanel = false
	}

	logger, err := observability.NewLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := newServer(cfg, logger)
	if err != nil {
		logger.Fatal("build server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("web listening",
		zap.String("addr", srv.Addr),
		zap.Bool("dev_mode", cfg.Site.DevMode),
		zap.Bool("selfcheck_panel", cfg.Site.SelfCheckPanel),
	)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		cancel()
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("web stopped")
}

// newServer loads content, prepares the renderer and wires the HTTP server.
func newServer(cfg config.Config, logger *zap.Logger) (*http.Server, error) {
	site, err := content.Load(cfg.Site.ContentFile)
	if err != nil {
		return nil, err
	}
	renderer, err := page.New(site, page.Options{
		DevMode:        cfg.Site.DevMode,
		DevDir:         cfg.Site.TemplatesDir,
		SelfCheckPanel: cfg.Site.SelfCheckPanel,
		BaseURL:        cfg.Site.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Site.ContentFile != "" {
		logger.Info("content override loaded", zap.String("file", cfg.Site.ContentFile))
	}
	return server.New(cfg.Server, server.Deps{Renderer: renderer, Logger: logger})
}
