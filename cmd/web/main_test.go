package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"kartabogor.or.id/web/internal/config"
	"kartabogor.or.id/web/internal/content"
)

func loadTestConfig(t *testing.T, env map[string]string) config.Config {
	t.Helper()
	cfg, err := config.Load(config.WithoutSystemEnv(), config.WithEnvFile(""), config.WithEnvMap(env))
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	return cfg
}

func TestNewServerServesHome(t *testing.T) {
	cfg := loadTestConfig(t, map[string]string{
		"KARTA_WEB_PORT":          "9090",
		"KARTA_WEB_DEV":           "1",
		"KARTA_WEB_TEMPLATES_DIR": "../../templates",
	})
	srv, err := newServer(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newServer failed: %v", err)
	}
	if srv.Addr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", srv.Addr)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "data-selfcheck-panel") {
		t.Fatalf("expected self-check panel by default")
	}
	if strings.Contains(body, `data-pass="false"`) {
		t.Fatalf("expected all checks to pass")
	}
}

func TestNewServerContentOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	yaml := "brand:\n  name: Karang Taruna Uji\nhero:\n  title: Judul Uji\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write content: %v", err)
	}
	cfg := loadTestConfig(t, map[string]string{
		"KARTA_WEB_CONTENT_FILE": path,
		"KARTA_WEB_SELFCHECK":    "false",
	})
	srv, err := newServer(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newServer failed: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "Karang Taruna Uji") || !strings.Contains(body, "Judul Uji") {
		t.Fatalf("expected overridden content in page")
	}
	if strings.Contains(body, "data-selfcheck-panel") {
		t.Fatalf("panel should be disabled")
	}
}

func TestNewServerMissingContentFile(t *testing.T) {
	cfg := loadTestConfig(t, map[string]string{
		"KARTA_WEB_CONTENT_FILE": filepath.Join(t.TempDir(), "missing.yaml"),
	})
	_, err := newServer(cfg, zap.NewNop())
	if !errors.Is(err, content.ErrNoContentFile) {
		t.Fatalf("expected ErrNoContentFile, got %v", err)
	}
}

func TestNewServerRejectsInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	yaml := "nav:\n  - label: Program\n    href: \"#programs\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write content: %v", err)
	}
	cfg := loadTestConfig(t, map[string]string{"KARTA_WEB_CONTENT_FILE": path})
	_, err := newServer(cfg, zap.NewNop())
	var verr *content.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected content.ValidationError, got %v", err)
	}
}
