package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"kartabogor.or.id/web/internal/observability"
	"kartabogor.or.id/web/internal/selfcheck"
)

// Renderer produces the page and its self-check report.
type Renderer interface {
	Render(ctx context.Context, w io.Writer) error
	Report(ctx context.Context) (selfcheck.Report, error)
}

// Home renders the landing page.
func Home(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := renderer.Render(r.Context(), &buf); err != nil {
			observability.FromContext(r.Context()).Error("render page", zap.Error(err))
			if r.Context().Err() != nil {
				// the timeout middleware answers once the handler returns
				return
			}
			http.Error(w, "template exec error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
