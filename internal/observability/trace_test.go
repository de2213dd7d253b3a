package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestTraceMiddlewareWithoutProvider(t *testing.T) {
	var called bool
	h := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		// The global no-op provider never yields a valid trace id.
		if id := TraceID(r); id != "" {
			t.Errorf("expected empty trace id, got %q", id)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !called || rec.Code != http.StatusNoContent {
		t.Fatalf("handler not reached: called=%v code=%d", called, rec.Code)
	}
}

func TestTraceIDFromRemoteContext(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, Remote: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(trace.ContextWithRemoteSpanContext(req.Context(), sc))
	if got := TraceID(req); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("unexpected trace id %q", got)
	}
}

func TestSpanName(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/selfcheck", nil)
	if got := spanName(req); got != "GET /selfcheck" {
		t.Fatalf("unexpected span name %q", got)
	}
}
