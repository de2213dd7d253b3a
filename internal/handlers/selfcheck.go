package handlers

import (
	"net/http"

	"go.uber.org/zap"

	mw "kartabogor.or.id/web/internal/middleware"
	"kartabogor.or.id/web/internal/observability"
	"kartabogor.or.id/web/internal/selfcheck"
)

type selfCheckResponse struct {
	OK      bool               `json:"ok"`
	Passed  int                `json:"passed"`
	Failed  int                `json:"failed"`
	Results []selfcheck.Result `json:"results"`
}

// SelfCheck serves the self-check report as JSON. Failing checks still answer
// 200: the report is a diagnostic, not a health signal.
func SelfCheck(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := renderer.Report(r.Context())
		if err != nil {
			observability.FromContext(r.Context()).Error("self-check report", zap.Error(err))
			mw.WriteJSONError(w, r, http.StatusInternalServerError, "self-check unavailable")
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		mw.WriteJSON(w, r, http.StatusOK, selfCheckResponse{
			OK:      report.OK(),
			Passed:  report.Passed,
			Failed:  report.Failed,
			Results: report.Results,
		})
	}
}
