package httpapi

import (
	"net/http"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/spiffler33/taxhawk/internal/model"
)

// progressEvent is one message pushed over the /v1/reports/stream
// websocket as each check completes, mirroring the module's existing
// hierarchical-progress-callback pattern (SPEC_FULL.md §11).
type progressEvent struct {
	CheckID string `json:"check_id"`
	Status  string `json:"status"`
	Savings int    `json:"savings,omitempty"`
	Done    bool   `json:"done"`
}

// handleStreamReport upgrades to a websocket, reads one
// createReportRequest as the client's first message (browsers cannot
// attach a body to the upgrade GET request), then pushes one
// progressEvent per check, in registry order, once
// orchestrator.EvaluateStreaming has run all of them. Routing through the same Orchestrator used by
// handleCreateReport guarantees the regime-interdependency suppression
// of spec.md §4.4 step 4 is applied before any event is written, so the
// stream never shows a deduction-check savings figure that the
// synchronous POST /v1/reports response would have zeroed out.
func (s *Server) handleStreamReport(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	ctx := r.Context()

	var req createReportRequest
	if err := wsjson.Read(ctx, conn, &req); err != nil {
		conn.Close(websocket.StatusPolicyViolation, "expected a createReportRequest as the first message")
		return
	}

	writeErr := error(nil)
	s.orchestrator.EvaluateStreaming(req.Profile, req.Holdings, req.Options, func(finding model.Finding) {
		if writeErr != nil {
			return
		}
		event := progressEvent{
			CheckID: finding.CheckID,
			Status:  string(finding.Status),
			Savings: finding.Savings,
		}
		writeErr = wsjson.Write(ctx, conn, event)
	})
	if writeErr != nil {
		return
	}

	_ = wsjson.Write(ctx, conn, progressEvent{Done: true})
}
