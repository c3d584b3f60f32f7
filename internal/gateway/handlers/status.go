package handlers

import (
	"net/http"

	"github.com/kamdevo/AniKam/internal/netmon"
	"github.com/kamdevo/AniKam/internal/platform/api"
)

type statusResponse struct {
	Network      netmon.Status `json:"network"`
	QueuedCalls  int           `json:"queued_calls"`
	UpstreamBase string        `json:"upstream_base"`
}

// Status handles GET /v1/status: connectivity readout plus current
// upstream queue depth.
func Status(mon *netmon.Monitor, queueLen func() int, upstreamBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := statusResponse{UpstreamBase: upstreamBase}
		if mon != nil {
			out.Network = mon.Status()
		}
		if queueLen != nil {
			out.QueuedCalls = queueLen()
		}
		api.WriteJSON(w, http.StatusOK, out)
	}
}
