package http

import (
	"net/http"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/httpx"
	"github.com/SPMA4P97/jess-credentials/pkg/portalapi"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the state of the backing store
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portalapi.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	portalapi.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &portalapi.HealthChecks{
			Store: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := portalapi.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
