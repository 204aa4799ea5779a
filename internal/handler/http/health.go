package http

import (
	"net/http"

	"github.com/MKhiriev/go-turf-booking/internal/utils"
)

var readinessMessages = routeMessages{internal: http.StatusText(http.StatusServiceUnavailable)}

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, "ok", http.StatusOK)
}

func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.CheckReadiness(r.Context()); err != nil {
		writeServiceError(w, r, err, readinessMessages)
		return
	}

	utils.WriteMessage(w, "ready", http.StatusOK)
}
