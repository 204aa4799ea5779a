package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
	"github.com/MKhiriev/go-turf-booking/models"
	"github.com/go-chi/chi/v5"
)

var (
	createTurfMessages = routeMessages{badRequest: "Invalid turf data", internal: "Error creating turf"}
	listTurfsMessages  = routeMessages{internal: "Error fetching turfs"}
	updateTurfMessages = routeMessages{badRequest: "Invalid turf data", notFound: "Turf not found", internal: "Error updating turf"}
	deleteTurfMessages = routeMessages{notFound: "Turf not found", internal: "Error deleting turf"}
)

func (h *Handler) createTurf(w http.ResponseWriter, r *http.Request) {
	var newTurf models.NewTurf
	if err := utils.DecodeJSON(r.Body, &newTurf); err != nil {
		writeServiceError(w, r, err, createTurfMessages)
		return
	}

	turf, err := h.services.TurfService.CreateTurf(r.Context(), newTurf)
	if err != nil {
		writeServiceError(w, r, err, createTurfMessages)
		return
	}

	logger.FromRequest(r).Info().Int64("turf_id", turf.TurfID).Msg("turf created")
	utils.WriteMessage(w, "Turf created successfully", http.StatusCreated)
}

func (h *Handler) listTurfs(w http.ResponseWriter, r *http.Request) {
	turfs, err := h.services.TurfService.ListTurfs(r.Context())
	if err != nil {
		writeServiceError(w, r, err, listTurfsMessages)
		return
	}

	_, _ = utils.WriteJSON(w, turfs, http.StatusOK)
}

func (h *Handler) updateTurf(w http.ResponseWriter, r *http.Request) {
	turfID, err := turfIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, updateTurfMessages)
		return
	}

	var upd models.TurfUpdate
	if err = utils.DecodeJSON(r.Body, &upd); err != nil {
		writeServiceError(w, r, err, updateTurfMessages)
		return
	}

	turf, err := h.services.TurfService.UpdateTurf(r.Context(), turfID, upd)
	if err != nil {
		writeServiceError(w, r, err, updateTurfMessages)
		return
	}

	_, _ = utils.WriteJSON(w, turf, http.StatusOK)
}

func (h *Handler) deleteTurf(w http.ResponseWriter, r *http.Request) {
	turfID, err := turfIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, deleteTurfMessages)
		return
	}

	if err = h.services.TurfService.DeleteTurf(r.Context(), turfID); err != nil {
		writeServiceError(w, r, err, deleteTurfMessages)
		return
	}

	logger.FromRequest(r).Info().Int64("turf_id", turfID).Msg("turf deleted")
	utils.WriteMessage(w, "Turf deleted successfully", http.StatusOK)
}

// turfIDFromPath reads the {id} segment. Anything that is not a positive
// integer cannot name a stored turf.
func turfIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	turfID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || turfID <= 0 {
		return 0, fmt.Errorf("%w: turf id %q", ErrInvalidResourceID, raw)
	}
	return turfID, nil
}
