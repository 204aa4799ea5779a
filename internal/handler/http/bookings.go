package http

import (
	"net/http"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
	"github.com/MKhiriev/go-turf-booking/models"
	"github.com/go-chi/chi/v5"
)

var (
	createBookingMessages = routeMessages{badRequest: "Invalid booking data", internal: "Error creating booking"}
	listBookingsMessages  = routeMessages{internal: "Error fetching bookings"}
	updateBookingMessages = routeMessages{badRequest: "Invalid booking data", notFound: "Booking not found", internal: "Error updating booking"}
	deleteBookingMessages = routeMessages{badRequest: "Invalid booking id", notFound: "Booking not found", internal: "Error deleting booking"}
)

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var newBooking models.NewBooking
	if err := utils.DecodeJSON(r.Body, &newBooking); err != nil {
		writeServiceError(w, r, err, createBookingMessages)
		return
	}

	booking, err := h.services.BookingService.CreateBooking(r.Context(), userID, newBooking)
	if err != nil {
		writeServiceError(w, r, err, createBookingMessages)
		return
	}

	logger.FromRequest(r).Info().Str("booking_id", booking.ID).Int64("user_id", userID).Msg("booking created")
	utils.WriteMessage(w, "Booking created successfully", http.StatusCreated)
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	bookings, err := h.services.BookingService.ListBookings(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, listBookingsMessages)
		return
	}

	_, _ = utils.WriteJSON(w, bookings, http.StatusOK)
}

func (h *Handler) updateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var upd models.BookingUpdate
	if err := utils.DecodeJSON(r.Body, &upd); err != nil {
		writeServiceError(w, r, err, updateBookingMessages)
		return
	}

	booking, err := h.services.BookingService.UpdateBooking(r.Context(), userID, chi.URLParam(r, "id"), upd)
	if err != nil {
		writeServiceError(w, r, err, updateBookingMessages)
		return
	}

	_, _ = utils.WriteJSON(w, booking, http.StatusOK)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	bookingID := chi.URLParam(r, "id")
	if err := h.services.BookingService.DeleteBooking(r.Context(), userID, bookingID); err != nil {
		writeServiceError(w, r, err, deleteBookingMessages)
		return
	}

	logger.FromRequest(r).Info().Str("booking_id", bookingID).Int64("user_id", userID).Msg("booking deleted")
	utils.WriteMessage(w, "Booking deleted successfully", http.StatusOK)
}

// userIDFromRequest reads the caller set by the auth middleware. A missing
// value means the route was mounted outside the auth group.
func (h *Handler) userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in context of an authenticated route")
		utils.WriteError(w, invalidTokenMessage, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
