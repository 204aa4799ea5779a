package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
	"github.com/MKhiriev/go-turf-booking/models"
)

var (
	registerMessages = routeMessages{
		badRequest: "User registration failed",
		internal:   "User registration failed",
	}
	loginMessages = routeMessages{
		badRequest: "Invalid email or password",
		internal:   "Login failed",
	}
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r.Body, &credentials); err != nil {
		writeServiceError(w, r, err, registerMessages)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Msg("registration with an already used email")
		}
		writeServiceError(w, r, err, registerMessages)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteMessage(w, "User registered successfully", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r.Body, &credentials); err != nil {
		writeServiceError(w, r, err, loginMessages)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err, loginMessages)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, loginMessages.internal, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
