package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/epadrino/proyecto-api/internal/logger"
	"github.com/epadrino/proyecto-api/internal/service"
	"github.com/epadrino/proyecto-api/internal/store"
	"github.com/epadrino/proyecto-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFail(w, r, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	// self-registration always produces a regular user; roles are assigned
	// through the admin user-management endpoints
	registeredUser, err := h.services.UserService.RegisterUser(ctx, request.NombreCompleto, request.Email, request.Password, models.DefaultRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFail(w, r, msgInvalidData, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeFail(w, r, msgEmailInUse, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, r, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user successfully registered")

	writeSuccess(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFail(w, r, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrInvalidCredentials):
			// unknown email and wrong password are indistinguishable on purpose
			log.Err(err).Msg("authentication failed")
			writeFail(w, r, msgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, r, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, msgInternalError, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	writeSuccess(w, r, models.LoginResponse{Token: token.SignedString, User: foundUser}, http.StatusOK)
}
