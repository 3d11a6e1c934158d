package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/epadrino/proyecto-api/internal/logger"
	"github.com/epadrino/proyecto-api/internal/service"
	"github.com/epadrino/proyecto-api/internal/store"
	"github.com/epadrino/proyecto-api/models"
)

// userIDFromRequest parses the {id} route parameter. A non-numeric ID can
// never match a row, so it is reported the same way as a missing user.
func userIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during users listing")
		writeError(w, r, msgInternalError, http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	writeSuccess(w, r, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFail(w, r, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UserService.RegisterUser(ctx, request.NombreCompleto, request.Email, request.Password, request.Role)
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
			log.Err(err).Msg("unexpected error occurred during user creation")
			writeError(w, r, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", createdUser.ID).Str("email", createdUser.Email).Msg("user successfully created")

	writeSuccess(w, r, createdUser, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := userIDFromRequest(r)
	if !ok {
		writeFail(w, r, msgUserNotFound, http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetUserByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			writeFail(w, r, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			writeError(w, r, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	writeSuccess(w, r, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := userIDFromRequest(r)
	if !ok {
		writeFail(w, r, msgUserNotFound, http.StatusNotFound)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFail(w, r, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFail(w, r, msgInvalidData, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			writeFail(w, r, msgUserNotFound, http.StatusNotFound)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeFail(w, r, msgEmailInUse, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user update")
			writeError(w, r, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", updatedUser.ID).Msg("user successfully updated")

	writeSuccess(w, r, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := userIDFromRequest(r)
	if !ok {
		writeFail(w, r, msgUserNotFound, http.StatusNotFound)
		return
	}

	deleted, err := h.services.UserService.DeleteUser(ctx, id)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user deletion")
		writeError(w, r, msgInternalError, http.StatusInternalServerError)
		return
	}
	if !deleted {
		writeFail(w, r, msgUserNotFound, http.StatusNotFound)
		return
	}

	log.Debug().Int64("id", id).Msg("user successfully deleted")

	w.WriteHeader(http.StatusNoContent)
}
