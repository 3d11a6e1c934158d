package http

import (
	"net/http"

	"github.com/epadrino/proyecto-api/internal/logger"
	"github.com/epadrino/proyecto-api/internal/utils"
	"github.com/epadrino/proyecto-api/models"
)

// writeSuccess sends a success envelope: {"status":"success","data":...}.
func writeSuccess(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.Response{Status: models.StatusSuccess, Data: data}, statusCode); err != nil {
		log.Error().Err(err).Msg("error writing success response")
	}
}

// writeFail sends a fail envelope: {"status":"fail","data":{"message":...}}.
// Used for client-side problems: validation, auth, missing resources.
func writeFail(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	log := logger.FromRequest(r)

	response := models.Response{
		Status: models.StatusFail,
		Data:   models.FailData{Message: message},
	}
	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		log.Error().Err(err).Msg("error writing fail response")
	}
}

// writeError sends an error envelope: {"status":"error","message":...}.
// Used for server-side failures.
func writeError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.Response{Status: models.StatusError, Message: message}, statusCode); err != nil {
		log.Error().Err(err).Msg("error writing error response")
	}
}
