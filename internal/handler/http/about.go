package http

import (
	"net/http"

	"github.com/epadrino/proyecto-api/models"
)

// about reports the author information of the service.
func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, models.AboutResponse{
		NombreCompleto: "Eliannibeth De Jesus Padrino Bello",
		Cedula:         "31.376.531",
		Seccion:        "2",
	}, http.StatusOK)
}

// ping is the health check: 200 with an empty body.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
