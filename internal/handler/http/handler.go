// Package http contains the REST API handlers, routing and HTTP middleware.
package http

import (
	"github.com/epadrino/proyecto-api/internal/logger"
	"github.com/epadrino/proyecto-api/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("creating new HTTP handler...")

	return &Handler{
		services: services,
		logger:   logger,
	}
}
