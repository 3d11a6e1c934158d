package handler

import (
	"github.com/epadrino/proyecto-api/internal/handler/http"
	"github.com/epadrino/proyecto-api/internal/logger"
	"github.com/epadrino/proyecto-api/internal/service"
)

// Handlers bundles the transport-level handlers of the application.
// The REST API is currently the only transport.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
