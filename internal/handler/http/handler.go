package http

import (
	"github.com/opeller/authgate/internal/config"
	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/service"
)

type Handler struct {
	services *service.Services

	cfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
