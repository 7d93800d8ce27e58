package service

import (
	"github.com/opeller/authgate/internal/config"
	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/store"
	"github.com/opeller/authgate/internal/workers"
)

// Services aggregates all business-logic services.
type Services struct {
	AuthService AuthService
}

// NewServices wires every service to its dependencies.
func NewServices(storages *store.Storages, cfg config.App, pool *workers.Pool, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, pool, logger),
	}
}
