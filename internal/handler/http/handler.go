// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/zk-vault/internal/config"
	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/service"
	"github.com/MKhiriev/zk-vault/internal/workers"
	"github.com/MKhiriev/zk-vault/models"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client bucket survives without requests.
const limiterIdleTTL = 10 * time.Minute

type Handler struct {
	services *service.Services

	passwords *entryHandler[models.PasswordEntry]
	notes     *entryHandler[models.Note]

	// authLimiter throttles register and login per client IP.
	authLimiter *clientLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	limit := rate.Limit(cfg.AuthRateLimit)
	if cfg.AuthRateLimit <= 0 {
		limit = rate.Inf
	}

	return &Handler{
		services:    services,
		passwords:   newEntryHandler(services.PasswordEntryService, "password entry"),
		notes:       newEntryHandler(services.NoteService, "note"),
		authLimiter: newClientLimiter(limit, cfg.AuthRateBurst, limiterIdleTTL),
		logger:      logger,
	}
}

// Workers returns the background jobs the handler depends on.
func (h *Handler) Workers() []workers.Worker {
	return []workers.Worker{
		workers.NewPeriodic("auth rate limiter sweep", limiterIdleTTL/2, h.authLimiter.sweep, h.logger),
	}
}
