// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the inbound transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/zk-vault/internal/config"
	"github.com/MKhiriev/zk-vault/internal/handler/http"
	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/service"
	"github.com/MKhiriev/zk-vault/internal/workers"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}

// Workers collects the background jobs of every transport handler.
func (h *Handlers) Workers() []workers.Worker {
	var ws []workers.Worker
	if h.HTTP != nil {
		ws = append(ws, h.HTTP.Workers()...)
	}
	return ws
}
