// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the vault: account
// registration and login over the credential hash engine, blind index
// uniqueness checks and the encrypted collections of each user.
package service

import (
	"github.com/MKhiriev/zk-vault/internal/config"
	"github.com/MKhiriev/zk-vault/internal/crypto"
	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/store"
	"github.com/MKhiriev/zk-vault/models"
)

type Services struct {
	AuthService          AuthService
	UniquenessService    UniquenessService
	PasswordEntryService PasswordEntryService
	NoteService          NoteService
	AppInfoService       AppInfoService
}

// NewServices wires every service over repositories. Request validation is
// layered on top of the auth and entry services.
func NewServices(repositories *store.Repositories, hasher crypto.CredentialHasher, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	uniquenessService := NewUniquenessService(repositories.BlindIndexes, logger)

	return &Services{
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(repositories.Users, hasher, cfg.App, logger)),
		UniquenessService: uniquenessService,
		PasswordEntryService: NewEntryValidationService[models.PasswordEntry]().
			Wrap(NewPasswordEntryService(repositories.PasswordEntries, uniquenessService, logger)),
		NoteService: NewEntryValidationService[models.Note]().
			Wrap(NewNoteService(repositories.Notes, uniquenessService, logger)),
		AppInfoService: appInfoService,
	}, nil
}
