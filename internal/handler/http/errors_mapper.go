// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/service"
	"github.com/MKhiriev/zk-vault/internal/store"
	"github.com/MKhiriev/zk-vault/internal/utils"
)

// errorStatusMap maps sentinel errors to response statuses. An error chain
// is expected to contain at most one of the keys: the services translate
// storage, crypto and validation errors into their own sentinels.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidEntryID:  http.StatusBadRequest,
	ErrTooManyRequests: http.StatusTooManyRequests,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrInvalidCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrBlindIndexConflict:        http.StatusConflict,
	service.ErrMalformedCredentialRecord: http.StatusInternalServerError,
	service.ErrInvariantViolation:        http.StatusInternalServerError,
	service.ErrTokenCreationFailed:       http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEntryNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError returns the status mapped to the sentinel found in err
// and that sentinel. Unknown errors are 500 with a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and answers with a {"message": ...} body. Bad requests
// carry the full error text; other client errors carry the sentinel text
// only; server errors never leak details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	var message string
	switch {
	case status >= http.StatusInternalServerError:
		log.Error().Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	case status == http.StatusBadRequest:
		log.Info().Err(err).Msg("request rejected")
		message = err.Error()
	default:
		log.Info().Err(err).Int("status", status).Msg("request rejected")
		message = target.Error()
	}

	utils.WriteError(w, status, message)
}
