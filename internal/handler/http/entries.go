// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/service"
	"github.com/MKhiriev/zk-vault/internal/utils"
	"github.com/MKhiriev/zk-vault/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// entryHandler serves the CRUD endpoints of one encrypted collection. Every
// endpoint runs behind the auth middleware and acts on the caller's entries
// only.
type entryHandler[T models.VaultEntry[T]] struct {
	service service.EntryService[T]
	kind    string
}

func newEntryHandler[T models.VaultEntry[T]](service service.EntryService[T], kind string) *entryHandler[T] {
	return &entryHandler[T]{service: service, kind: kind}
}

// list answers 200 with [{"id", "encryptedMetadata"}].
func (e *entryHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	summaries, err := e.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, summaries, http.StatusOK)
}

// create answers 201 with {"id"}.
func (e *entryHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var entry T
	if err := utils.DecodeJSON(w, r, &entry); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	id, err := e.service.Create(r.Context(), userID, entry)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", id.String()).Msgf("%s created", e.kind)
	_, _ = utils.WriteJSON(w, models.CreatedResponse{ID: id}, http.StatusCreated)
}

// get answers 200 with the full encrypted entry.
func (e *entryHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}

	entry, err := e.service.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusOK)
}

// update answers 204.
func (e *entryHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}

	var entry T
	if err := utils.DecodeJSON(w, r, &entry); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := e.service.Update(r.Context(), userID, id, entry); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// delete answers 204.
func (e *entryHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}

	if err := e.service.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireUserID reads the owner stored by the auth middleware. A missing
// owner is an invariant violation and answers 500.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvariantViolation)
		return uuid.Nil, false
	}
	return userID, true
}

func entryIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidEntryID, err))
		return uuid.Nil, false
	}
	return id, true
}
