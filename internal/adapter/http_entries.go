// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zk-vault/models"
	"github.com/google/uuid"
)

// httpEntryAdapter serves one collection rooted at path.
type httpEntryAdapter[T any] struct {
	adapter *httpServerAdapter
	path    string
}

// Create sends POST {path} and returns the id assigned by the server.
func (e *httpEntryAdapter[T]) Create(ctx context.Context, entry T) (uuid.UUID, error) {
	var created models.CreatedResponse

	resp, err := e.adapter.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		SetResult(&created).
		Post(e.path)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return uuid.Nil, err
	}

	return created.ID, nil
}

// List sends GET {path}.
func (e *httpEntryAdapter[T]) List(ctx context.Context) ([]models.EntrySummary, error) {
	var summaries []models.EntrySummary

	resp, err := e.adapter.authedRequest(ctx).
		SetResult(&summaries).
		Get(e.path)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return summaries, nil
}

// Get sends GET {path}/{id}.
func (e *httpEntryAdapter[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var entry T

	resp, err := e.adapter.authedRequest(ctx).
		SetResult(&entry).
		Get(e.entryPath(id))
	if err != nil {
		return entry, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return entry, err
	}

	return entry, nil
}

// Update sends PUT {path}/{id}.
func (e *httpEntryAdapter[T]) Update(ctx context.Context, id uuid.UUID, entry T) error {
	resp, err := e.adapter.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		Put(e.entryPath(id))
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapHTTPError(resp)
}

// Delete sends DELETE {path}/{id}.
func (e *httpEntryAdapter[T]) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := e.adapter.authedRequest(ctx).Delete(e.entryPath(id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (e *httpEntryAdapter[T]) entryPath(id uuid.UUID) string {
	return e.path + "/" + id.String()
}
