// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the API client can extend it.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool and settings.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
