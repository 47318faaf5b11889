// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models


// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	MasterSalt string `json:"masterSalt"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
