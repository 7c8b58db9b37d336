// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// "X-API-Key" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrMissingAPIKey is returned by the auth middleware when the incoming
	// request does not carry an "X-API-Key" header, or carries it empty.
	ErrMissingAPIKey = errors.New("Missing API key")
)
