// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is empty, malformed
	// or followed by trailing data.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestBodyTooLarge is returned when the body exceeds maxBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)

// Messages written in {"error": ...} bodies.
const (
	msgInternalError    = "Internal server error."
	msgUnauthorized     = "API key missing or invalid."
	msgInvalidJSON      = "Invalid JSON was passed."
	msgBodyTooLarge     = "Request body too large."
	msgInvalidData      = "Invalid data provided."
	msgEmailExists      = "Email already exists."
	msgUserNotFound     = "User not found."
	msgNotFound         = "Not found."
	msgMethodNotAllowed = "Method not allowed."
	msgTooManyRequests  = "Too many requests."
	msgInvalidGzip      = "Invalid gzip data."
)
