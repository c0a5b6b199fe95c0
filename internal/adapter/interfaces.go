// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// users API.
//
// The primary abstraction is [UsersAPI], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPUsersAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/user-management-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/users_api_mock.go -package=mock

// UsersAPI defines transport-agnostic access to the users API.
// Implementations are responsible for serialisation, the API key header, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type UsersAPI interface {
	// ListUsers fetches one page of users. Page metadata is read from the
	// X-Page, X-PageSize and X-Total-Count response headers.
	ListUsers(ctx context.Context, req models.PageRequest) (models.Page, error)

	// GetUser fetches a single user by id. Returns [ErrNotFound] (wrapped)
	// when the server does not know the id.
	GetUser(ctx context.Context, id string) (models.User, error)

	// CreateUser creates a user and returns the stored record, including the
	// server-generated id and creation time.
	CreateUser(ctx context.Context, req models.UserRequest) (models.User, error)

	// UpdateUser replaces the name and email of the user with the given id.
	UpdateUser(ctx context.Context, id string, req models.UserRequest) error

	// DeleteUser removes the user with the given id.
	DeleteUser(ctx context.Context, id string) error

	// Version returns the server's application version string.
	Version(ctx context.Context) (string, error)
}
