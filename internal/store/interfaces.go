// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/user-management-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_store_mock.go -package=mock

// UserStore is the canonical owner of user records.
//
// Implementations must be safe for concurrent use without any locking on the
// caller side. Every returned [models.User] is a copy: mutating it never
// affects the stored record until it is passed back to Update.
type UserStore interface {
	// GetAll returns every live user ordered by CreatedAt ascending.
	GetAll(ctx context.Context) []models.User

	// Get returns the user with the given id or [ErrUserNotFound].
	Get(ctx context.Context, id string) (models.User, error)

	// Add inserts a new user. It fails with [ErrUserAlreadyExists] when the id
	// is taken and with [ErrEmailAlreadyExists] when another user already holds
	// the (normalized) email.
	Add(ctx context.Context, user models.User) error

	// Update replaces name and email of an existing user. The stored record
	// must still be at user.Version, otherwise [ErrVersionConflict] is
	// returned. Missing ids yield [ErrUserNotFound].
	Update(ctx context.Context, user models.User) error

	// Delete removes the user with the given id or returns [ErrUserNotFound].
	Delete(ctx context.Context, id string) error

	// EmailExists reports whether a user other than excludeID holds email.
	// The comparison is trim- and case-insensitive. An empty excludeID
	// disables the exclusion.
	EmailExists(ctx context.Context, email string, excludeID string) bool

	// Count returns the number of live users.
	Count(ctx context.Context) int
}
