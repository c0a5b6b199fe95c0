// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [UserStore] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when the requested id is not present.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserAlreadyExists is returned by Add when the id is already taken.
	ErrUserAlreadyExists = errors.New("user with this id already exists")

	// ErrEmailAlreadyExists is returned when a mutation would give two live
	// users the same normalized email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the record was modified after the caller read it.
	ErrVersionConflict = errors.New("user version conflict occurred")
)
