// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the single resource managed by the service.
// ID and CreatedAt are assigned by the server and never change after creation.
type User struct {
	// ID is the opaque server-generated identifier (UUID string).
	ID string `json:"id"`

	// Name is the trimmed display name of the user.
	Name string `json:"name"`

	// Email is the trimmed, lower-cased address. Unique across live users.
	Email string `json:"email"`

	// CreatedAt is the UTC creation timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// Version is the optimistic-concurrency counter maintained by the store.
	// It is never exposed over HTTP.
	Version int64 `json:"-"`
}

// UserRequest is the body accepted by create and update operations.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
