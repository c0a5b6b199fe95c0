// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/user-management-api/internal/logger"

// Storages aggregates every storage backend used by the server.
type Storages struct {
	UserStore UserStore
}

// NewStorages constructs the in-memory storages. Each call returns isolated
// instances, so tests can build as many independent stores as they need.
func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating storages...")
	return &Storages{
		UserStore: NewMemoryUserStore(logger),
	}
}
