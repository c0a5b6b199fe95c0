// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/models"
)

// memoryUserStore is the in-memory implementation of [UserStore].
//
// A single RWMutex guards both the record map and the email index, so every
// check-and-set (id uniqueness, email uniqueness, version comparison) happens
// atomically.
type memoryUserStore struct {
	mu sync.RWMutex

	users map[string]models.User
	// emails maps a normalized email to the id of the user holding it.
	emails map[string]string

	logger *logger.Logger
}

// NewMemoryUserStore constructs an empty [UserStore] kept in process memory.
func NewMemoryUserStore(logger *logger.Logger) UserStore {
	logger.Debug().Msg("creating in-memory user store")
	return &memoryUserStore{
		users:  make(map[string]models.User),
		emails: make(map[string]string),
		logger: logger,
	}
}

func (s *memoryUserStore) GetAll(ctx context.Context) []models.User {
	s.mu.RLock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users
}

func (s *memoryUserStore) Get(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (s *memoryUserStore) Add(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)
	email := utils.NormalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		log.Error().Str("func", "*memoryUserStore.Add").Str("id", user.ID).Msg("id is already taken")
		return ErrUserAlreadyExists
	}
	if _, ok := s.emails[email]; ok {
		log.Debug().Str("func", "*memoryUserStore.Add").Str("email", email).Msg("email is already taken")
		return ErrEmailAlreadyExists
	}

	user.Email = email
	if user.Version == 0 {
		user.Version = 1
	}

	s.users[user.ID] = user
	s.emails[email] = user.ID

	return nil
}

func (s *memoryUserStore) Update(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)
	email := utils.NormalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	if current.Version != user.Version {
		log.Warn().
			Str("func", "*memoryUserStore.Update").
			Str("id", user.ID).
			Int64("stored_version", current.Version).
			Int64("given_version", user.Version).
			Msg("stale update rejected")
		return ErrVersionConflict
	}
	if ownerID, taken := s.emails[email]; taken && ownerID != user.ID {
		return ErrEmailAlreadyExists
	}

	delete(s.emails, current.Email)

	current.Name = user.Name
	current.Email = email
	current.Version++

	s.users[current.ID] = current
	s.emails[email] = current.ID

	return nil
}

func (s *memoryUserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}

	delete(s.users, id)
	delete(s.emails, current.Email)

	return nil
}

func (s *memoryUserStore) EmailExists(ctx context.Context, email string, excludeID string) bool {
	email = utils.NormalizeEmail(email)

	s.mu.RLock()
	defer s.mu.RUnlock()

	ownerID, ok := s.emails[email]
	if !ok {
		return false
	}

	return excludeID == "" || ownerID != excludeID
}

func (s *memoryUserStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}
