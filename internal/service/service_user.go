// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/store"
	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/models"
)

// userService is the concrete implementation of UserService.
// It expects already validated input; see userValidationService.
type userService struct {
	// userStore is the canonical owner of user records.
	userStore store.UserStore

	// idGenerator produces ids for newly created users.
	idGenerator utils.IDGenerator

	// now returns the current time; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService that generates UUID v7 ids and
// UTC creation timestamps.
func NewUserService(userStore store.UserStore, logger *logger.Logger) UserService {
	return &userService{
		userStore:   userStore,
		idGenerator: utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

// ListUsers returns one page of users ordered by creation time.
// The page request is normalized first, so out-of-range values never fail.
// A page past the end yields an empty, non-nil slice.
func (s *userService) ListUsers(ctx context.Context, pageRequest models.PageRequest) (models.Page, error) {
	pageRequest = pageRequest.Normalize()

	all := s.userStore.GetAll(ctx)
	total := len(all)

	start := max(0, min(pageRequest.Offset(), total))
	end := start + min(pageRequest.PageSize, total-start)

	users := make([]models.User, end-start)
	copy(users, all[start:end])

	return models.Page{
		Page:     pageRequest.Page,
		PageSize: pageRequest.PageSize,
		Total:    total,
		Users:    users,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.userStore.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return models.User{}, fmt.Errorf("error getting user %s: %w", id, err)
	}

	return user, nil
}

// CreateUser normalizes the request, rejects a taken email and stores a new
// record with a fresh id, the current UTC time and version 1.
func (s *userService) CreateUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(request.Name)
	email := utils.NormalizeEmail(request.Email)

	if s.userStore.EmailExists(ctx, email, "") {
		return models.User{}, ErrEmailAlreadyExists
	}

	user := models.User{
		ID:        s.idGenerator.Generate(),
		Name:      name,
		Email:     email,
		CreatedAt: s.now().UTC(),
		Version:   1,
	}

	if err := s.userStore.Add(ctx, user); err != nil {
		// another request may have claimed the email after the check above
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		}
		log.Err(err).Str("func", "*userService.CreateUser").Str("id", user.ID).Msg("store rejected new user")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserNotCreated, err)
	}

	return user, nil
}

// UpdateUser replaces name and email of an existing user. The write is
// guarded by the version read here, so a concurrent modification between
// the read and the write fails with ErrUserNotUpdated instead of being
// silently overwritten.
func (s *userService) UpdateUser(ctx context.Context, id string, request models.UserRequest) error {
	log := logger.FromContext(ctx)

	current, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	email := utils.NormalizeEmail(request.Email)
	if s.userStore.EmailExists(ctx, email, id) {
		return ErrEmailAlreadyExists
	}

	current.Name = strings.TrimSpace(request.Name)
	current.Email = email

	if err = s.userStore.Update(ctx, current); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		}
		log.Err(err).Str("func", "*userService.UpdateUser").Str("id", id).Msg("store rejected user update")
		return fmt.Errorf("%w: %w", ErrUserNotUpdated, err)
	}

	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Str("id", id).Msg("store rejected user deletion")
		return fmt.Errorf("%w: %w", ErrUserNotDeleted, err)
	}

	return nil
}
