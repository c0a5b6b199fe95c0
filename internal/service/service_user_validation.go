package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/internal/validators"
	"github.com/MKhiriev/user-management-api/models"
)

// UserValidationService rejects malformed input before it reaches the
// wrapped UserService. Ids that are not UUIDs cannot exist and are reported
// as ErrUserNotFound.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context, pageRequest models.PageRequest) (models.Page, error) {
	return v.inner.ListUsers(ctx, pageRequest)
}

func (v *UserValidationService) GetUser(ctx context.Context, id string) (models.User, error) {
	if !utils.IsValidUUID(id) {
		return models.User{}, ErrUserNotFound
	}

	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, request)
}

// UpdateUser reports a missing user before complaining about the payload.
func (v *UserValidationService) UpdateUser(ctx context.Context, id string, request models.UserRequest) error {
	if _, err := v.GetUser(ctx, id); err != nil {
		return err
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUser(ctx, id, request)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return ErrUserNotFound
	}

	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
