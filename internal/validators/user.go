// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/user-management-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// Rules applied to user fields, expressed as go-playground/validator tags.
// Lengths are counted in characters, not bytes.
const (
	nameLengthRule  = "min=2,max=100"
	emailLengthRule = "max=254"
	emailFormatRule = "email"
)

// UserValidator implements [Validator] for create/update payloads:
// models.UserRequest and models.User, as values or pointers.
//
// Values are trimmed before the checks but the input itself is left intact.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches on the dynamic type of obj. When no fields are given,
// both name and email are validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserRequest:
		return v.validateUser(ctx, value.Name, value.Email, fields...)
	case *models.UserRequest:
		return v.validateUser(ctx, value.Name, value.Email, fields...)
	case models.User:
		return v.validateUser(ctx, value.Name, value.Email, fields...)
	case *models.User:
		return v.validateUser(ctx, value.Name, value.Email, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, name, email string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := v.validateName(ctx, strings.TrimSpace(name)); err != nil {
				return err
			}
		case FieldEmail:
			if err := v.validateEmail(ctx, strings.TrimSpace(email)); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateName(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := v.validate.VarCtx(ctx, name, nameLengthRule); err != nil {
		return ErrInvalidNameLength
	}
	return nil
}

func (v *UserValidator) validateEmail(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if err := v.validate.VarCtx(ctx, email, emailLengthRule); err != nil {
		return ErrEmailTooLong
	}
	if err := v.validate.VarCtx(ctx, email, emailFormatRule); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
