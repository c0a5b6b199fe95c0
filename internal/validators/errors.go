// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrInvalidNameLength = errors.New("name must be between 2 and 100 characters")
	ErrEmptyEmail        = errors.New("email is required")
	ErrEmailTooLong      = errors.New("email must be at most 254 characters")
	ErrInvalidEmail      = errors.New("email is not a valid address")
)

var fieldErrors = []error{ErrEmptyName, ErrInvalidNameLength, ErrEmptyEmail, ErrEmailTooLong, ErrInvalidEmail}

// IsValidationError reports whether err was produced by a failed field check
// (as opposed to a programming error such as ErrUnsupportedType).
func IsValidationError(err error) bool {
	return FieldError(err) != nil
}

// FieldError returns the field check sentinel wrapped in err, or nil.
func FieldError(err error) error {
	for _, target := range fieldErrors {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}
