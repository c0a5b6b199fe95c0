package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrUserNotCreated = errors.New("user was not created")
	ErrUserNotUpdated = errors.New("user was not updated")
	ErrUserNotDeleted = errors.New("user was not deleted")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
