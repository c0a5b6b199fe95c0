package service

import (
	"context"

	"github.com/MKhiriev/user-management-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_mock.go -package=mock

// UserService is the use-case layer over the user store. It normalizes
// input, enforces email uniqueness and generates ids and timestamps.
type UserService interface {
	ListUsers(ctx context.Context, pageRequest models.PageRequest) (models.Page, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, request models.UserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id string, request models.UserRequest) error
	DeleteUser(ctx context.Context, id string) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
