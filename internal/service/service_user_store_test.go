package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/mock"
	"github.com/MKhiriev/user-management-api/internal/service"
	"github.com/MKhiriev/user-management-api/internal/store"
	"github.com/MKhiriev/user-management-api/models"
)

// These tests drive the store rejection paths that the in-memory store only
// hits under races.

func existingUser() models.User {
	return models.User{
		ID:        "0190a2b4-7c8d-7e9f-8a1b-2c3d4e5f6a7b",
		Name:      "Existing",
		Email:     "existing@example.com",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Version:   3,
	}
}

func TestUserService_CreateUser_StoreRejectsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	userStore := mock.NewMockUserStore(ctrl)

	userStore.EXPECT().EmailExists(gomock.Any(), "new@example.com", "").Return(false)
	userStore.EXPECT().Add(gomock.Any(), gomock.Any()).Return(store.ErrUserAlreadyExists)

	svc := service.NewUserService(userStore, logger.Nop())
	_, err := svc.CreateUser(context.Background(), models.UserRequest{Name: "New", Email: "new@example.com"})

	assert.ErrorIs(t, err, service.ErrUserNotCreated)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestUserService_CreateUser_EmailClaimedAfterCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	userStore := mock.NewMockUserStore(ctrl)

	userStore.EXPECT().EmailExists(gomock.Any(), gomock.Any(), "").Return(false)
	userStore.EXPECT().Add(gomock.Any(), gomock.Any()).Return(store.ErrEmailAlreadyExists)

	svc := service.NewUserService(userStore, logger.Nop())
	_, err := svc.CreateUser(context.Background(), models.UserRequest{Name: "New", Email: "new@example.com"})

	assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, service.ErrUserNotCreated)
}

func TestUserService_CreateUser_PassesBuiltRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	userStore := mock.NewMockUserStore(ctrl)

	userStore.EXPECT().EmailExists(gomock.Any(), "mixed@example.com", "").Return(false)
	userStore.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) error {
		assert.Equal(t, "Mixed", u.Name)
		assert.Equal(t, "mixed@example.com", u.Email)
		assert.Equal(t, int64(1), u.Version)
		assert.NotEmpty(t, u.ID)
		return nil
	})

	svc := service.NewUserService(userStore, logger.Nop())
	_, err := svc.CreateUser(context.Background(), models.UserRequest{Name: " Mixed", Email: "MIXED@example.com "})
	require.NoError(t, err)
}

func TestUserService_UpdateUser_StaleVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	userStore := mock.NewMockUserStore(ctrl)
	current := existingUser()

	userStore.EXPECT().Get(gomock.Any(), current.ID).Return(current, nil)
	userStore.EXPECT().EmailExists(gomock.Any(), "changed@example.com", current.ID).Return(false)
	userStore.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) error {
		assert.Equal(t, current.Version, u.Version, "update must carry the version that was read")
		assert.Equal(t, "Changed", u.Name)
		return store.ErrVersionConflict
	})

	svc := service.NewUserService(userStore, logger.Nop())
	err := svc.UpdateUser(context.Background(), current.ID, models.UserRequest{Name: "Changed", Email: "changed@example.com"})

	assert.ErrorIs(t, err, service.ErrUserNotUpdated)
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}

func TestUserService_UpdateUser_DeletedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	userStore := mock.NewMockUserStore(ctrl)
	current := existingUser()

	userStore.EXPECT().Get(gomock.Any(), current.ID).Return(current, nil)
	userStore.EXPECT().EmailExists(gomock.Any(), gomock.Any(), current.ID).Return(false)
	userStore.EXPECT().Update(gomock.Any(), gomock.Any()).Return(store.ErrUserNotFound)

	svc := service.NewUserService(userStore, logger.Nop())
	err := svc.UpdateUser(context.Background(), current.ID, models.UserRequest{Name: "Changed", Email: "changed@example.com"})

	assert.ErrorIs(t, err, service.ErrUserNotUpdated)
}

func TestUserService_DeleteUser_DeletedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	userStore := mock.NewMockUserStore(ctrl)
	current := existingUser()

	gomock.InOrder(
		userStore.EXPECT().Get(gomock.Any(), current.ID).Return(current, nil),
		userStore.EXPECT().Delete(gomock.Any(), current.ID).Return(store.ErrUserNotFound),
	)

	svc := service.NewUserService(userStore, logger.Nop())
	err := svc.DeleteUser(context.Background(), current.ID)

	assert.ErrorIs(t, err, service.ErrUserNotDeleted)
}

func TestUserService_ListUsers_UsesStoreOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	userStore := mock.NewMockUserStore(ctrl)

	first := existingUser()
	second := existingUser()
	second.ID = "0190a2b4-7c8d-7e9f-8a1b-2c3d4e5f6a7c"
	userStore.EXPECT().GetAll(gomock.Any()).Return([]models.User{first, second})

	svc := service.NewUserService(userStore, logger.Nop())
	page, err := svc.ListUsers(context.Background(), models.PageRequest{Page: 2, PageSize: 1})
	require.NoError(t, err)

	assert.Equal(t, []models.User{second}, page.Users)
	assert.Equal(t, 2, page.Total)
}
