package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"authgate/internal/errs"
	"authgate/internal/models"
	"authgate/internal/repository"
)

func newUserService(users *MockUserRepository, roles *MockRoleRepository) *UserService {
	return NewUserService(users, roles, zap.NewNop())
}

func TestUserAssignRole_Conflict(t *testing.T) {
	users := new(MockUserRepository)
	roles := new(MockRoleRepository)
	svc := newUserService(users, roles)

	user := &models.User{
		ID:    "u1",
		Email: "jane@example.com",
		Roles: []models.Role{{ID: "r1", Name: "user"}},
	}
	users.On("FindByID", mock.Anything, "u1", repository.WithRoles).Return(user, nil)
	roles.On("FindByID", mock.Anything, "r1").Return(&models.Role{ID: "r1", Name: "user"}, nil)

	_, err := svc.AssignRole(context.Background(), "u1", "r1")
	assert.True(t, errors.Is(err, errs.ErrConflict))
	users.AssertNotCalled(t, "AppendRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserAssignRole_Appends(t *testing.T) {
	users := new(MockUserRepository)
	roles := new(MockRoleRepository)
	svc := newUserService(users, roles)

	user := &models.User{ID: "u1", Roles: []models.Role{{ID: "r1", Name: "user"}}}
	admin := &models.Role{ID: "r2", Name: "admin"}
	users.On("FindByID", mock.Anything, "u1", repository.WithRoles).Return(user, nil)
	roles.On("FindByID", mock.Anything, "r2").Return(admin, nil)
	users.On("AppendRole", mock.Anything, user, admin).Return(nil)

	got, err := svc.AssignRole(context.Background(), "u1", "r2")
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "admin"}, got.RoleNames())
}

func TestUserUpdate_UnknownRoleID(t *testing.T) {
	users := new(MockUserRepository)
	roles := new(MockRoleRepository)
	svc := newUserService(users, roles)

	user := &models.User{ID: "u1"}
	users.On("FindByID", mock.Anything, "u1", repository.WithRoles).Return(user, nil)
	roles.On("FindByIDs", mock.Anything, []string{"r1", "r-missing"}).
		Return([]models.Role{{ID: "r1", Name: "user"}}, nil)

	_, err := svc.Update(context.Background(), "u1", UserUpdate{RoleIDs: []string{"r1", "r-missing"}})
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestUserUpdate_PartialFields(t *testing.T) {
	users := new(MockUserRepository)
	roles := new(MockRoleRepository)
	svc := newUserService(users, roles)

	user := &models.User{ID: "u1", FirstName: "Jane", LastName: "Doe"}
	users.On("FindByID", mock.Anything, "u1", repository.WithRoles).Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	first := "Janet"
	got, err := svc.Update(context.Background(), "u1", UserUpdate{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Janet", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
}

func TestUserChangeStatus(t *testing.T) {
	users := new(MockUserRepository)
	roles := new(MockRoleRepository)
	svc := newUserService(users, roles)

	user := &models.User{ID: "u1", Status: models.UserActive}
	users.On("FindByID", mock.Anything, "u1", repository.PrincipalOnly).Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	got, err := svc.ChangeStatus(context.Background(), "u1", models.UserBanned)
	require.NoError(t, err)
	assert.Equal(t, models.UserBanned, got.Status)
}

func TestUserList_ComputesPages(t *testing.T) {
	users := new(MockUserRepository)
	roles := new(MockRoleRepository)
	svc := newUserService(users, roles)

	users.On("FindPage", mock.Anything, 1, 10).
		Return([]models.User{{ID: "u1"}}, int64(25), nil)

	page, err := svc.List(context.Background(), 0, 0) // defaults applied
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.Pages)
}

func TestUserStats(t *testing.T) {
	users := new(MockUserRepository)
	roles := new(MockRoleRepository)
	svc := newUserService(users, roles)

	users.On("Count", mock.Anything).Return(int64(10), nil)
	users.On("CountByStatus", mock.Anything, models.UserActive).Return(int64(7), nil)
	users.On("CountByStatus", mock.Anything, models.UserInactive).Return(int64(2), nil)
	users.On("CountByStatus", mock.Anything, models.UserBanned).Return(int64(1), nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &UserStats{Total: 10, Active: 7, Inactive: 2, Banned: 1}, stats)
}
