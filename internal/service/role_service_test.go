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
)

func TestRoleCreate_DuplicateName(t *testing.T) {
	roles := new(MockRoleRepository)
	perms := new(MockPermissionRepository)
	svc := NewRoleService(roles, perms, zap.NewNop())

	roles.On("FindByNameOptional", mock.Anything, "manager").
		Return(&models.Role{ID: "r1", Name: "manager"}, nil)

	_, err := svc.Create(context.Background(), RoleCreate{Name: "manager"})
	assert.True(t, errors.Is(err, errs.ErrConflict))
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoleCreate_UnknownPermissionID(t *testing.T) {
	roles := new(MockRoleRepository)
	perms := new(MockPermissionRepository)
	svc := NewRoleService(roles, perms, zap.NewNop())

	roles.On("FindByNameOptional", mock.Anything, "manager").Return(nil, nil)
	perms.On("FindByIDs", mock.Anything, []string{"p1", "p-missing"}).
		Return([]models.Permission{{ID: "p1", Name: "user:read"}}, nil)

	_, err := svc.Create(context.Background(), RoleCreate{
		Name:          "manager",
		PermissionIDs: []string{"p1", "p-missing"},
	})
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestRoleDelete_RejectedWhileReferenced(t *testing.T) {
	roles := new(MockRoleRepository)
	perms := new(MockPermissionRepository)
	svc := NewRoleService(roles, perms, zap.NewNop())

	role := &models.Role{ID: "r1", Name: "manager"}
	roles.On("FindByID", mock.Anything, "r1").Return(role, nil)
	roles.On("UserCount", mock.Anything, "r1").Return(int64(1), nil)

	err := svc.Delete(context.Background(), "r1")
	assert.True(t, errors.Is(err, errs.ErrConflict))
	roles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRoleDelete_SucceedsOnceUnreferenced(t *testing.T) {
	roles := new(MockRoleRepository)
	perms := new(MockPermissionRepository)
	svc := NewRoleService(roles, perms, zap.NewNop())

	role := &models.Role{ID: "r1", Name: "manager"}
	roles.On("FindByID", mock.Anything, "r1").Return(role, nil)
	roles.On("UserCount", mock.Anything, "r1").Return(int64(0), nil)
	roles.On("Delete", mock.Anything, role).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "r1"))
	roles.AssertExpectations(t)
}

func TestRoleAssignPermission_Conflict(t *testing.T) {
	roles := new(MockRoleRepository)
	perms := new(MockPermissionRepository)
	svc := NewRoleService(roles, perms, zap.NewNop())

	role := &models.Role{
		ID:          "r1",
		Name:        "manager",
		Permissions: []models.Permission{{ID: "p1", Name: "user:read"}},
	}
	roles.On("FindByID", mock.Anything, "r1").Return(role, nil)
	perms.On("FindByID", mock.Anything, "p1").Return(&models.Permission{ID: "p1", Name: "user:read"}, nil)

	_, err := svc.AssignPermission(context.Background(), "r1", "p1")
	assert.True(t, errors.Is(err, errs.ErrConflict))
}

func TestRoleToggleStatus(t *testing.T) {
	roles := new(MockRoleRepository)
	perms := new(MockPermissionRepository)
	svc := NewRoleService(roles, perms, zap.NewNop())

	role := &models.Role{ID: "r1", Name: "manager", IsActive: true}
	roles.On("FindByID", mock.Anything, "r1").Return(role, nil)
	roles.On("Save", mock.Anything, role).Return(nil)

	got, err := svc.ToggleStatus(context.Background(), "r1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestPermissionDelete_RejectedWhileReferenced(t *testing.T) {
	perms := new(MockPermissionRepository)
	svc := NewPermissionService(perms, zap.NewNop())

	perm := &models.Permission{ID: "p1", Name: "user:read"}
	perms.On("FindByID", mock.Anything, "p1").Return(perm, nil)
	perms.On("RoleCount", mock.Anything, "p1").Return(int64(2), nil)

	err := svc.Delete(context.Background(), "p1")
	assert.True(t, errors.Is(err, errs.ErrConflict))
	perms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPermissionCreate_DuplicateName(t *testing.T) {
	perms := new(MockPermissionRepository)
	svc := NewPermissionService(perms, zap.NewNop())

	perms.On("FindByNameOptional", mock.Anything, "user:read").
		Return(&models.Permission{ID: "p1", Name: "user:read"}, nil)

	_, err := svc.Create(context.Background(), PermissionCreate{
		Name: "user:read", Resource: "user", Action: "read",
	})
	assert.True(t, errors.Is(err, errs.ErrConflict))
}
