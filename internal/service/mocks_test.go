package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"authgate/internal/models"
	"authgate/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string, depth repository.FetchDepth) (*models.User, error) {
	args := m.Called(ctx, id, depth)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string, depth repository.FetchDepth) (*models.User, error) {
	args := m.Called(ctx, email, depth)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmailOptional(ctx context.Context, email string, depth repository.FetchDepth) (*models.User, error) {
	args := m.Called(ctx, email, depth)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindPage(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	args := m.Called(ctx, page, limit)
	var users []models.User
	if v := args.Get(0); v != nil {
		users = v.([]models.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountByStatus(ctx context.Context, status models.UserStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) AppendRole(ctx context.Context, user *models.User, role *models.Role) error {
	args := m.Called(ctx, user, role)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveRole(ctx context.Context, user *models.User, roleID string) error {
	args := m.Called(ctx, user, roleID)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceRoles(ctx context.Context, user *models.User, roles []models.Role) error {
	args := m.Called(ctx, user, roles)
	return args.Error(0)
}

// MockRoleRepository is a mock implementation of repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id string) (*models.Role, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*models.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*models.Role, error) {
	args := m.Called(ctx, name)
	if r := args.Get(0); r != nil {
		return r.(*models.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoleRepository) FindByNameOptional(ctx context.Context, name string) (*models.Role, error) {
	args := m.Called(ctx, name)
	if r := args.Get(0); r != nil {
		return r.(*models.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoleRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Role, error) {
	args := m.Called(ctx, ids)
	var roles []models.Role
	if v := args.Get(0); v != nil {
		roles = v.([]models.Role)
	}
	return roles, args.Error(1)
}

func (m *MockRoleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	args := m.Called(ctx)
	var roles []models.Role
	if v := args.Get(0); v != nil {
		roles = v.([]models.Role)
	}
	return roles, args.Error(1)
}

func (m *MockRoleRepository) Create(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Save(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) UserCount(ctx context.Context, roleID string) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoleRepository) AppendPermission(ctx context.Context, role *models.Role, perm *models.Permission) error {
	args := m.Called(ctx, role, perm)
	return args.Error(0)
}

func (m *MockRoleRepository) RemovePermission(ctx context.Context, role *models.Role, permID string) error {
	args := m.Called(ctx, role, permID)
	return args.Error(0)
}

func (m *MockRoleRepository) ReplacePermissions(ctx context.Context, role *models.Role, perms []models.Permission) error {
	args := m.Called(ctx, role, perms)
	return args.Error(0)
}

// MockPermissionRepository is a mock implementation of
// repository.PermissionRepository.
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) FindByID(ctx context.Context, id string) (*models.Permission, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPermissionRepository) FindByName(ctx context.Context, name string) (*models.Permission, error) {
	args := m.Called(ctx, name)
	if p := args.Get(0); p != nil {
		return p.(*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPermissionRepository) FindByNameOptional(ctx context.Context, name string) (*models.Permission, error) {
	args := m.Called(ctx, name)
	if p := args.Get(0); p != nil {
		return p.(*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPermissionRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Permission, error) {
	args := m.Called(ctx, ids)
	var perms []models.Permission
	if v := args.Get(0); v != nil {
		perms = v.([]models.Permission)
	}
	return perms, args.Error(1)
}

func (m *MockPermissionRepository) FindAll(ctx context.Context) ([]models.Permission, error) {
	args := m.Called(ctx)
	var perms []models.Permission
	if v := args.Get(0); v != nil {
		perms = v.([]models.Permission)
	}
	return perms, args.Error(1)
}

func (m *MockPermissionRepository) FindByResource(ctx context.Context, resource string) ([]models.Permission, error) {
	args := m.Called(ctx, resource)
	var perms []models.Permission
	if v := args.Get(0); v != nil {
		perms = v.([]models.Permission)
	}
	return perms, args.Error(1)
}

func (m *MockPermissionRepository) Create(ctx context.Context, perm *models.Permission) error {
	args := m.Called(ctx, perm)
	return args.Error(0)
}

func (m *MockPermissionRepository) Save(ctx context.Context, perm *models.Permission) error {
	args := m.Called(ctx, perm)
	return args.Error(0)
}

func (m *MockPermissionRepository) Delete(ctx context.Context, perm *models.Permission) error {
	args := m.Called(ctx, perm)
	return args.Error(0)
}

func (m *MockPermissionRepository) RoleCount(ctx context.Context, permID string) (int64, error) {
	args := m.Called(ctx, permID)
	return args.Get(0).(int64), args.Error(1)
}
