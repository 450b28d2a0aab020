package repository

import (
	"context"

	"authgate/internal/models"
)

// UserRepository persists users and their role assignments. Find methods
// that promise a record return errs.ErrNotFound when it is missing;
// FindByEmailOptional returns (nil, nil) instead, because on the login path
// absence is a signal rather than a failure.
type UserRepository interface {
	FindByID(ctx context.Context, id string, depth FetchDepth) (*models.User, error)
	FindByEmail(ctx context.Context, email string, depth FetchDepth) (*models.User, error)
	FindByEmailOptional(ctx context.Context, email string, depth FetchDepth) (*models.User, error)
	FindPage(ctx context.Context, page, limit int) ([]models.User, int64, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
	CountByStatus(ctx context.Context, status models.UserStatus) (int64, error)
	Count(ctx context.Context) (int64, error)

	AppendRole(ctx context.Context, user *models.User, role *models.Role) error
	RemoveRole(ctx context.Context, user *models.User, roleID string) error
	ReplaceRoles(ctx context.Context, user *models.User, roles []models.Role) error
}

// RoleRepository persists roles and their permission assignments.
type RoleRepository interface {
	FindByID(ctx context.Context, id string) (*models.Role, error)
	FindByName(ctx context.Context, name string) (*models.Role, error)
	FindByNameOptional(ctx context.Context, name string) (*models.Role, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Role, error)
	FindAll(ctx context.Context) ([]models.Role, error)
	Create(ctx context.Context, role *models.Role) error
	Save(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, role *models.Role) error
	UserCount(ctx context.Context, roleID string) (int64, error)

	AppendPermission(ctx context.Context, role *models.Role, perm *models.Permission) error
	RemovePermission(ctx context.Context, role *models.Role, permID string) error
	ReplacePermissions(ctx context.Context, role *models.Role, perms []models.Permission) error
}

// PermissionRepository persists the permission catalog.
type PermissionRepository interface {
	FindByID(ctx context.Context, id string) (*models.Permission, error)
	FindByName(ctx context.Context, name string) (*models.Permission, error)
	FindByNameOptional(ctx context.Context, name string) (*models.Permission, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Permission, error)
	FindAll(ctx context.Context) ([]models.Permission, error)
	FindByResource(ctx context.Context, resource string) ([]models.Permission, error)
	Create(ctx context.Context, perm *models.Permission) error
	Save(ctx context.Context, perm *models.Permission) error
	Delete(ctx context.Context, perm *models.Permission) error
	RoleCount(ctx context.Context, permID string) (int64, error)
}

// LinkRepository exposes the junction tables as pair sets. The seeder reads
// the existing pairs before inserting so re-runs are no-ops; the composite
// primary keys are the backstop for concurrent inserts.
type LinkRepository interface {
	RolePermissionPairs(ctx context.Context) (map[string]bool, error)
	CreateRolePermission(ctx context.Context, roleID, permissionID string) error
	UserRolePairs(ctx context.Context) (map[string]bool, error)
	CreateUserRole(ctx context.Context, userID, roleID string) error
}

// AuditRepository records audit trail entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	FindRecent(ctx context.Context, limit int) ([]models.AuditLog, error)
}
