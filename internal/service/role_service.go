package service

import (
	"context"

	"go.uber.org/zap"

	"authgate/internal/errs"
	"authgate/internal/models"
	"authgate/internal/repository"
)

// RoleCreate carries a new role definition. PermissionIDs is optional; every
// id listed must resolve.
type RoleCreate struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PermissionIDs []string `json:"permission_ids"`
}

// RoleUpdate is a partial role update. A non-nil empty PermissionIDs clears
// the role's permissions.
type RoleUpdate struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	PermissionIDs *[]string `json:"permission_ids"`
}

type RoleService struct {
	roles  repository.RoleRepository
	perms  repository.PermissionRepository
	logger *zap.Logger
}

func NewRoleService(roles repository.RoleRepository, perms repository.PermissionRepository, logger *zap.Logger) *RoleService {
	return &RoleService{roles: roles, perms: perms, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, in RoleCreate) (*models.Role, error) {
	existing, err := s.roles.FindByNameOptional(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrConflict
	}

	var perms []models.Permission
	if len(in.PermissionIDs) > 0 {
		perms, err = s.perms.FindByIDs(ctx, in.PermissionIDs)
		if err != nil {
			return nil, err
		}
		if len(perms) != len(in.PermissionIDs) {
			return nil, errs.ErrNotFound
		}
	}

	role := &models.Role{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		Permissions: perms,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	s.logger.Info("role created", zap.String("role_id", role.ID), zap.String("name", role.Name))
	return role, nil
}

func (s *RoleService) FindAll(ctx context.Context) ([]models.Role, error) {
	return s.roles.FindAll(ctx)
}

func (s *RoleService) FindByID(ctx context.Context, id string) (*models.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) FindByName(ctx context.Context, name string) (*models.Role, error) {
	return s.roles.FindByName(ctx, name)
}

func (s *RoleService) Update(ctx context.Context, id string, in RoleUpdate) (*models.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != role.Name {
		existing, err := s.roles.FindByNameOptional(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errs.ErrConflict
		}
		role.Name = *in.Name
	}
	if in.Description != nil {
		role.Description = *in.Description
	}

	if in.PermissionIDs != nil {
		ids := *in.PermissionIDs
		if len(ids) > 0 {
			perms, err := s.perms.FindByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			if len(perms) != len(ids) {
				return nil, errs.ErrNotFound
			}
			if err := s.roles.ReplacePermissions(ctx, role, perms); err != nil {
				return nil, err
			}
			role.Permissions = perms
		} else {
			if err := s.roles.ReplacePermissions(ctx, role, []models.Permission{}); err != nil {
				return nil, err
			}
			role.Permissions = nil
		}
	}

	if err := s.roles.Save(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete rejects with Conflict while any user still references the role.
// The check runs before the destructive store call.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.roles.UserCount(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.ErrConflict
	}
	if err := s.roles.Delete(ctx, role); err != nil {
		return err
	}
	s.logger.Info("role deleted", zap.String("role_id", id), zap.String("name", role.Name))
	return nil
}

func (s *RoleService) AssignPermission(ctx context.Context, roleID, permID string) (*models.Role, error) {
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	perm, err := s.perms.FindByID(ctx, permID)
	if err != nil {
		return nil, err
	}
	for _, p := range role.Permissions {
		if p.ID == permID {
			return nil, errs.ErrConflict
		}
	}
	if err := s.roles.AppendPermission(ctx, role, perm); err != nil {
		return nil, err
	}
	role.Permissions = append(role.Permissions, *perm)
	return role, nil
}

func (s *RoleService) RemovePermission(ctx context.Context, roleID, permID string) (*models.Role, error) {
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if err := s.roles.RemovePermission(ctx, role, permID); err != nil {
		return nil, err
	}
	kept := role.Permissions[:0]
	for _, p := range role.Permissions {
		if p.ID != permID {
			kept = append(kept, p)
		}
	}
	role.Permissions = kept
	return role, nil
}

// ToggleStatus flips IsActive. The flag gates administrative visibility
// only; access-control evaluation does not consult it.
func (s *RoleService) ToggleStatus(ctx context.Context, id string) (*models.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	role.IsActive = !role.IsActive
	if err := s.roles.Save(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}
