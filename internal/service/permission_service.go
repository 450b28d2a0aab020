package service

import (
	"context"

	"go.uber.org/zap"

	"authgate/internal/errs"
	"authgate/internal/models"
	"authgate/internal/repository"
)

// PermissionCreate carries a new permission. Name follows the
// `resource:action` convention; the convention is respected by seeding but
// not structurally enforced here.
type PermissionCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Resource    string `json:"resource" binding:"required"`
	Action      string `json:"action" binding:"required"`
}

type PermissionUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Resource    *string `json:"resource"`
	Action      *string `json:"action"`
}

type PermissionService struct {
	perms  repository.PermissionRepository
	logger *zap.Logger
}

func NewPermissionService(perms repository.PermissionRepository, logger *zap.Logger) *PermissionService {
	return &PermissionService{perms: perms, logger: logger}
}

func (s *PermissionService) Create(ctx context.Context, in PermissionCreate) (*models.Permission, error) {
	existing, err := s.perms.FindByNameOptional(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrConflict
	}

	perm := &models.Permission{
		Name:        in.Name,
		Description: in.Description,
		Resource:    in.Resource,
		Action:      in.Action,
		IsActive:    true,
	}
	if err := s.perms.Create(ctx, perm); err != nil {
		return nil, err
	}
	s.logger.Info("permission created", zap.String("permission_id", perm.ID), zap.String("name", perm.Name))
	return perm, nil
}

func (s *PermissionService) FindAll(ctx context.Context) ([]models.Permission, error) {
	return s.perms.FindAll(ctx)
}

func (s *PermissionService) FindByID(ctx context.Context, id string) (*models.Permission, error) {
	return s.perms.FindByID(ctx, id)
}

func (s *PermissionService) FindByResource(ctx context.Context, resource string) ([]models.Permission, error) {
	return s.perms.FindByResource(ctx, resource)
}

func (s *PermissionService) Update(ctx context.Context, id string, in PermissionUpdate) (*models.Permission, error) {
	perm, err := s.perms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != perm.Name {
		existing, err := s.perms.FindByNameOptional(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errs.ErrConflict
		}
		perm.Name = *in.Name
	}
	if in.Description != nil {
		perm.Description = *in.Description
	}
	if in.Resource != nil {
		perm.Resource = *in.Resource
	}
	if in.Action != nil {
		perm.Action = *in.Action
	}

	if err := s.perms.Save(ctx, perm); err != nil {
		return nil, err
	}
	return perm, nil
}

// Delete rejects with Conflict while any role still carries the permission.
func (s *PermissionService) Delete(ctx context.Context, id string) error {
	perm, err := s.perms.FindByID(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.perms.RoleCount(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.ErrConflict
	}
	if err := s.perms.Delete(ctx, perm); err != nil {
		return err
	}
	s.logger.Info("permission deleted", zap.String("permission_id", id), zap.String("name", perm.Name))
	return nil
}

func (s *PermissionService) ToggleStatus(ctx context.Context, id string) (*models.Permission, error) {
	perm, err := s.perms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	perm.IsActive = !perm.IsActive
	if err := s.perms.Save(ctx, perm); err != nil {
		return nil, err
	}
	return perm, nil
}
