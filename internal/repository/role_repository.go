package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"authgate/internal/errs"
	"authgate/internal/models"
)

type GormRoleRepository struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

func (r *GormRoleRepository) FindByID(ctx context.Context, id string) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).Preload("Permissions").Where("id = ?", id).First(&role).Error
	if err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (r *GormRoleRepository) FindByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).Preload("Permissions").Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (r *GormRoleRepository) FindByNameOptional(ctx context.Context, name string) (*models.Role, error) {
	role, err := r.FindByName(ctx, name)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	return role, err
}

func (r *GormRoleRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).Preload("Permissions").Where("id IN ?", ids).Find(&roles).Error
	return roles, translate(err)
}

func (r *GormRoleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).Preload("Permissions").Order("created_at DESC").Find(&roles).Error
	return roles, translate(err)
}

func (r *GormRoleRepository) Create(ctx context.Context, role *models.Role) error {
	return translate(r.db.WithContext(ctx).Create(role).Error)
}

func (r *GormRoleRepository) Save(ctx context.Context, role *models.Role) error {
	return translate(r.db.WithContext(ctx).Save(role).Error)
}

func (r *GormRoleRepository) Delete(ctx context.Context, role *models.Role) error {
	return translate(r.db.WithContext(ctx).Select("Permissions").Delete(role).Error)
}

// UserCount reports how many users still hold the role. Used by the service
// layer to reject deletes of referenced roles.
func (r *GormRoleRepository) UserCount(ctx context.Context, roleID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.UserRole{}).Where("role_id = ?", roleID).Count(&n).Error
	return n, translate(err)
}

func (r *GormRoleRepository) AppendPermission(ctx context.Context, role *models.Role, perm *models.Permission) error {
	return translate(r.db.WithContext(ctx).Model(role).Association("Permissions").Append(perm))
}

func (r *GormRoleRepository) RemovePermission(ctx context.Context, role *models.Role, permID string) error {
	return translate(r.db.WithContext(ctx).Model(role).Association("Permissions").Delete(&models.Permission{ID: permID}))
}

func (r *GormRoleRepository) ReplacePermissions(ctx context.Context, role *models.Role, perms []models.Permission) error {
	return translate(r.db.WithContext(ctx).Model(role).Association("Permissions").Replace(perms))
}
