package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"authgate/internal/errs"
	"authgate/internal/models"
)

type GormPermissionRepository struct{ db *gorm.DB }

func NewPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

func (r *GormPermissionRepository) FindByID(ctx context.Context, id string) (*models.Permission, error) {
	var p models.Permission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *GormPermissionRepository) FindByName(ctx context.Context, name string) (*models.Permission, error) {
	var p models.Permission
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *GormPermissionRepository) FindByNameOptional(ctx context.Context, name string) (*models.Permission, error) {
	p, err := r.FindByName(ctx, name)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (r *GormPermissionRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Permission, error) {
	var perms []models.Permission
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&perms).Error
	return perms, translate(err)
}

func (r *GormPermissionRepository) FindAll(ctx context.Context) ([]models.Permission, error) {
	var perms []models.Permission
	err := r.db.WithContext(ctx).Order("resource ASC, action ASC").Find(&perms).Error
	return perms, translate(err)
}

func (r *GormPermissionRepository) FindByResource(ctx context.Context, resource string) ([]models.Permission, error) {
	var perms []models.Permission
	err := r.db.WithContext(ctx).Where("resource = ?", resource).Order("action ASC").Find(&perms).Error
	return perms, translate(err)
}

func (r *GormPermissionRepository) Create(ctx context.Context, perm *models.Permission) error {
	return translate(r.db.WithContext(ctx).Create(perm).Error)
}

func (r *GormPermissionRepository) Save(ctx context.Context, perm *models.Permission) error {
	return translate(r.db.WithContext(ctx).Save(perm).Error)
}

func (r *GormPermissionRepository) Delete(ctx context.Context, perm *models.Permission) error {
	return translate(r.db.WithContext(ctx).Delete(perm).Error)
}

// RoleCount reports how many roles still carry the permission.
func (r *GormPermissionRepository) RoleCount(ctx context.Context, permID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.RolePermission{}).Where("permission_id = ?", permID).Count(&n).Error
	return n, translate(err)
}
