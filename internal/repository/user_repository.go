package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"authgate/internal/errs"
	"authgate/internal/models"
)

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id string, depth FetchDepth) (*models.User, error) {
	var u models.User
	q := applyDepth(r.db.WithContext(ctx), depth)
	if err := q.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string, depth FetchDepth) (*models.User, error) {
	var u models.User
	q := applyDepth(r.db.WithContext(ctx), depth)
	if err := q.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *GormUserRepository) FindByEmailOptional(ctx context.Context, email string, depth FetchDepth) (*models.User, error) {
	u, err := r.FindByEmail(ctx, email, depth)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

func (r *GormUserRepository) FindPage(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var users []models.User
	err := r.db.WithContext(ctx).
		Preload("Roles").Preload("Roles.Permissions").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return users, total, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *GormUserRepository) Save(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Save(user).Error)
}

// Delete removes the user row; junction rows cascade.
func (r *GormUserRepository) Delete(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Select("Roles").Delete(user).Error)
}

func (r *GormUserRepository) CountByStatus(ctx context.Context, status models.UserStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("status = ?", status).Count(&n).Error
	return n, translate(err)
}

func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, translate(err)
}

func (r *GormUserRepository) AppendRole(ctx context.Context, user *models.User, role *models.Role) error {
	return translate(r.db.WithContext(ctx).Model(user).Association("Roles").Append(role))
}

func (r *GormUserRepository) RemoveRole(ctx context.Context, user *models.User, roleID string) error {
	return translate(r.db.WithContext(ctx).Model(user).Association("Roles").Delete(&models.Role{ID: roleID}))
}

func (r *GormUserRepository) ReplaceRoles(ctx context.Context, user *models.User, roles []models.Role) error {
	return translate(r.db.WithContext(ctx).Model(user).Association("Roles").Replace(roles))
}
