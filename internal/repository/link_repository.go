package repository

import (
	"context"

	"gorm.io/gorm"

	"authgate/internal/models"
)

// PairKey composes the set key for a junction pair.
func PairKey(left, right string) string { return left + ":" + right }

type GormLinkRepository struct{ db *gorm.DB }

func NewLinkRepository(db *gorm.DB) *GormLinkRepository {
	return &GormLinkRepository{db: db}
}

func (r *GormLinkRepository) RolePermissionPairs(ctx context.Context) (map[string]bool, error) {
	var rows []models.RolePermission
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	pairs := make(map[string]bool, len(rows))
	for _, rp := range rows {
		pairs[PairKey(rp.RoleID, rp.PermissionID)] = true
	}
	return pairs, nil
}

func (r *GormLinkRepository) CreateRolePermission(ctx context.Context, roleID, permissionID string) error {
	return translate(r.db.WithContext(ctx).Create(&models.RolePermission{
		RoleID:       roleID,
		PermissionID: permissionID,
	}).Error)
}

func (r *GormLinkRepository) UserRolePairs(ctx context.Context) (map[string]bool, error) {
	var rows []models.UserRole
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	pairs := make(map[string]bool, len(rows))
	for _, ur := range rows {
		pairs[PairKey(ur.UserID, ur.RoleID)] = true
	}
	return pairs, nil
}

func (r *GormLinkRepository) CreateUserRole(ctx context.Context, userID, roleID string) error {
	return translate(r.db.WithContext(ctx).Create(&models.UserRole{
		UserID: userID,
		RoleID: roleID,
	}).Error)
}
