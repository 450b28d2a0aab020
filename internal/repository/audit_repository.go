package repository

import (
	"context"

	"gorm.io/gorm"

	"authgate/internal/models"
)

type GormAuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

func (r *GormAuditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *GormAuditRepository) FindRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, translate(err)
}
