package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Permission names follow the `resource:action` convention, e.g. "user:read".
type Permission struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:200;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	Resource    string    `gorm:"size:100;not null" json:"resource"`
	Action      string    `gorm:"size:100;not null" json:"action"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Back-reference for existence checks only.
	Roles []Role `gorm:"many2many:role_permissions" json:"-"`
}

func (p *Permission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
