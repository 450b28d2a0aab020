package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           int64          `gorm:"primaryKey" json:"id"`
	UserID       string         `gorm:"type:char(36);index" json:"user_id"` // empty for anonymous attempts
	Action       string         `gorm:"size:200;not null" json:"action"`    // e.g. "auth.login", "users.assign-role"
	ResourceType string         `gorm:"size:100" json:"resource_type"`
	ResourceID   string         `gorm:"type:char(36);index" json:"resource_id"`
	Metadata     datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"`
	IP           string         `gorm:"size:64" json:"ip"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at"`
}
