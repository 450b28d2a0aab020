package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserBanned   UserStatus = "banned"
)

type UserProvider string

const (
	ProviderLocal    UserProvider = "local"
	ProviderGoogle   UserProvider = "google"
	ProviderLinkedIn UserProvider = "linkedin"
)

type User struct {
	ID                     string       `gorm:"type:char(36);primaryKey" json:"id"`
	Email                  string       `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash           string       `gorm:"size:255" json:"-"` // empty for OAuth-only accounts
	FirstName              string       `gorm:"size:100;not null" json:"first_name"`
	LastName               string       `gorm:"size:100;not null" json:"last_name"`
	Avatar                 string       `gorm:"size:500" json:"avatar,omitempty"`
	Provider               UserProvider `gorm:"size:20;default:local" json:"provider"`
	ProviderID             string       `gorm:"size:255" json:"provider_id,omitempty"`
	Status                 UserStatus   `gorm:"size:16;default:active" json:"status"`
	IsEmailVerified        bool         `gorm:"default:false" json:"is_email_verified"`
	EmailVerificationToken string       `gorm:"size:255" json:"-"`
	PasswordResetToken     string       `gorm:"size:255" json:"-"`
	PasswordResetExpires   *time.Time   `json:"-"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`

	Roles []Role `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE" json:"roles,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// RoleNames returns the names of the user's roles in slice order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
