// Package repository is the credential store: gorm-backed access to users,
// roles, permissions and their join tables. Application-level existence
// checks in the services are an optimization only; the unique indexes on
// users.email, roles.name and permissions.name are the correctness backstop,
// and duplicate-key failures surface as errs.ErrConflict.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"authgate/internal/errs"
)

// FetchDepth selects how much of a user's relation graph is loaded eagerly.
// Call sites pick the depth they need instead of passing ad hoc relation
// lists.
type FetchDepth int

const (
	PrincipalOnly FetchDepth = iota
	WithRoles
	WithRolesAndPermissions
)

func applyDepth(q *gorm.DB, depth FetchDepth) *gorm.DB {
	switch depth {
	case WithRoles:
		return q.Preload("Roles")
	case WithRolesAndPermissions:
		return q.Preload("Roles").Preload("Roles.Permissions")
	default:
		return q
	}
}

// translate maps store-level failures onto the shared taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	if isDuplicate(err) {
		return errs.ErrConflict
	}
	return err
}

// isDuplicate detects a unique-constraint violation. MySQL reports error
// 1062 for duplicate keys.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") || strings.Contains(msg, "duplicate entry")
}
