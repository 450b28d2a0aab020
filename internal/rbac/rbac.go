// Package rbac implements the access-control evaluation: a pure decision
// over an already-loaded principal and a declared requirement. Evaluation
// performs no I/O; the caller loads the principal with roles and role
// permissions once per request.
package rbac

import (
	"strings"

	"authgate/internal/errs"
	"authgate/internal/models"
)

// Requirement declares what an operation demands of the principal. An empty
// slice means the corresponding gate is skipped; both slices empty means the
// operation is a pass-through for any authenticated user. Role names use OR
// semantics (any one suffices), permission names use AND semantics (all must
// be held). When both are set, both gates must pass.
type Requirement struct {
	Roles       []string
	Permissions []string
}

// None is the pass-through requirement.
func None() Requirement { return Requirement{} }

// AnyRole requires the principal to hold at least one of the named roles.
func AnyRole(roles ...string) Requirement { return Requirement{Roles: roles} }

// AllPermissions requires the principal to hold every named permission.
func AllPermissions(perms ...string) Requirement { return Requirement{Permissions: perms} }

// Both combines a role gate and a permission gate.
func Both(roles []string, perms []string) Requirement {
	return Requirement{Roles: roles, Permissions: perms}
}

// Key composes a permission name from resource and action, e.g. "user:read".
func Key(resource, action string) string {
	return strings.ToLower(resource + ":" + action)
}

// Evaluate decides allow (nil) or deny (*errs.ForbiddenError) for the
// principal against the requirement. The role gate tests membership by name
// only; the permission gate flattens permissions across every role the
// principal holds, collapsing duplicates. IsActive on roles and permissions
// is not consulted here; a deactivated role still satisfies a name match.
func Evaluate(principal *models.User, req Requirement) error {
	if err := evaluateRoles(principal, req.Roles); err != nil {
		return err
	}
	return evaluatePermissions(principal, req.Permissions)
}

func evaluateRoles(principal *models.User, required []string) error {
	if len(required) == 0 {
		return nil
	}
	if principal == nil || len(principal.Roles) == 0 {
		return errs.Forbidden("no roles assigned")
	}
	held := make(map[string]struct{}, len(principal.Roles))
	for _, r := range principal.Roles {
		held[r.Name] = struct{}{}
	}
	for _, name := range required {
		if _, ok := held[name]; ok {
			return nil
		}
	}
	return errs.Forbidden("required roles", required...)
}

func evaluatePermissions(principal *models.User, required []string) error {
	if len(required) == 0 {
		return nil
	}
	if principal == nil || len(principal.Roles) == 0 {
		return errs.Forbidden("no permissions assigned")
	}
	held := make(map[string]struct{})
	for _, role := range principal.Roles {
		for _, p := range role.Permissions {
			held[p.Name] = struct{}{}
		}
	}
	for _, name := range required {
		if _, ok := held[name]; !ok {
			return errs.Forbidden("required permissions", required...)
		}
	}
	return nil
}
