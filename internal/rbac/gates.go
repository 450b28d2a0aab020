package rbac

import (
	"authgate/internal/models"
)

// Gate is a single pass/fail check over the loaded principal. Gates return
// nil to allow and a *errs.ForbiddenError to deny.
type Gate func(principal *models.User) error

// Chain composes gates with short-circuiting AND: the first denial wins.
func Chain(gates ...Gate) Gate {
	return func(principal *models.User) error {
		for _, g := range gates {
			if err := g(principal); err != nil {
				return err
			}
		}
		return nil
	}
}

// RoleGate builds a gate enforcing the role half of a requirement.
func RoleGate(roles ...string) Gate {
	return func(principal *models.User) error {
		return evaluateRoles(principal, roles)
	}
}

// PermissionGate builds a gate enforcing the permission half.
func PermissionGate(perms ...string) Gate {
	return func(principal *models.User) error {
		return evaluatePermissions(principal, perms)
	}
}

// Table maps operation identifiers to their declared requirements. It is
// built once at startup and read by the dispatcher; there is no reflective
// metadata lookup. An operation absent from the table has no requirement.
type Table struct {
	ops map[string]Requirement
}

func NewTable() *Table {
	return &Table{ops: make(map[string]Requirement)}
}

// Declare attaches a requirement to an operation identifier.
func (t *Table) Declare(op string, req Requirement) *Table {
	t.ops[op] = req
	return t
}

// Lookup returns the requirement for an operation, or the pass-through
// requirement when none was declared.
func (t *Table) Lookup(op string) Requirement {
	return t.ops[op]
}
