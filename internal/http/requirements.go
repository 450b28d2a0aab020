package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"authgate/internal/auth"
	"authgate/internal/errs"
	"authgate/internal/rbac"
)

// buildRequirements declares, per operation identifier, what a caller must
// hold. Built once at startup; the Require middleware looks operations up
// here. Operations absent from the table pass through for any authenticated
// user.
func buildRequirements() *rbac.Table {
	adminRoles := []string{"admin", "super-admin"}

	t := rbac.NewTable()

	// Users
	t.Declare("users.list", rbac.Both(adminRoles, []string{rbac.Key("user", "read")}))
	t.Declare("users.get", rbac.AllPermissions(rbac.Key("user", "read")))
	t.Declare("users.update", rbac.AllPermissions(rbac.Key("user", "update")))
	t.Declare("users.delete", rbac.Both(adminRoles, []string{rbac.Key("user", "delete")}))
	t.Declare("users.assign-role", rbac.AnyRole(adminRoles...))
	t.Declare("users.remove-role", rbac.AnyRole(adminRoles...))
	t.Declare("users.change-status", rbac.AnyRole(adminRoles...))
	t.Declare("users.stats", rbac.Both(adminRoles, []string{rbac.Key("admin", "access")}))

	// Roles
	t.Declare("roles.list", rbac.AllPermissions(rbac.Key("role", "read")))
	t.Declare("roles.get", rbac.AllPermissions(rbac.Key("role", "read")))
	t.Declare("roles.create", rbac.AllPermissions(rbac.Key("role", "create")))
	t.Declare("roles.update", rbac.AllPermissions(rbac.Key("role", "update")))
	t.Declare("roles.delete", rbac.AllPermissions(rbac.Key("role", "delete")))
	t.Declare("roles.assign-permission", rbac.AllPermissions(rbac.Key("role", "update")))
	t.Declare("roles.remove-permission", rbac.AllPermissions(rbac.Key("role", "update")))
	t.Declare("roles.toggle-status", rbac.AllPermissions(rbac.Key("role", "update")))

	// Permissions
	t.Declare("permissions.list", rbac.AllPermissions(rbac.Key("permission", "read")))
	t.Declare("permissions.get", rbac.AllPermissions(rbac.Key("permission", "read")))
	t.Declare("permissions.create", rbac.AllPermissions(rbac.Key("permission", "create")))
	t.Declare("permissions.update", rbac.AllPermissions(rbac.Key("permission", "update")))
	t.Declare("permissions.delete", rbac.AllPermissions(rbac.Key("permission", "delete")))
	t.Declare("permissions.toggle-status", rbac.AllPermissions(rbac.Key("permission", "update")))

	// Audit
	t.Declare("audit.read", rbac.AllPermissions(rbac.Key("admin", "access")))

	return t
}

// require evaluates the declared requirement for an operation against the
// principal the JWT middleware loaded. Evaluation is pure; all I/O already
// happened.
func require(table *rbac.Table, op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if err := rbac.Evaluate(principal, table.Lookup(op)); err != nil {
			body := gin.H{"error": err.Error()}
			var fe *errs.ForbiddenError
			if errors.As(err, &fe) && len(fe.Missing) > 0 {
				body["missing"] = fe.Missing
			}
			c.AbortWithStatusJSON(http.StatusForbidden, body)
			return
		}
		c.Next()
	}
}
