package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"authgate/internal/auth"
	"authgate/internal/config"
	"authgate/internal/http/handlers"
	"authgate/internal/repository"
	"authgate/internal/service"
)

func NewRouter(db *gorm.DB, cfg config.Config, logger *zap.Logger) *gin.Engine {
	users := repository.NewUserRepository(db)
	roles := repository.NewRoleRepository(db)
	perms := repository.NewPermissionRepository(db)
	audits := repository.NewAuditRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	authSvc := service.NewAuthService(users, roles, tokens, cfg.BcryptCost, logger)
	userSvc := service.NewUserService(users, roles, logger)
	roleSvc := service.NewRoleService(roles, perms, logger)
	permSvc := service.NewPermissionService(perms, logger)
	auditor := handlers.NewAuditor(audits, logger)

	table := buildRequirements()
	authMW := auth.JWT(users, tokens)

	r := gin.Default()

	// Public routes
	r.POST("/api/v1/auth/register", handlers.Register(authSvc, auditor))
	r.POST("/api/v1/auth/login", handlers.Login(authSvc, auditor))
	r.POST("/api/v1/auth/oauth/callback", handlers.OAuthCallback(authSvc, auditor))

	api := r.Group("/api/v1", authMW)
	{
		// Session
		api.GET("/auth/profile", handlers.Profile())
		api.POST("/auth/refresh", handlers.Refresh(authSvc))
		api.POST("/auth/logout", handlers.Logout())

		// Users
		api.GET("/users", require(table, "users.list"), handlers.ListUsers(userSvc))
		api.GET("/users/stats", require(table, "users.stats"), handlers.UserStats(userSvc))
		api.GET("/users/:id", require(table, "users.get"), handlers.GetUser(userSvc))
		api.PATCH("/users/:id", require(table, "users.update"), handlers.UpdateUser(userSvc))
		api.DELETE("/users/:id", require(table, "users.delete"), handlers.DeleteUser(userSvc, auditor))
		api.POST("/users/:id/roles", require(table, "users.assign-role"), handlers.AssignUserRole(userSvc, auditor))
		api.DELETE("/users/:id/roles/:roleId", require(table, "users.remove-role"), handlers.RemoveUserRole(userSvc, auditor))
		api.POST("/users/:id/status", require(table, "users.change-status"), handlers.ChangeUserStatus(userSvc, auditor))

		// Roles
		api.GET("/roles", require(table, "roles.list"), handlers.ListRoles(roleSvc))
		api.GET("/roles/:id", require(table, "roles.get"), handlers.GetRole(roleSvc))
		api.POST("/roles", require(table, "roles.create"), handlers.CreateRole(roleSvc))
		api.PATCH("/roles/:id", require(table, "roles.update"), handlers.UpdateRole(roleSvc))
		api.DELETE("/roles/:id", require(table, "roles.delete"), handlers.DeleteRole(roleSvc, auditor))
		api.POST("/roles/:id/permissions", require(table, "roles.assign-permission"), handlers.AssignRolePermission(roleSvc))
		api.DELETE("/roles/:id/permissions/:permissionId", require(table, "roles.remove-permission"), handlers.RemoveRolePermission(roleSvc))
		api.POST("/roles/:id/toggle-status", require(table, "roles.toggle-status"), handlers.ToggleRoleStatus(roleSvc))

		// Permissions
		api.GET("/permissions", require(table, "permissions.list"), handlers.ListPermissions(permSvc))
		api.GET("/permissions/:id", require(table, "permissions.get"), handlers.GetPermission(permSvc))
		api.POST("/permissions", require(table, "permissions.create"), handlers.CreatePermission(permSvc))
		api.PATCH("/permissions/:id", require(table, "permissions.update"), handlers.UpdatePermission(permSvc))
		api.DELETE("/permissions/:id", require(table, "permissions.delete"), handlers.DeletePermission(permSvc, auditor))
		api.POST("/permissions/:id/toggle-status", require(table, "permissions.toggle-status"), handlers.TogglePermissionStatus(permSvc))

		// Audit trail
		api.GET("/audit", require(table, "audit.read"), handlers.ListAudit(audits))
	}

	return r
}
