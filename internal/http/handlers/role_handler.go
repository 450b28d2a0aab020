package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authgate/internal/auth"
	"authgate/internal/service"
)

func ListRoles(svc *service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, err := svc.FindAll(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"roles": roles})
	}
}

func GetRole(svc *service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := svc.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role})
	}
}

func CreateRole(svc *service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.RoleCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		role, err := svc.Create(c.Request.Context(), input)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"role": role})
	}
}

func UpdateRole(svc *service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.RoleUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		role, err := svc.Update(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role})
	}
}

func DeleteRole(svc *service.RoleService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		if principal, ok := auth.PrincipalFrom(c); ok {
			audit.Record(c, principal.ID, "roles.delete", "role", id, nil)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
	}
}

func AssignRolePermission(svc *service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PermissionID string `json:"permission_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		role, err := svc.AssignPermission(c.Request.Context(), c.Param("id"), input.PermissionID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role})
	}
}

func RemoveRolePermission(svc *service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := svc.RemovePermission(c.Request.Context(), c.Param("id"), c.Param("permissionId"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role})
	}
}

func ToggleRoleStatus(svc *service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := svc.ToggleStatus(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role})
	}
}
