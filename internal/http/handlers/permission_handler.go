package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authgate/internal/auth"
	"authgate/internal/service"
)

func ListPermissions(svc *service.PermissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var err error
		var perms interface{}
		if resource := c.Query("resource"); resource != "" {
			perms, err = svc.FindByResource(c.Request.Context(), resource)
		} else {
			perms, err = svc.FindAll(c.Request.Context())
		}
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"permissions": perms})
	}
}

func GetPermission(svc *service.PermissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		perm, err := svc.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"permission": perm})
	}
}

func CreatePermission(svc *service.PermissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.PermissionCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		perm, err := svc.Create(c.Request.Context(), input)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"permission": perm})
	}
}

func UpdatePermission(svc *service.PermissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.PermissionUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		perm, err := svc.Update(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"permission": perm})
	}
}

func DeletePermission(svc *service.PermissionService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		if principal, ok := auth.PrincipalFrom(c); ok {
			audit.Record(c, principal.ID, "permissions.delete", "permission", id, nil)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Permission deleted successfully"})
	}
}

func TogglePermissionStatus(svc *service.PermissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		perm, err := svc.ToggleStatus(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"permission": perm})
	}
}
