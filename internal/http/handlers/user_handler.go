package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"authgate/internal/auth"
	"authgate/internal/models"
	"authgate/internal/service"
)

func ListUsers(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		result, err := svc.List(c.Request.Context(), page, limit)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetUser(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func UpdateUser(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update service.UserUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := svc.Update(c.Request.Context(), c.Param("id"), update)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func DeleteUser(svc *service.UserService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		if principal, ok := auth.PrincipalFrom(c); ok {
			audit.Record(c, principal.ID, "users.delete", "user", id, nil)
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}

func AssignUserRole(svc *service.UserService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			RoleID string `json:"role_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := svc.AssignRole(c.Request.Context(), c.Param("id"), input.RoleID)
		if err != nil {
			fail(c, err)
			return
		}
		if principal, ok := auth.PrincipalFrom(c); ok {
			audit.Record(c, principal.ID, "users.assign-role", "user", user.ID,
				map[string]interface{}{"role_id": input.RoleID})
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func RemoveUserRole(svc *service.UserService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.RemoveRole(c.Request.Context(), c.Param("id"), c.Param("roleId"))
		if err != nil {
			fail(c, err)
			return
		}
		if principal, ok := auth.PrincipalFrom(c); ok {
			audit.Record(c, principal.ID, "users.remove-role", "user", user.ID,
				map[string]interface{}{"role_id": c.Param("roleId")})
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func ChangeUserStatus(svc *service.UserService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status models.UserStatus `json:"status" binding:"required,oneof=active inactive banned"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := svc.ChangeStatus(c.Request.Context(), c.Param("id"), input.Status)
		if err != nil {
			fail(c, err)
			return
		}
		if principal, ok := auth.PrincipalFrom(c); ok {
			audit.Record(c, principal.ID, "users.change-status", "user", user.ID,
				map[string]interface{}{"status": input.Status})
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func UserStats(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
