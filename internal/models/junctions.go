package models

// UserRole is the join between users and roles. The `user_roles` table has a
// composite primary key and no id column of its own.
type UserRole struct {
	UserID string `gorm:"type:char(36);primaryKey"`
	RoleID string `gorm:"type:char(36);primaryKey"`
}

// RolePermission is the join between roles and permissions.
type RolePermission struct {
	RoleID       string `gorm:"type:char(36);primaryKey"`
	PermissionID string `gorm:"type:char(36);primaryKey"`
}
