// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name           string        `gorm:"size:100;not null"`
	Email          string        `gorm:"size:100;uniqueIndex;not null"`
	Phone          string        `gorm:"size:15;uniqueIndex;not null"`
	PasswordHash   string        `gorm:"size:255;not null"`
	RoleID         *uuid.UUID    `gorm:"type:uuid"`         // Global role system
	RoleModel      *Role         `gorm:"foreignKey:RoleID"` // Relationship to global Role
	OrganizationID *uuid.UUID    `gorm:"type:uuid"`         // Primary organization
	Organization   *Organization `gorm:"foreignKey:OrganizationID"`
	IsActive       bool          `gorm:"default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Per-organization role relationships
	UserOrgRoles []UserOrgRole `gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	return
}

// HasPermission checks if user has a specific global permission
func (u *User) HasPermission(permissionName string) bool {
	if u.RoleModel != nil {
		return u.RoleModel.HasPermission(permissionName)
	}
	return false
}

// GetAllPermissions collects all permissions from global and organization roles
func (u *User) GetAllPermissions() []string {
	permissions := make(map[string]bool) // Use map to avoid duplicates

	// Check for Super Admin wildcard
	if u.RoleModel != nil && u.RoleModel.Name == "super_admin" {
		return []string{"*:*:*"}
	}

	if u.RoleModel != nil {
		for _, perm := range u.RoleModel.Permissions {
			permissions[perm.Name] = true
		}
	}

	for _, uor := range u.UserOrgRoles {
		if uor.IsActive && uor.OrgRole.ID != uuid.Nil {
			for _, perm := range uor.OrgRole.Permissions {
				permissions[perm.Name] = true
			}
		}
	}

	result := make([]string, 0, len(permissions))
	for perm := range permissions {
		result = append(result, perm)
	}

	return result
}

// HasPermissionInOrg checks if user has permission in a specific organization
func (u *User) HasPermissionInOrg(permission string, orgID uuid.UUID) bool {
	// Super Admin has all permissions in all organizations
	if u.RoleModel != nil && u.RoleModel.Name == "super_admin" {
		return true
	}

	for _, uor := range u.UserOrgRoles {
		if uor.IsActive &&
			uor.OrgRole.ID != uuid.Nil &&
			uor.OrgRole.OrganizationID == orgID {
			for _, perm := range uor.OrgRole.Permissions {
				if perm.Name == permission {
					return true
				}
			}
		}
	}

	return false
}

// CanManageSetup reports whether the user may change compliance setup
// (section toggles, setup-only tabs) for the given organization.
func (u *User) CanManageSetup(orgID uuid.UUID) bool {
	if u.RoleModel != nil && u.RoleModel.Name == "super_admin" {
		return true
	}
	return u.HasPermissionInOrg("setup:manage", orgID) || u.HasPermission("setup:manage")
}

// GetHighestRoleLevel returns user's highest privilege level (lowest number)
func (u *User) GetHighestRoleLevel() int {
	minLevel := 5 // Default to lowest privilege

	if u.RoleModel != nil {
		if u.RoleModel.Name == "super_admin" {
			return 0
		}
		if u.RoleModel.IsGlobal {
			minLevel = 1
		}
	}

	for _, uor := range u.UserOrgRoles {
		if uor.IsActive && uor.OrgRole.ID != uuid.Nil {
			if uor.OrgRole.Level < minLevel {
				minLevel = uor.OrgRole.Level
			}
		}
	}

	return minLevel
}
