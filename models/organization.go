package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization represents one tenant: a restaurant, bar, or home-cook
// business. Every compliance row in the system is scoped to an organization.
type Organization struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code        string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Description string    `gorm:"size:255" json:"description,omitempty"`

	// Framework is the regulatory variant key this organization operates
	// under ("fssai", "food_standards", "home_cook"). It selects labels,
	// default sections, wizard steps and the scoring model.
	Framework string `gorm:"size:30;not null;default:'fssai'" json:"framework"`

	IsActive  bool    `gorm:"default:true" json:"isActive"`
	Settings  *string `gorm:"type:jsonb" json:"settings,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Users    []User    `gorm:"foreignKey:OrganizationID"`
	OrgRoles []OrgRole `gorm:"foreignKey:OrganizationID"`
}

// OrgRole represents roles within a specific organization
type OrgRole struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name           string       `gorm:"size:50;not null"`  // e.g., "owner", "manager", "staff"
	DisplayName    string       `gorm:"size:100;not null"` // e.g., "Venue Manager"
	Description    string       `gorm:"size:255"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null"`
	Organization   Organization `gorm:"foreignKey:OrganizationID"`
	Permissions    []Permission `gorm:"many2many:org_role_permissions;"`
	IsActive       bool         `gorm:"default:true"`
	Level          int          `gorm:"default:1"` // Hierarchy level (1=highest, 5=lowest)
	CreatedAt      time.Time
	UpdatedAt      time.Time

	UserOrgRoles []UserOrgRole `gorm:"foreignKey:OrgRoleID"`
}

// UserOrgRole represents a user's role within a specific organization
type UserOrgRole struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null"`
	User       User       `gorm:"foreignKey:UserID"`
	OrgRoleID  uuid.UUID  `gorm:"type:uuid;not null"`
	OrgRole    OrgRole    `gorm:"foreignKey:OrgRoleID"`
	IsActive   bool       `gorm:"default:true"`
	AssignedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP"`
	AssignedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrgRolePermission junction table
type OrgRolePermission struct {
	OrgRoleID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
}

func (o *Organization) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

func (r *OrgRole) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

func (uor *UserOrgRole) BeforeCreate(tx *gorm.DB) (err error) {
	if uor.ID == uuid.Nil {
		uor.ID = uuid.New()
	}
	return
}
