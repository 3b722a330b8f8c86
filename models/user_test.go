package models

import (
	"testing"

	"github.com/google/uuid"
)

func orgRoleWith(orgID uuid.UUID, level int, perms ...string) UserOrgRole {
	role := OrgRole{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Level:          level,
	}
	for _, p := range perms {
		role.Permissions = append(role.Permissions, Permission{Name: p})
	}
	return UserOrgRole{IsActive: true, OrgRole: role}
}

func TestGetHighestRoleLevel(t *testing.T) {
	orgID := uuid.New()

	tests := []struct {
		name     string
		user     User
		expected int
	}{
		{
			name:     "no roles at all",
			user:     User{},
			expected: 5,
		},
		{
			name:     "super admin is level zero",
			user:     User{RoleModel: &Role{Name: "super_admin"}},
			expected: 0,
		},
		{
			name:     "global role caps at one",
			user:     User{RoleModel: &Role{Name: "owner", IsGlobal: true}},
			expected: 1,
		},
		{
			name: "org role level wins when lower",
			user: User{
				UserOrgRoles: []UserOrgRole{orgRoleWith(orgID, 2)},
			},
			expected: 2,
		},
		{
			name: "inactive org role ignored",
			user: User{
				UserOrgRoles: []UserOrgRole{{IsActive: false, OrgRole: OrgRole{ID: uuid.New(), Level: 1}}},
			},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.GetHighestRoleLevel(); got != tt.expected {
				t.Errorf("GetHighestRoleLevel = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestCanManageSetup(t *testing.T) {
	orgID := uuid.New()
	otherOrg := uuid.New()

	tests := []struct {
		name     string
		user     User
		orgID    uuid.UUID
		expected bool
	}{
		{
			name:     "super admin anywhere",
			user:     User{RoleModel: &Role{Name: "super_admin"}},
			orgID:    orgID,
			expected: true,
		},
		{
			name: "org role with setup manage",
			user: User{
				UserOrgRoles: []UserOrgRole{orgRoleWith(orgID, 2, "setup:manage")},
			},
			orgID:    orgID,
			expected: true,
		},
		{
			name: "setup manage scoped to the other org",
			user: User{
				UserOrgRoles: []UserOrgRole{orgRoleWith(otherOrg, 2, "setup:manage")},
			},
			orgID:    orgID,
			expected: false,
		},
		{
			name: "global role with setup manage",
			user: User{
				RoleModel: &Role{
					Name:        "manager",
					Permissions: []Permission{{Name: "setup:manage"}},
				},
			},
			orgID:    orgID,
			expected: true,
		},
		{
			name: "org role without setup manage",
			user: User{
				UserOrgRoles: []UserOrgRole{orgRoleWith(orgID, 4, "compliance:create")},
			},
			orgID:    orgID,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.CanManageSetup(tt.orgID); got != tt.expected {
				t.Errorf("CanManageSetup = %v, expected %v", got, tt.expected)
			}
		})
	}
}
