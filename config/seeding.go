package config

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"p9e.in/prepsafe/models"
)

// RunAllSeeding runs all seeding operations in the correct order
func RunAllSeeding() {
	log.Println("=== Starting Database Seeding ===")

	log.Println("[1/3] Seeding Permissions...")
	SeedPermissions()

	log.Println("[2/3] Seeding Organizations...")
	SeedOrganizations()

	log.Println("[3/3] Seeding Default Users...")
	SeedUsers()

	log.Println("=== Database Seeding Complete ===")
}

// =====================================================
// Permissions & Roles Seeding
// =====================================================

// SeedPermissions creates default permissions and global roles
func SeedPermissions() {
	permissions := []models.Permission{
		// Super Admin Wildcard
		{ID: uuid.New(), Name: "*:*:*", Resource: "*", Action: "*", Description: "Super Admin wildcard - all permissions"},

		// Compliance Logs
		{ID: uuid.New(), Name: "compliance:create", Resource: "compliance", Action: "create", Description: "Submit compliance logs"},
		{ID: uuid.New(), Name: "compliance:read", Resource: "compliance", Action: "read", Description: "View compliance logs and history"},
		{ID: uuid.New(), Name: "compliance:export", Resource: "compliance", Action: "export", Description: "Export compliance logs"},

		// Setup (sections, setup-only tabs, wizard)
		{ID: uuid.New(), Name: "setup:manage", Resource: "setup", Action: "manage", Description: "Manage compliance setup and section toggles"},
		{ID: uuid.New(), Name: "setup:read", Resource: "setup", Action: "read", Description: "View compliance setup"},

		// Profile & Supervisors
		{ID: uuid.New(), Name: "profile:read", Resource: "profile", Action: "read", Description: "View compliance profile"},
		{ID: uuid.New(), Name: "profile:update", Resource: "profile", Action: "update", Description: "Edit compliance profile and licence details"},
		{ID: uuid.New(), Name: "supervisor:create", Resource: "supervisor", Action: "create", Description: "Register food safety supervisors"},
		{ID: uuid.New(), Name: "supervisor:read", Resource: "supervisor", Action: "read", Description: "View food safety supervisors"},
		{ID: uuid.New(), Name: "supervisor:update", Resource: "supervisor", Action: "update", Description: "Edit food safety supervisors"},
		{ID: uuid.New(), Name: "supervisor:delete", Resource: "supervisor", Action: "delete", Description: "Remove food safety supervisors"},

		// Self-Assessments
		{ID: uuid.New(), Name: "assessment:create", Resource: "assessment", Action: "create", Description: "Record self-assessments"},
		{ID: uuid.New(), Name: "assessment:read", Resource: "assessment", Action: "read", Description: "View self-assessment results"},

		// Files
		{ID: uuid.New(), Name: "file:upload", Resource: "file", Action: "create", Description: "Upload photos and document scans"},
		{ID: uuid.New(), Name: "file:read", Resource: "file", Action: "read", Description: "View uploaded files"},

		// Admin / Users / Roles
		{ID: uuid.New(), Name: "user:create", Resource: "user", Action: "create", Description: "Create user"},
		{ID: uuid.New(), Name: "user:read", Resource: "user", Action: "read", Description: "View user"},
		{ID: uuid.New(), Name: "user:update", Resource: "user", Action: "update", Description: "Edit user"},
		{ID: uuid.New(), Name: "user:delete", Resource: "user", Action: "delete", Description: "Delete user"},
		{ID: uuid.New(), Name: "role:read", Resource: "role", Action: "read", Description: "View roles"},
		{ID: uuid.New(), Name: "role:assign", Resource: "role", Action: "assign", Description: "Assign role to user"},
		{ID: uuid.New(), Name: "org:create", Resource: "org", Action: "create", Description: "Create organization"},
		{ID: uuid.New(), Name: "org:read", Resource: "org", Action: "read", Description: "View organization"},
		{ID: uuid.New(), Name: "org:update", Resource: "org", Action: "update", Description: "Edit organization"},
	}

	// Create permissions if they don't exist
	for _, perm := range permissions {
		var existingPerm models.Permission
		if err := DB.Where("name = ?", perm.Name).First(&existingPerm).Error; err != nil {
			if err := DB.Create(&perm).Error; err != nil {
				log.Printf("Error creating permission %s: %v", perm.Name, err)
			} else {
				log.Printf("Created permission: %s", perm.Name)
			}
		}
	}

	// Load all permissions
	var allPerms []models.Permission
	if err := DB.Find(&allPerms).Error; err != nil {
		log.Fatalf("Failed to load permissions: %v", err)
	}
	permMap := make(map[string]models.Permission)
	for _, p := range allPerms {
		permMap[p.Name] = p
	}
	log.Printf("Loaded %d permissions", len(permMap))

	// Define global roles
	globalRoles := []models.Role{
		{
			Name:        "super_admin",
			Description: "Full system access",
			Level:       0,
			Permissions: []models.Permission{{Name: "*:*:*"}},
		},
		{
			Name:        "owner",
			Description: "Venue owner: full compliance and setup access",
			IsGlobal:    true,
			IsActive:    true,
			Level:       1,
			Permissions: []models.Permission{
				{Name: "compliance:create"}, {Name: "compliance:read"}, {Name: "compliance:export"},
				{Name: "setup:manage"}, {Name: "setup:read"},
				{Name: "profile:read"}, {Name: "profile:update"},
				{Name: "supervisor:create"}, {Name: "supervisor:read"}, {Name: "supervisor:update"}, {Name: "supervisor:delete"},
				{Name: "assessment:create"}, {Name: "assessment:read"},
				{Name: "file:upload"}, {Name: "file:read"},
				{Name: "user:create"}, {Name: "user:read"}, {Name: "user:update"},
				{Name: "role:read"}, {Name: "role:assign"}, {Name: "org:read"}, {Name: "org:update"},
			},
		},
		{
			Name:        "manager",
			Description: "Venue manager: compliance, setup, supervisors, exports",
			IsGlobal:    true,
			IsActive:    true,
			Level:       2,
			Permissions: []models.Permission{
				{Name: "compliance:create"}, {Name: "compliance:read"}, {Name: "compliance:export"},
				{Name: "setup:manage"}, {Name: "setup:read"},
				{Name: "profile:read"}, {Name: "profile:update"},
				{Name: "supervisor:create"}, {Name: "supervisor:read"}, {Name: "supervisor:update"},
				{Name: "assessment:create"}, {Name: "assessment:read"},
				{Name: "file:upload"}, {Name: "file:read"},
				{Name: "user:read"},
			},
		},
		{
			Name:        "staff",
			Description: "Kitchen/bar staff: submit and view daily logs",
			IsGlobal:    true,
			IsActive:    true,
			Level:       4,
			Permissions: []models.Permission{
				{Name: "compliance:create"}, {Name: "compliance:read"},
				{Name: "setup:read"},
				{Name: "file:upload"}, {Name: "file:read"},
			},
		},
	}

	for _, roleData := range globalRoles {
		var role models.Role
		err := DB.Where("name = ?", roleData.Name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role = models.Role{
				Name:        roleData.Name,
				Description: roleData.Description,
				IsGlobal:    roleData.IsGlobal,
				IsActive:    roleData.IsActive,
				Level:       roleData.Level,
			}
			if err := DB.Create(&role).Error; err != nil {
				log.Printf("Error creating role %s: %v", roleData.Name, err)
				continue
			}
			log.Printf("Created role: %s", roleData.Name)
		} else if err != nil {
			log.Printf("DB error fetching role %s: %v", roleData.Name, err)
			continue
		}

		// Build permission list
		var permsToAssign []models.Permission
		for _, p := range roleData.Permissions {
			if dbPerm, ok := permMap[p.Name]; ok {
				permsToAssign = append(permsToAssign, dbPerm)
			}
		}

		// Clear existing permissions
		DB.Exec("DELETE FROM role_permissions WHERE role_id = ?", role.ID)

		// Assign permissions
		for _, perm := range permsToAssign {
			rolePermission := models.RolePermission{
				RoleID:       role.ID,
				PermissionID: perm.ID,
				CreatedAt:    time.Now(),
			}
			DB.Create(&rolePermission)
		}

		var assignedCount int64
		DB.Table("role_permissions").Where("role_id = ?", role.ID).Count(&assignedCount)
		log.Printf("Assigned %d permissions to role '%s'", assignedCount, role.Name)
	}
}

// =====================================================
// Organization Seeding
// =====================================================

// SeedOrganizations creates a demo organization per framework variant and
// their default org roles
func SeedOrganizations() {
	defaultOrgs := []struct {
		Name        string
		Code        string
		Framework   string
		Description string
	}{
		{Name: "Spice Route Kitchen", Code: "SPICE_ROUTE", Framework: "fssai", Description: "Demo restaurant on the FSSAI framework"},
		{Name: "The Crown & Anchor", Code: "CROWN_ANCHOR", Framework: "food_standards", Description: "Demo pub on the UK Food Standards framework"},
		{Name: "Asha's Tiffins", Code: "ASHA_TIFFINS", Framework: "home_cook", Description: "Demo home-cook business"},
	}

	for _, orgData := range defaultOrgs {
		var org models.Organization
		err := DB.Where("code = ?", orgData.Code).First(&org).Error

		if err != nil {
			defaultSettings := "{}"
			org = models.Organization{
				Name:        orgData.Name,
				Code:        orgData.Code,
				Framework:   orgData.Framework,
				Description: orgData.Description,
				IsActive:    true,
				Settings:    &defaultSettings,
			}

			if err := DB.Create(&org).Error; err != nil {
				log.Printf("Error creating organization %s: %v", orgData.Name, err)
				continue
			}
			log.Printf("Created organization: %s (ID: %s)", orgData.Name, org.ID)
		} else {
			log.Printf("Organization already exists: %s", orgData.Name)
		}

		createDefaultOrgRoles(org.ID)
	}
}

// createDefaultOrgRoles creates the standard roles for an organization
func createDefaultOrgRoles(orgID uuid.UUID) {
	defaultRoles := []struct {
		Name        string
		DisplayName string
		Description string
		Level       int
		Permissions []string
	}{
		{
			Name: "org_owner", DisplayName: "Owner", Description: "Full access within the organization", Level: 1,
			Permissions: []string{
				"compliance:create", "compliance:read", "compliance:export",
				"setup:manage", "setup:read",
				"profile:read", "profile:update",
				"supervisor:create", "supervisor:read", "supervisor:update", "supervisor:delete",
				"assessment:create", "assessment:read",
				"file:upload", "file:read",
				"user:read", "role:assign",
			},
		},
		{
			Name: "org_manager", DisplayName: "Venue Manager", Description: "Compliance setup and daily operations", Level: 2,
			Permissions: []string{
				"compliance:create", "compliance:read", "compliance:export",
				"setup:manage", "setup:read",
				"profile:read", "profile:update",
				"supervisor:create", "supervisor:read", "supervisor:update",
				"assessment:create", "assessment:read",
				"file:upload", "file:read",
			},
		},
		{
			Name: "org_staff", DisplayName: "Staff", Description: "Submit and view daily logs", Level: 4,
			Permissions: []string{
				"compliance:create", "compliance:read",
				"setup:read",
				"file:upload", "file:read",
			},
		},
	}

	// Load permissions
	var allPerms []models.Permission
	if err := DB.Find(&allPerms).Error; err != nil {
		log.Printf("Failed to load permissions: %v", err)
		return
	}
	permMap := make(map[string]models.Permission)
	for _, p := range allPerms {
		permMap[p.Name] = p
	}

	for _, roleData := range defaultRoles {
		var role models.OrgRole
		err := DB.Where("name = ? AND organization_id = ?", roleData.Name, orgID).First(&role).Error

		if err != nil {
			role = models.OrgRole{
				Name:           roleData.Name,
				DisplayName:    roleData.DisplayName,
				Description:    roleData.Description,
				Level:          roleData.Level,
				OrganizationID: orgID,
				IsActive:       true,
			}

			if err := DB.Create(&role).Error; err != nil {
				log.Printf("Error creating org role %s: %v", roleData.Name, err)
				continue
			}
			log.Printf("Created org role: %s", roleData.DisplayName)
		}

		// Assign permissions
		DB.Exec("DELETE FROM org_role_permissions WHERE org_role_id = ?", role.ID)

		for _, permName := range roleData.Permissions {
			if dbPerm, ok := permMap[permName]; ok {
				orp := models.OrgRolePermission{
					OrgRoleID:    role.ID,
					PermissionID: dbPerm.ID,
					CreatedAt:    time.Now(),
				}
				DB.Create(&orp)
			}
		}
	}
}

// =====================================================
// User Seeding
// =====================================================

// SeedUsers creates default users including super admin and per-org users
func SeedUsers() {
	log.Println("Seeding default users...")

	// Get the super_admin role
	var superAdminRole models.Role
	if err := DB.Where("name = ?", "super_admin").First(&superAdminRole).Error; err != nil {
		log.Printf("Error: super_admin role not found. Run SeedPermissions first: %v", err)
		return
	}

	var spiceOrg, crownOrg models.Organization
	DB.Where("code = ?", "SPICE_ROUTE").First(&spiceOrg)
	DB.Where("code = ?", "CROWN_ANCHOR").First(&crownOrg)

	// Default password for all seeded users (should be changed on first login)
	defaultPassword := "Welcome@123"
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return
	}

	usersToSeed := []struct {
		Name           string
		Email          string
		Phone          string
		RoleID         *uuid.UUID
		OrganizationID *uuid.UUID
		OrgRoleName    string
		Description    string
	}{
		{
			Name:        "Super Admin",
			Email:       "admin@prepsafe.in",
			Phone:       "9999999999",
			RoleID:      &superAdminRole.ID,
			Description: "Super Administrator with full system access",
		},
		{
			Name:           "Spice Route Owner",
			Email:          "owner@spiceroute.in",
			Phone:          "9999999901",
			OrganizationID: &spiceOrg.ID,
			OrgRoleName:    "org_owner",
			Description:    "Demo restaurant owner",
		},
		{
			Name:           "Spice Route Chef",
			Email:          "chef@spiceroute.in",
			Phone:          "9999999902",
			OrganizationID: &spiceOrg.ID,
			OrgRoleName:    "org_staff",
			Description:    "Demo kitchen staff",
		},
		{
			Name:           "Crown Manager",
			Email:          "manager@crownanchor.co.uk",
			Phone:          "9999999903",
			OrganizationID: &crownOrg.ID,
			OrgRoleName:    "org_manager",
			Description:    "Demo pub manager",
		},
	}

	for _, userData := range usersToSeed {
		var existingUser models.User
		err := DB.Where("email = ?", userData.Email).First(&existingUser).Error

		if err == nil {
			log.Printf("User already exists: %s (%s)", userData.Name, userData.Email)
			continue
		}

		user := models.User{
			Name:           userData.Name,
			Email:          userData.Email,
			Phone:          userData.Phone,
			PasswordHash:   string(passwordHash),
			RoleID:         userData.RoleID,
			OrganizationID: userData.OrganizationID,
			IsActive:       true,
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Printf("Error creating user %s: %v", userData.Name, err)
			continue
		}

		log.Printf("Created user: %s (%s) - %s", userData.Name, userData.Email, userData.Description)

		// Assign org role if specified
		if userData.OrgRoleName != "" && userData.OrganizationID != nil {
			var orgRole models.OrgRole
			if err := DB.Where("name = ? AND organization_id = ?", userData.OrgRoleName, *userData.OrganizationID).First(&orgRole).Error; err == nil {
				uor := models.UserOrgRole{
					UserID:     user.ID,
					OrgRoleID:  orgRole.ID,
					IsActive:   true,
					AssignedAt: time.Now(),
				}

				if err := DB.Create(&uor).Error; err != nil {
					log.Printf("Error assigning org role to %s: %v", userData.Name, err)
				} else {
					log.Printf("  -> Assigned %s role to %s", userData.OrgRoleName, userData.Name)
				}
			}
		}
	}

	log.Println("User seeding completed")
	log.Println("========================================")
	log.Println("DEFAULT CREDENTIALS (change immediately!):")
	log.Println("----------------------------------------")
	log.Println("Super Admin:   admin@prepsafe.in / Welcome@123")
	log.Println("Owner:         owner@spiceroute.in / Welcome@123")
	log.Println("Staff:         chef@spiceroute.in / Welcome@123")
	log.Println("Manager:       manager@crownanchor.co.uk / Welcome@123")
	log.Println("========================================")
}
