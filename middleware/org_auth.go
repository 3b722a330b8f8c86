package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/models"
)

// getOrgIDFromRequest extracts the organization from URL path variables,
// query parameters, headers, or the JWT, in that order.
// Supports both UUIDs and organization codes.
func getOrgIDFromRequest(r *http.Request) uuid.UUID {
	// Try to get from URL path variables first
	vars := mux.Vars(r)
	if orgIdentifier, exists := vars["orgCode"]; exists {
		return resolveOrgIdentifier(orgIdentifier)
	}
	if orgIdentifier, exists := vars["orgId"]; exists {
		return resolveOrgIdentifier(orgIdentifier)
	}

	// Try to get from query parameter
	if orgIdentifier := r.URL.Query().Get("org_code"); orgIdentifier != "" {
		return resolveOrgIdentifier(orgIdentifier)
	}
	if orgIdentifier := r.URL.Query().Get("org_id"); orgIdentifier != "" {
		return resolveOrgIdentifier(orgIdentifier)
	}

	// Try to get from header
	if orgIdentifier := r.Header.Get("X-Org-Code"); orgIdentifier != "" {
		return resolveOrgIdentifier(orgIdentifier)
	}
	if orgIdentifier := r.Header.Get("X-Org-ID"); orgIdentifier != "" {
		return resolveOrgIdentifier(orgIdentifier)
	}

	// Try to extract from path (e.g., /api/v1/orgs/{code}/logs)
	pathParts := strings.Split(r.URL.Path, "/")
	for i, part := range pathParts {
		if part == "orgs" && i+1 < len(pathParts) {
			return resolveOrgIdentifier(pathParts[i+1])
		}
	}

	// Fall back to the primary organization claimed in the JWT
	if c := GetClaims(r); c != nil && c.OrgID != "" {
		if orgID, err := uuid.Parse(c.OrgID); err == nil {
			return orgID
		}
	}

	return uuid.Nil
}

// resolveOrgIdentifier converts an organization code, name, or UUID to UUID
func resolveOrgIdentifier(identifier string) uuid.UUID {
	// First try to parse as UUID
	if orgID, err := uuid.Parse(identifier); err == nil {
		return orgID
	}

	// Try to find by code (case-insensitive)
	var org models.Organization
	if err := config.DB.Where("UPPER(code) = UPPER(?) AND is_active = ?", identifier, true).
		First(&org).Error; err == nil {
		return org.ID
	}

	// Try to find by name (case-insensitive)
	if err := config.DB.Where("UPPER(name) = UPPER(?) AND is_active = ?", identifier, true).
		First(&org).Error; err == nil {
		return org.ID
	}

	return uuid.Nil
}

// GetCurrentOrgID returns the organization ID for the current request
func GetCurrentOrgID(r *http.Request) uuid.UUID {
	return getOrgIDFromRequest(r)
}

// GetOrgContext resolves the caller's standing within the request's
// organization: their effective permissions, whether they can manage
// compliance setup, and whether they are an admin.
func GetOrgContext(r *http.Request) map[string]interface{} {
	orgID := getOrgIDFromRequest(r)
	user := GetUser(r)

	isAdmin := user.RoleModel != nil && user.RoleModel.Name == "super_admin"

	return map[string]interface{}{
		"org_id":           orgID,
		"permissions":      user.GetAllPermissions(),
		"can_manage_setup": user.CanManageSetup(orgID),
		"is_admin":         isAdmin,
	}
}

// CanManageSetup reports whether the current caller may change compliance
// setup for the request's organization.
func CanManageSetup(r *http.Request) bool {
	u := GetUser(r)
	return u.CanManageSetup(getOrgIDFromRequest(r))
}
