package middleware

import (
	"net/http"

	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/models"
	"p9e.in/prepsafe/utils"
)

// RequirePermission middleware checks if the authenticated user has the required permission
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r)
			if claims == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			// Get user with role information
			var user models.User
			if err := config.DB.
				Preload("RoleModel.Permissions").
				Preload("UserOrgRoles.OrgRole.Permissions").
				First(&user, "id = ?", claims.UserID).Error; err != nil {
				http.Error(w, "user not found", http.StatusUnauthorized)
				return
			}

			// Super admins have all permissions
			if claims.Role == "super_admin" {
				next.ServeHTTP(w, r)
				return
			}

			for _, userPerm := range user.GetAllPermissions() {
				if utils.MatchesPermission(userPerm, permission) {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "insufficient permissions", http.StatusForbidden)
		})
	}
}

// RequireAnyPermission checks if user has any of the provided permissions
func RequireAnyPermission(permissions []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r)
			if claims == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			var user models.User
			if err := config.DB.
				Preload("RoleModel.Permissions").
				Preload("UserOrgRoles.OrgRole.Permissions").
				First(&user, "id = ?", claims.UserID).Error; err != nil {
				http.Error(w, "user not found", http.StatusUnauthorized)
				return
			}

			if claims.Role == "super_admin" {
				next.ServeHTTP(w, r)
				return
			}

			userPerms := user.GetAllPermissions()
			for _, required := range permissions {
				for _, userPerm := range userPerms {
					if utils.MatchesPermission(userPerm, required) {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			http.Error(w, "insufficient permissions", http.StatusForbidden)
		})
	}
}
