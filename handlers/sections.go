package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/models"
)

// loadSectionToggles returns the org's saved section toggles as a map.
// Only saved rows appear; absent keys fall back to framework defaults at
// the call site.
func loadSectionToggles(orgID uuid.UUID) (map[string]bool, error) {
	var rows []models.SectionToggle
	if err := config.DB.Where("organization_id = ?", orgID).Find(&rows).Error; err != nil {
		return nil, err
	}
	toggles := make(map[string]bool, len(rows))
	for _, row := range rows {
		toggles[row.SectionKey] = row.Enabled
	}
	return toggles, nil
}

// effectiveSections overlays saved toggles on the framework defaults.
func effectiveSections(framework *config.FrameworkConfig, saved map[string]bool) map[string]bool {
	out := make(map[string]bool, len(framework.DefaultSections))
	for key, enabled := range framework.DefaultSections {
		out[key] = enabled
	}
	for key, enabled := range saved {
		out[key] = enabled
	}
	return out
}

// GetSections returns the effective section map: framework defaults
// overlaid with the organization's explicit choices.
func GetSections(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	saved, err := loadSectionToggles(orgID)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	framework := orgFramework(orgID)

	resp := map[string]interface{}{
		"sections":   effectiveSections(framework, saved),
		"saved":      saved,
		"defaults":   framework.DefaultSections,
		"configured": len(saved) > 0,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// UpdateSections upserts explicit toggle rows for the organization.
// Requires the setup:manage permission (enforced in routing); callers
// without it never reach here.
func UpdateSections(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	if !middleware.CanManageSetup(r) {
		http.Error(w, "insufficient permissions", http.StatusForbidden)
		return
	}

	var req map[string]bool
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	framework := orgFramework(orgID)
	for key := range req {
		if _, known := framework.DefaultSections[key]; !known {
			http.Error(w, "unknown section key: "+key, http.StatusBadRequest)
			return
		}
	}

	for key, enabled := range req {
		var row models.SectionToggle
		err := config.DB.Where("organization_id = ? AND section_key = ?", orgID, key).First(&row).Error
		if err != nil {
			row = models.SectionToggle{
				OrganizationID: orgID,
				SectionKey:     key,
				Enabled:        enabled,
			}
			if err := config.DB.Create(&row).Error; err != nil {
				http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		} else if row.Enabled != enabled {
			if err := config.DB.Model(&row).Update("enabled", enabled).Error; err != nil {
				http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}
	}

	saved, err := loadSectionToggles(orgID)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sections": effectiveSections(framework, saved),
		"saved":    saved,
	})
}
