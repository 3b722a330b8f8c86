package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/models"
	"p9e.in/prepsafe/pkg/compliance"
)

// GetStage derives the organization's onboarding stage from current data.
// The stage is never stored; every call recomputes it.
func GetStage(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	var assessmentCount int64
	if err := config.DB.Model(&models.SelfAssessment{}).
		Where("organization_id = ?", orgID).
		Count(&assessmentCount).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var profile *models.ComplianceProfile
	var p models.ComplianceProfile
	if err := config.DB.Where("organization_id = ?", orgID).First(&p).Error; err == nil {
		profile = &p
	}

	saved, err := loadSectionToggles(orgID)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	stage := compliance.ResolveStage(assessmentCount > 0, profile, saved)

	resp := map[string]interface{}{
		"stage":         stage,
		"hasAssessment": assessmentCount > 0,
		"hasProfile":    profile != nil,
		"configured":    len(saved) > 0,
	}
	if profile != nil {
		resp["greenShieldActive"] = profile.GreenShieldActive
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
