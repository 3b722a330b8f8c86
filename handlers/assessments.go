package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/models"
)

// CreateAssessment records a self-audit run. The first assessment moves
// the workflow stage past "audit".
func CreateAssessment(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	var item models.SelfAssessment
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.MaxScore <= 0 || item.Score < 0 || item.Score > item.MaxScore {
		http.Error(w, "invalid score", http.StatusBadRequest)
		return
	}

	item.ID = uuid.Nil
	item.OrganizationID = orgID
	item.ScoringModel = orgFramework(orgID).ScoringModel
	if time.Time(item.TakenAt).IsZero() {
		item.TakenAt = models.JSONTime(time.Now())
	}
	if claims := middleware.GetClaims(r); claims != nil && item.TakenBy == "" {
		item.TakenBy = claims.Name
	}

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// GetLatestAssessment returns the organization's most recent self-audit,
// or 404 when none has been taken.
func GetLatestAssessment(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	var item models.SelfAssessment
	if err := config.DB.Where("organization_id = ?", orgID).
		Order("taken_at DESC").First(&item).Error; err != nil {
		http.Error(w, "no assessment recorded", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}
