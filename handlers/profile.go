package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/models"
)

// GetProfile returns the organization's compliance profile, or 404 when
// compliance mode has not been enabled yet.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	var profile models.ComplianceProfile
	if err := config.DB.Where("organization_id = ?", orgID).First(&profile).Error; err != nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpsertProfile creates or updates the organization's compliance profile.
// Creating the profile is what moves the workflow stage past "enable".
func UpsertProfile(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	var req models.ComplianceProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var existing models.ComplianceProfile
	err := config.DB.Where("organization_id = ?", orgID).First(&existing).Error
	if err != nil {
		req.ID = uuid.Nil
		req.OrganizationID = orgID
		if err := config.DB.Create(&req).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(req)
		return
	}

	// identity is immutable on update
	req.ID = existing.ID
	req.OrganizationID = orgID
	req.CreatedAt = existing.CreatedAt
	if err := config.DB.Save(&req).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(req)
}

// GetSupervisors lists the organization's food safety supervisors, primary
// first.
func GetSupervisors(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	supervisors := []models.FoodSafetySupervisor{}
	if err := config.DB.Where("organization_id = ?", orgID).
		Order("is_primary DESC, created_at ASC").
		Find(&supervisors).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(supervisors)
}

// CreateSupervisor registers a supervisor for the organization.
func CreateSupervisor(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	var item models.FoodSafetySupervisor
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	item.ID = uuid.Nil
	item.OrganizationID = orgID
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// UpdateSupervisor edits a supervisor owned by the organization.
func UpdateSupervisor(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	var item models.FoodSafetySupervisor
	if err := config.DB.Where("id = ? AND organization_id = ?", id, orgID).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	// scoping cannot be changed
	item.OrganizationID = orgID
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteSupervisor removes a supervisor owned by the organization.
func DeleteSupervisor(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	result := config.DB.Where("id = ? AND organization_id = ?", id, orgID).Delete(&models.FoodSafetySupervisor{})
	if result.Error != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
