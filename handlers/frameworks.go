package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"p9e.in/prepsafe/middleware"
)

// GetFrameworkConfig returns the full static framework definition for the
// request's organization: labels, scoring model, default sections, tabs,
// wizard steps, and every log page schema. Clients render forms entirely
// from this payload.
func GetFrameworkConfig(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orgFramework(orgID))
}
