package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/pkg/compliance"
)

// GetTabs returns the compliance tab bar for the calling user in the
// request's organization: section-gated, setup-gated, route-deduplicated,
// and reordered by the user's saved preference.
func GetTabs(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	framework := orgFramework(orgID)

	saved, err := loadSectionToggles(orgID)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	toggles := effectiveSections(framework, saved)

	available := compliance.AvailableTabs(framework.Tabs, toggles, middleware.CanManageSetup(r))

	// honor the user's saved ordering, appending newly available keys
	order := compliance.TabKeys(available)
	if savedOrder := loadTabOrder(r); len(savedOrder) > 0 {
		order = compliance.ApplyTabOrder(order, savedOrder)
	}

	byKey := make(map[string]compliance.Tab, len(available))
	for _, tab := range available {
		byKey[tab.Key] = tab
	}
	tabs := make([]compliance.Tab, 0, len(order))
	for _, key := range order {
		tabs = append(tabs, byKey[key])
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"tabs": tabs,
		"keys": order,
	})
}
