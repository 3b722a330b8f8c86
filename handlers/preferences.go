package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/models"
)

const tabOrderKey = "tab_order"

// loadTabOrder returns the caller's saved tab ordering, or nil when none
// is saved or the stored value is malformed.
func loadTabOrder(r *http.Request) []string {
	userID := middleware.GetUserID(r)
	if userID == "" {
		return nil
	}

	var pref models.UserPreference
	if err := config.DB.Where("user_id = ? AND key = ?", userID, tabOrderKey).First(&pref).Error; err != nil {
		return nil
	}

	var order []string
	if err := json.Unmarshal(pref.Value, &order); err != nil {
		return nil
	}
	return order
}

// GetTabOrder returns the caller's saved tab ordering (empty when unset).
func GetTabOrder(w http.ResponseWriter, r *http.Request) {
	order := loadTabOrder(r)
	if order == nil {
		order = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"tabOrder": order})
}

type tabOrderReq struct {
	TabOrder []string `json:"tabOrder"`
}

// SaveTabOrder upserts the caller's tab ordering preference.
func SaveTabOrder(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req tabOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	value, err := json.Marshal(req.TabOrder)
	if err != nil {
		http.Error(w, "invalid tab order", http.StatusBadRequest)
		return
	}

	// the row must be keyed by the authenticated user, not a DB lookup
	// that can fall back to a zero-value user
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var pref models.UserPreference
	err = config.DB.Where("user_id = ? AND key = ?", userID, tabOrderKey).First(&pref).Error
	if err != nil {
		pref = models.UserPreference{
			UserID: userID,
			Key:    tabOrderKey,
			Value:  datatypes.JSON(value),
		}
		if err := config.DB.Create(&pref).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	} else {
		if err := config.DB.Model(&pref).Update("value", datatypes.JSON(value)).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"tabOrder": req.TabOrder})
}
