package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/models"
)

// GetLogHistory returns recent logs for one log type grouped by calendar
// date, newest date first within the map values. Defaults to the last 7
// days and at most 50 rows. A read failure degrades to an empty result:
// the history view is informational and must not break the form.
func GetLogHistory(w http.ResponseWriter, r *http.Request) {
	grouped := map[string][]models.ComplianceLog{}

	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(grouped)
		return
	}

	logType := r.URL.Query().Get("log_type")
	if logType == "" {
		http.Error(w, "log_type parameter required", http.StatusBadRequest)
		return
	}

	days := 7
	if d, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && d > 0 && d <= 90 {
		days = d
	}
	limit := 50
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 500 {
		limit = l
	}

	from := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query := config.DB.
		Where("organization_id = ? AND log_type = ? AND log_date >= ?", orgID, logType, from)

	// optional search across staff name, notes and author
	if q := r.URL.Query().Get("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("staff_name ILIKE ? OR notes ILIKE ? OR created_by_name ILIKE ?",
			pattern, pattern, pattern)
	}

	var logs []models.ComplianceLog
	if err := query.Order("log_date DESC, created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		log.Printf("history read failed for org %s type %s: %v", orgID, logType, err)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(grouped)
		return
	}

	for _, l := range logs {
		grouped[l.LogDate] = append(grouped[l.LogDate], l)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(grouped)
}
