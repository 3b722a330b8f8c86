package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"p9e.in/prepsafe/config"
	"p9e.in/prepsafe/middleware"
	"p9e.in/prepsafe/models"
	"p9e.in/prepsafe/pkg/compliance"
)

// orgFramework loads the framework config for an organization. Unknown
// orgs fall back to the default variant.
func orgFramework(orgID uuid.UUID) *config.FrameworkConfig {
	var org models.Organization
	if err := config.DB.First(&org, "id = ?", orgID).Error; err != nil {
		return config.GetFramework("")
	}
	return config.GetFramework(org.Framework)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// GetTodayLogs returns today's logs for one org/log type, optionally
// narrowed to a shift. Without a resolvable organization it returns an
// empty list rather than an error, so a fresh client renders an empty
// state instead of failing.
func GetTodayLogs(w http.ResponseWriter, r *http.Request) {
	logs := []models.ComplianceLog{}

	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(logs)
		return
	}

	query := config.DB.Where("organization_id = ? AND log_date = ?", orgID, today())
	if logType := r.URL.Query().Get("log_type"); logType != "" {
		query = query.Where("log_type = ?", logType)
	}
	if shift := r.URL.Query().Get("shift"); shift != "" {
		query = query.Where("shift = ?", shift)
	}

	if err := query.Order("created_at DESC").Find(&logs).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logs)
}

type createLogReq struct {
	LogType           string            `json:"logType"`
	Shift             string            `json:"shift"`
	Values            map[string]string `json:"values"`
	Notes             string            `json:"notes"`
	CorrectiveAction  string            `json:"correctiveAction"`
	OverrideConfirmed bool              `json:"overrideConfirmed"`

	// Optional inline photo (base64). Upload failure never blocks the log.
	PhotoBase64   string `json:"photoBase64,omitempty"`
	PhotoFilename string `json:"photoFilename,omitempty"`
}

type logValidationError struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}

// CreateLog is the two-phase submit: validate the draft, then commit.
// Validation failures return 422 with a machine-readable error code and
// persist nothing. A failing aggregate with no corrective action is a
// soft gate: the client either collects corrective text or re-submits
// with overrideConfirmed.
func CreateLog(w http.ResponseWriter, r *http.Request) {
	var req createLogReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		http.Error(w, "organization not resolved", http.StatusBadRequest)
		return
	}

	framework := orgFramework(orgID)
	page := framework.LogPage(req.LogType)
	if page == nil {
		http.Error(w, "unknown log type", http.StatusBadRequest)
		return
	}

	if req.Shift != "AM" && req.Shift != "PM" {
		http.Error(w, "shift must be AM or PM", http.StatusBadRequest)
		return
	}

	draft := compliance.Draft{
		Values:           req.Values,
		Notes:            req.Notes,
		CorrectiveAction: req.CorrectiveAction,
	}

	outcome, agg := compliance.ValidateDraft(*page, draft)
	switch outcome {
	case compliance.OutcomeMissingData:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(logValidationError{Error: "missing_data"})
		return
	case compliance.OutcomeNeedsCorrectiveAction:
		if !req.OverrideConfirmed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(logValidationError{Error: "needs_corrective_action", Status: string(agg)})
			return
		}
	}

	row := compliance.BuildLog(*page, draft, agg)
	row.OrganizationID = orgID
	row.LogDate = today()
	row.Shift = req.Shift
	if claims := middleware.GetClaims(r); claims != nil {
		row.CreatedByName = claims.Name
	}

	// Photo upload is best-effort: a storage failure is logged and the
	// log row is still committed without a photo URL.
	if req.PhotoBase64 != "" {
		if data, err := base64.StdEncoding.DecodeString(req.PhotoBase64); err == nil {
			filename := req.PhotoFilename
			if filename == "" {
				filename = req.LogType + ".jpg"
			}
			if url, err := storePhoto(data, filename); err == nil {
				row.PhotoURL = &url
			} else {
				log.Printf("photo upload failed for %s log: %v", req.LogType, err)
			}
		} else {
			log.Printf("photo decode failed for %s log: %v", req.LogType, err)
		}
	}

	if err := config.DB.Create(&row).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(row)
}

// GetLogCounts returns today's per-log-type submission counts for the
// dashboard tiles.
func GetLogCounts(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int64{}

	orgID := middleware.GetCurrentOrgID(r)
	if orgID == uuid.Nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(counts)
		return
	}

	type row struct {
		LogType string
		Count   int64
	}
	var rows []row
	if err := config.DB.Model(&models.ComplianceLog{}).
		Select("log_type, count(*) as count").
		Where("organization_id = ? AND log_date = ?", orgID, today()).
		Group("log_type").
		Scan(&rows).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	for _, c := range rows {
		counts[c.LogType] = c.Count
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}
