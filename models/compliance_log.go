package models

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceLog is one submitted food-safety check: a cooking temperature,
// a sanitiser reading, a visual cleaning check, a staff fitness record.
// Rows are insert-only from the form path; they are never mutated or
// deleted by this layer. Two devices submitting for the same org/date/
// shift/log type both get a row — each is an independent observation.
//
// Exactly one of IsWithinSafeZone (derived from numeric thresholds) and
// VisualCheckPassed (derived from a boolean toggle) is non-null, depending
// on whether the log type carries a temperature/ppm field.
type ComplianceLog struct {
	ID             uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;index;not null" json:"orgId"`
	Organization   Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	LogType        string       `gorm:"size:50;index;not null" json:"logType"`
	LogDate        string       `gorm:"type:date;index;not null" json:"logDate"` // calendar date, "2006-01-02"
	Shift          string       `gorm:"size:2;not null" json:"shift"`            // "AM" or "PM"

	// Readings: at most one populated per row, depending on log type.
	TemperatureReading        *float64 `gorm:"column:temperature_reading" json:"temperatureReading,omitempty"`
	SanitiserConcentrationPPM *float64 `gorm:"column:sanitiser_concentration_ppm" json:"sanitiserConcentrationPpm,omitempty"`

	IsWithinSafeZone         *bool   `gorm:"column:is_within_safe_zone" json:"isWithinSafeZone"`
	VisualCheckPassed        *bool   `gorm:"column:visual_check_passed" json:"visualCheckPassed"`
	RequiresCorrectiveAction bool    `gorm:"column:requires_corrective_action;not null;default:false" json:"requiresCorrectiveAction"`
	CorrectiveActionNotes    *string `gorm:"column:corrective_action_notes;type:text" json:"correctiveActionNotes"`

	Notes    *string `gorm:"type:text" json:"notes"`
	PhotoURL *string `gorm:"column:photo_url;size:500" json:"photoUrl"`

	// Staff-health specialization
	StaffName           *string `gorm:"column:staff_name;size:100" json:"staffName,omitempty"`
	StaffFitToWork      *bool   `gorm:"column:staff_fit_to_work" json:"staffFitToWork,omitempty"`
	StaffIllnessDetails *string `gorm:"column:staff_illness_details;type:text" json:"staffIllnessDetails,omitempty"`

	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	CreatedByName string    `gorm:"column:created_by_name;size:100" json:"createdByName"`
}

// TableName specifies the table name for ComplianceLog
func (ComplianceLog) TableName() string {
	return "daily_compliance_logs"
}
