package compliance

import (
	"math"
	"strconv"
	"strings"

	"p9e.in/prepsafe/models"
)

// Well-known staff-health field keys. Values under these keys land in the
// dedicated staff columns of the log row instead of the notes string.
const (
	staffNameKey    = "staff_name"
	staffFitKey     = "staff_fit_to_work"
	staffIllnessKey = "staff_illness_details"
)

// Draft is the in-memory state of one log form before submit. It is owned
// exclusively by the submitting request; nothing else reads it.
type Draft struct {
	Values           map[string]string `json:"values"`
	Notes            string            `json:"notes"`
	CorrectiveAction string            `json:"correctiveAction"`
}

// Outcome is the result of the validation phase of a submit.
type Outcome string

const (
	// OutcomeOK means the draft can be committed as-is.
	OutcomeOK Outcome = "ok"

	// OutcomeMissingData blocks the submit: no field has a value and the
	// notes are empty. Nothing may be persisted.
	OutcomeMissingData Outcome = "missing_data"

	// OutcomeNeedsCorrectiveAction is a soft gate: the aggregate status is
	// fail and no corrective action was entered. The caller must either go
	// back or explicitly confirm saving anyway — the commit phase accepts
	// either.
	OutcomeNeedsCorrectiveAction Outcome = "needs_corrective_action"
)

// ValidateDraft runs the validation phase and returns the outcome together
// with the aggregate status the commit phase will persist. It never
// mutates the draft, so calling it twice on the same empty draft yields
// the same blocked outcome and zero inserts.
func ValidateDraft(page models.LogPageConfig, d Draft) (Outcome, Status) {
	filled := strings.TrimSpace(d.Notes) != ""
	for _, v := range d.Values {
		if strings.TrimSpace(v) != "" {
			filled = true
			break
		}
	}
	if !filled {
		return OutcomeMissingData, StatusNone
	}

	agg := AggregateStatus(page, d.Values)
	if agg == StatusFail && strings.TrimSpace(d.CorrectiveAction) == "" {
		return OutcomeNeedsCorrectiveAction, agg
	}
	return OutcomeOK, agg
}

// BuildLog constructs the row to insert for a validated draft. The caller
// fills in identity (org, log type, date, shift, author) and the photo URL
// afterward.
//
// Mapping rules:
//
//   - the first temperature field with a parseable value becomes
//     temperature_reading; the first ppm field likewise,
//   - non-numeric, non-boolean field label:value pairs plus the free-text
//     notes are joined with " | " into notes (staff-health keys excepted;
//     they fill the dedicated staff columns),
//   - is_within_safe_zone is set only for log types with a numeric field,
//     and counts warning as within the safe zone; visual_check_passed is
//     set only for log types without one,
//   - requires_corrective_action is true only when the aggregate is fail
//     AND a corrective action was entered. A confirmed "save anyway"
//     override therefore stores false with null corrective notes.
func BuildLog(page models.LogPageConfig, d Draft, agg Status) models.ComplianceLog {
	row := models.ComplianceLog{LogType: page.LogType}

	hasNumeric := page.HasNumericField()
	var noteParts []string

	for _, item := range page.Items {
		raw := strings.TrimSpace(d.Values[item.Key])
		if raw == "" {
			continue
		}

		switch {
		case item.Type == models.FieldTemperature:
			if row.TemperatureReading == nil {
				if v, ok := parseReading(raw); ok {
					row.TemperatureReading = &v
				}
			}
		case item.Type == models.FieldPPM:
			if row.SanitiserConcentrationPPM == nil {
				if v, ok := parseReading(raw); ok {
					row.SanitiserConcentrationPPM = &v
				}
			}
		case item.Key == staffNameKey:
			name := raw
			row.StaffName = &name
		case item.Key == staffFitKey:
			fit := isTruthy(raw)
			row.StaffFitToWork = &fit
		case item.Key == staffIllnessKey:
			details := raw
			row.StaffIllnessDetails = &details
		case item.Type == models.FieldBoolean:
			// toggle values land in visual_check_passed, not notes
		default:
			noteParts = append(noteParts, item.Label+": "+raw)
		}
	}

	if free := strings.TrimSpace(d.Notes); free != "" {
		noteParts = append(noteParts, free)
	}
	if len(noteParts) > 0 {
		notes := strings.Join(noteParts, " | ")
		row.Notes = &notes
	}

	if hasNumeric {
		safe := agg == StatusPass || agg == StatusWarning
		row.IsWithinSafeZone = &safe
	} else if toggle := page.FirstBooleanItem(); toggle != nil {
		passed := isTruthy(d.Values[toggle.Key])
		row.VisualCheckPassed = &passed
	}

	if corrective := strings.TrimSpace(d.CorrectiveAction); agg == StatusFail && corrective != "" {
		row.RequiresCorrectiveAction = true
		row.CorrectiveActionNotes = &corrective
	}

	return row
}

func parseReading(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
