package compliance

import (
	"testing"

	"p9e.in/prepsafe/models"
)

func cookingPage() models.LogPageConfig {
	return models.LogPageConfig{
		LogType: "cooking",
		Items: []models.LogItemConfig{
			{Key: "food_item", Label: "Food Item", Type: models.FieldText},
			coreTempItem(),
		},
	}
}

func sanitiserPage() models.LogPageConfig {
	return models.LogPageConfig{
		LogType: "sanitiser",
		Items: []models.LogItemConfig{
			{Key: "area", Label: "Area", Type: models.FieldText},
			sanitiserItem(),
		},
	}
}

func handwashPage() models.LogPageConfig {
	return models.LogPageConfig{
		LogType: "handwash",
		Items: []models.LogItemConfig{
			{Key: "passed", Label: "Check Passed", Type: models.FieldBoolean},
			{Key: "checked_by", Label: "Checked By", Type: models.FieldText},
		},
	}
}

func staffHealthPage() models.LogPageConfig {
	return models.LogPageConfig{
		LogType: "staff_health",
		Items: []models.LogItemConfig{
			{Key: "staff_name", Label: "Staff Name", Type: models.FieldText},
			{Key: "staff_fit_to_work", Label: "Fit To Work", Type: models.FieldBoolean},
			{Key: "staff_illness_details", Label: "Illness Details", Type: models.FieldText},
		},
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name            string
		page            models.LogPageConfig
		draft           Draft
		expectedOutcome Outcome
		expectedStatus  Status
	}{
		{
			name:            "empty draft blocked",
			page:            cookingPage(),
			draft:           Draft{Values: map[string]string{}},
			expectedOutcome: OutcomeMissingData,
			expectedStatus:  StatusNone,
		},
		{
			name:            "whitespace only values blocked",
			page:            cookingPage(),
			draft:           Draft{Values: map[string]string{"core_temp": "  "}, Notes: " "},
			expectedOutcome: OutcomeMissingData,
			expectedStatus:  StatusNone,
		},
		{
			name:            "notes alone unblock",
			page:            cookingPage(),
			draft:           Draft{Values: map[string]string{}, Notes: "fridge 3 defrosted"},
			expectedOutcome: OutcomeOK,
			expectedStatus:  StatusPass,
		},
		{
			name:            "passing reading",
			page:            cookingPage(),
			draft:           Draft{Values: map[string]string{"core_temp": "80"}},
			expectedOutcome: OutcomeOK,
			expectedStatus:  StatusPass,
		},
		{
			name:            "failing reading without corrective action",
			page:            cookingPage(),
			draft:           Draft{Values: map[string]string{"core_temp": "50"}},
			expectedOutcome: OutcomeNeedsCorrectiveAction,
			expectedStatus:  StatusFail,
		},
		{
			name: "failing reading with corrective action",
			page: cookingPage(),
			draft: Draft{
				Values:           map[string]string{"core_temp": "50"},
				CorrectiveAction: "reheated to 82C",
			},
			expectedOutcome: OutcomeOK,
			expectedStatus:  StatusFail,
		},
		{
			// warning never triggers the corrective-action gate
			name:            "warning reading passes validation",
			page:            sanitiserPage(),
			draft:           Draft{Values: map[string]string{"concentration": "120"}},
			expectedOutcome: OutcomeOK,
			expectedStatus:  StatusWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, status := ValidateDraft(tt.page, tt.draft)
			if outcome != tt.expectedOutcome || status != tt.expectedStatus {
				t.Errorf("ValidateDraft = (%q, %q), expected (%q, %q)",
					outcome, status, tt.expectedOutcome, tt.expectedStatus)
			}
		})
	}
}

func TestValidateDraftIdempotent(t *testing.T) {
	draft := Draft{Values: map[string]string{}}
	for i := 0; i < 2; i++ {
		outcome, _ := ValidateDraft(cookingPage(), draft)
		if outcome != OutcomeMissingData {
			t.Fatalf("attempt %d: outcome = %q, expected missing_data", i+1, outcome)
		}
	}
}

func TestBuildLogNumericPage(t *testing.T) {
	page := cookingPage()
	draft := Draft{
		Values: map[string]string{"food_item": "Chicken curry", "core_temp": "80"},
		Notes:  "batch of 12",
	}
	agg := AggregateStatus(page, draft.Values)
	row := BuildLog(page, draft, agg)

	if row.LogType != "cooking" {
		t.Errorf("LogType = %q, expected cooking", row.LogType)
	}
	if row.TemperatureReading == nil || *row.TemperatureReading != 80 {
		t.Errorf("TemperatureReading = %v, expected 80", row.TemperatureReading)
	}
	if row.SanitiserConcentrationPPM != nil {
		t.Errorf("SanitiserConcentrationPPM = %v, expected nil", row.SanitiserConcentrationPPM)
	}
	if row.IsWithinSafeZone == nil || !*row.IsWithinSafeZone {
		t.Errorf("IsWithinSafeZone = %v, expected true", row.IsWithinSafeZone)
	}
	if row.VisualCheckPassed != nil {
		t.Errorf("VisualCheckPassed = %v, expected nil on numeric page", row.VisualCheckPassed)
	}
	if row.Notes == nil || *row.Notes != "Food Item: Chicken curry | batch of 12" {
		t.Errorf("Notes = %v, expected joined label pairs plus free text", row.Notes)
	}
	if row.RequiresCorrectiveAction {
		t.Error("RequiresCorrectiveAction = true on a passing log")
	}
}

func TestBuildLogWarningIsWithinSafeZone(t *testing.T) {
	page := sanitiserPage()
	draft := Draft{Values: map[string]string{"concentration": "120"}}
	agg := AggregateStatus(page, draft.Values)
	if agg != StatusWarning {
		t.Fatalf("aggregate = %q, expected warning", agg)
	}

	row := BuildLog(page, draft, agg)
	if row.SanitiserConcentrationPPM == nil || *row.SanitiserConcentrationPPM != 120 {
		t.Errorf("SanitiserConcentrationPPM = %v, expected 120", row.SanitiserConcentrationPPM)
	}
	if row.IsWithinSafeZone == nil || !*row.IsWithinSafeZone {
		t.Errorf("IsWithinSafeZone = %v, expected true for a warning", row.IsWithinSafeZone)
	}
}

func TestBuildLogCorrectiveAction(t *testing.T) {
	page := cookingPage()

	t.Run("fail with corrective text", func(t *testing.T) {
		draft := Draft{
			Values:           map[string]string{"core_temp": "50"},
			CorrectiveAction: "discarded batch",
		}
		row := BuildLog(page, draft, StatusFail)
		if !row.RequiresCorrectiveAction {
			t.Error("RequiresCorrectiveAction = false, expected true")
		}
		if row.CorrectiveActionNotes == nil || *row.CorrectiveActionNotes != "discarded batch" {
			t.Errorf("CorrectiveActionNotes = %v, expected discarded batch", row.CorrectiveActionNotes)
		}
		if row.IsWithinSafeZone == nil || *row.IsWithinSafeZone {
			t.Errorf("IsWithinSafeZone = %v, expected false", row.IsWithinSafeZone)
		}
	})

	t.Run("fail saved anyway", func(t *testing.T) {
		// confirmed override: failing log committed with no corrective text
		draft := Draft{Values: map[string]string{"core_temp": "50"}}
		row := BuildLog(page, draft, StatusFail)
		if row.RequiresCorrectiveAction {
			t.Error("RequiresCorrectiveAction = true, expected false on override")
		}
		if row.CorrectiveActionNotes != nil {
			t.Errorf("CorrectiveActionNotes = %v, expected nil", row.CorrectiveActionNotes)
		}
	})

	t.Run("corrective text on a passing log ignored", func(t *testing.T) {
		draft := Draft{
			Values:           map[string]string{"core_temp": "80"},
			CorrectiveAction: "not needed",
		}
		row := BuildLog(page, draft, StatusPass)
		if row.RequiresCorrectiveAction || row.CorrectiveActionNotes != nil {
			t.Error("corrective action recorded on a passing log")
		}
	})
}

func TestBuildLogBooleanPage(t *testing.T) {
	page := handwashPage()

	t.Run("passed", func(t *testing.T) {
		draft := Draft{Values: map[string]string{"passed": "true", "checked_by": "Asha"}}
		agg := AggregateStatus(page, draft.Values)
		row := BuildLog(page, draft, agg)

		if row.VisualCheckPassed == nil || !*row.VisualCheckPassed {
			t.Errorf("VisualCheckPassed = %v, expected true", row.VisualCheckPassed)
		}
		if row.IsWithinSafeZone != nil {
			t.Errorf("IsWithinSafeZone = %v, expected nil on boolean page", row.IsWithinSafeZone)
		}
		if row.Notes == nil || *row.Notes != "Checked By: Asha" {
			t.Errorf("Notes = %v, expected Checked By: Asha", row.Notes)
		}
	})

	t.Run("not passed", func(t *testing.T) {
		draft := Draft{
			Values:           map[string]string{"passed": "false"},
			CorrectiveAction: "retrained on handwash steps",
		}
		row := BuildLog(page, draft, StatusFail)
		if row.VisualCheckPassed == nil || *row.VisualCheckPassed {
			t.Errorf("VisualCheckPassed = %v, expected false", row.VisualCheckPassed)
		}
		if !row.RequiresCorrectiveAction {
			t.Error("RequiresCorrectiveAction = false, expected true")
		}
	})
}

func TestBuildLogStaffHealthColumns(t *testing.T) {
	page := staffHealthPage()
	draft := Draft{Values: map[string]string{
		"staff_name":            "R. Gupta",
		"staff_fit_to_work":     "yes",
		"staff_illness_details": "",
	}}
	row := BuildLog(page, draft, AggregateStatus(page, draft.Values))

	if row.StaffName == nil || *row.StaffName != "R. Gupta" {
		t.Errorf("StaffName = %v, expected R. Gupta", row.StaffName)
	}
	if row.StaffFitToWork == nil || !*row.StaffFitToWork {
		t.Errorf("StaffFitToWork = %v, expected true", row.StaffFitToWork)
	}
	if row.StaffIllnessDetails != nil {
		t.Errorf("StaffIllnessDetails = %v, expected nil for blank value", row.StaffIllnessDetails)
	}
	if row.Notes != nil {
		t.Errorf("Notes = %v, expected nil (staff keys bypass notes)", row.Notes)
	}
}

func TestBuildLogFirstNumericFieldWins(t *testing.T) {
	page := models.LogPageConfig{
		LogType: "cooling",
		Items: []models.LogItemConfig{
			{Key: "start_temp", Label: "Start Temperature", Type: models.FieldTemperature},
			coolingEndTempItem(),
		},
	}
	draft := Draft{Values: map[string]string{"start_temp": "63", "end_temp": "4"}}
	row := BuildLog(page, draft, AggregateStatus(page, draft.Values))

	if row.TemperatureReading == nil || *row.TemperatureReading != 63 {
		t.Errorf("TemperatureReading = %v, expected first field 63", row.TemperatureReading)
	}
}
