package compliance

import (
	"testing"

	"p9e.in/prepsafe/models"
)

func coreTempItem() models.LogItemConfig {
	// pass: v >= 75
	return models.LogItemConfig{
		Key:   "core_temp",
		Label: "Core Temperature",
		Type:  models.FieldTemperature,
		Thresholds: &models.Thresholds{
			Pass: []models.Band{{Min: models.Ptr(75)}},
		},
	}
}

func coolingEndTempItem() models.LogItemConfig {
	// pass: v <= 5, warn: 5 < v <= 21 (pass checked first, so 5 passes)
	return models.LogItemConfig{
		Key:   "end_temp",
		Label: "End Temperature",
		Type:  models.FieldTemperature,
		Thresholds: &models.Thresholds{
			Pass: []models.Band{{Max: models.Ptr(5)}},
			Warn: []models.Band{{Min: models.Ptr(5), Max: models.Ptr(21)}},
		},
	}
}

func sanitiserItem() models.LogItemConfig {
	// pass: 150..400 ppm, warn: 100..150 ppm
	return models.LogItemConfig{
		Key:   "concentration",
		Label: "Concentration",
		Type:  models.FieldPPM,
		Thresholds: &models.Thresholds{
			Pass: []models.Band{{Min: models.Ptr(150), Max: models.Ptr(400)}},
			Warn: []models.Band{{Min: models.Ptr(100), Max: models.Ptr(150)}},
		},
	}
}

func dispatchTempItem() models.LogItemConfig {
	// disjoint pass bands: hot-held >= 60 or chilled <= 5
	return models.LogItemConfig{
		Key:   "dispatch_temp",
		Label: "Dispatch Temperature",
		Type:  models.FieldTemperature,
		Thresholds: &models.Thresholds{
			Pass: []models.Band{{Min: models.Ptr(60)}, {Max: models.Ptr(5)}},
		},
	}
}

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name     string
		item     models.LogItemConfig
		raw      string
		expected Status
	}{
		{"cooking pass at threshold", coreTempItem(), "75", StatusPass},
		{"cooking pass above threshold", coreTempItem(), "80", StatusPass},
		{"cooking fail below threshold", coreTempItem(), "50", StatusFail},
		{"cooking fail just below", coreTempItem(), "74.9", StatusFail},

		// pass is checked before warn: 5 sits in both bands and passes
		{"cooling boundary prefers pass", coolingEndTempItem(), "5", StatusPass},
		{"cooling warn zone", coolingEndTempItem(), "12", StatusWarning},
		{"cooling warn upper bound", coolingEndTempItem(), "21", StatusWarning},
		{"cooling fail above warn", coolingEndTempItem(), "22", StatusFail},

		{"sanitiser pass", sanitiserItem(), "200", StatusPass},
		{"sanitiser warning", sanitiserItem(), "120", StatusWarning},
		{"sanitiser boundary prefers pass", sanitiserItem(), "150", StatusPass},
		{"sanitiser fail low", sanitiserItem(), "50", StatusFail},
		{"sanitiser fail high", sanitiserItem(), "450", StatusFail},

		{"disjoint pass hot", dispatchTempItem(), "65", StatusPass},
		{"disjoint pass chilled", dispatchTempItem(), "3", StatusPass},
		{"disjoint fail between", dispatchTempItem(), "50", StatusFail},

		{"unparseable value", coreTempItem(), "hot", StatusNone},
		{"empty value", coreTempItem(), "", StatusNone},
		{"whitespace padded", coreTempItem(), " 80 ", StatusPass},
		{"NaN rejected", coreTempItem(), "NaN", StatusNone},
		{"infinity rejected", coreTempItem(), "+Inf", StatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStatus(tt.item, tt.raw); got != tt.expected {
				t.Errorf("ComputeStatus(%s, %q) = %q, expected %q",
					tt.item.Key, tt.raw, got, tt.expected)
			}
		})
	}
}

func TestComputeStatusBooleanNeverClassified(t *testing.T) {
	item := models.LogItemConfig{
		Key:  "passed",
		Type: models.FieldBoolean,
		// thresholds on a boolean are ignored even if misconfigured
		Thresholds: &models.Thresholds{Pass: []models.Band{{}}},
	}
	for _, raw := range []string{"true", "false", "75", "", "garbage"} {
		if got := ComputeStatus(item, raw); got != StatusNone {
			t.Errorf("ComputeStatus(boolean, %q) = %q, expected none", raw, got)
		}
	}
}

func TestComputeStatusNoThresholds(t *testing.T) {
	item := models.LogItemConfig{Key: "note_temp", Type: models.FieldTemperature}
	if got := ComputeStatus(item, "80"); got != StatusNone {
		t.Errorf("ComputeStatus without thresholds = %q, expected none", got)
	}
}

func TestAggregateStatus(t *testing.T) {
	numericPage := models.LogPageConfig{
		LogType: "receiving",
		Items: []models.LogItemConfig{
			{Key: "item", Label: "Item", Type: models.FieldText},
			dispatchTempItem(),
			coolingEndTempItem(),
		},
	}
	booleanPage := models.LogPageConfig{
		LogType: "handwash",
		Items: []models.LogItemConfig{
			{Key: "passed", Label: "Check Passed", Type: models.FieldBoolean},
			{Key: "area", Label: "Area", Type: models.FieldText},
		},
	}

	tests := []struct {
		name     string
		page     models.LogPageConfig
		values   map[string]string
		expected Status
	}{
		{
			// fail dominance: one fail beats another field's pass
			name:     "fail dominates pass",
			page:     numericPage,
			values:   map[string]string{"dispatch_temp": "50", "end_temp": "3"},
			expected: StatusFail,
		},
		{
			name:     "warning when no fail",
			page:     numericPage,
			values:   map[string]string{"dispatch_temp": "65", "end_temp": "12"},
			expected: StatusWarning,
		},
		{
			name:     "all pass",
			page:     numericPage,
			values:   map[string]string{"dispatch_temp": "65", "end_temp": "3"},
			expected: StatusPass,
		},
		{
			// blank numeric fields are skipped, not failed
			name:     "blank fields skipped",
			page:     numericPage,
			values:   map[string]string{"dispatch_temp": "", "end_temp": "3"},
			expected: StatusPass,
		},
		{
			name:     "all blank aggregates pass",
			page:     numericPage,
			values:   map[string]string{},
			expected: StatusPass,
		},
		{
			name:     "boolean page passed",
			page:     booleanPage,
			values:   map[string]string{"passed": "true"},
			expected: StatusPass,
		},
		{
			name:     "boolean page not passed",
			page:     booleanPage,
			values:   map[string]string{"passed": "false"},
			expected: StatusFail,
		},
		{
			name:     "boolean page toggle missing",
			page:     booleanPage,
			values:   map[string]string{"area": "kitchen"},
			expected: StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateStatus(tt.page, tt.values); got != tt.expected {
				t.Errorf("AggregateStatus(%s) = %q, expected %q", tt.name, got, tt.expected)
			}
		})
	}
}
