// Package compliance implements the food-safety scoring core: threshold
// evaluation of numeric readings, aggregation into a single log status,
// section-gated tab visibility, onboarding stage resolution, and the
// two-phase submit used by the daily log form. Everything in this package
// is pure — no I/O, no clock, no database.
package compliance

import (
	"math"
	"strconv"
	"strings"

	"p9e.in/prepsafe/models"
)

// Status classifies one reading, or one whole log submission.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
	StatusNone    Status = "" // not classifiable (boolean field, no thresholds, unparseable)
)

// ComputeStatus classifies a raw field value against the field's
// thresholds. Boolean fields are never classified. Pass bands are checked
// before warn bands, so a value inside both is "pass". A parseable value
// matching neither band set is "fail".
func ComputeStatus(item models.LogItemConfig, rawValue string) Status {
	if item.Type == models.FieldBoolean || item.Thresholds == nil {
		return StatusNone
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return StatusNone
	}

	for _, band := range item.Thresholds.Pass {
		if band.Contains(v) {
			return StatusPass
		}
	}
	for _, band := range item.Thresholds.Warn {
		if band.Contains(v) {
			return StatusWarning
		}
	}
	return StatusFail
}

// AggregateStatus derives the single pass/warning/fail classification for
// one log submission.
//
// Log types without a temperature/ppm field aggregate from the "check
// passed" boolean toggle alone. Otherwise every numeric field with a
// non-empty value is evaluated; any fail makes the aggregate fail
// immediately, any warning (with no fail) makes it warning, and blank
// fields are skipped entirely — a form with all numeric fields left blank
// aggregates to pass.
func AggregateStatus(page models.LogPageConfig, values map[string]string) Status {
	if !page.HasNumericField() {
		if toggle := page.FirstBooleanItem(); toggle != nil {
			if isTruthy(values[toggle.Key]) {
				return StatusPass
			}
			return StatusFail
		}
		return StatusPass
	}

	agg := StatusPass
	for _, item := range page.Items {
		if !item.Type.IsNumeric() {
			continue
		}
		raw := strings.TrimSpace(values[item.Key])
		if raw == "" {
			continue
		}
		switch ComputeStatus(item, raw) {
		case StatusFail:
			return StatusFail
		case StatusWarning:
			agg = StatusWarning
		}
	}
	return agg
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "1", "passed":
		return true
	}
	return false
}
