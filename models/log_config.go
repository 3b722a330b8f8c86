package models

// Field schema types for the per-log-type form definitions. These are
// defined statically per framework variant (see config/frameworks.go) and
// are immutable at runtime.

// FieldType tags one entry in a log form.
type FieldType string

const (
	FieldBoolean     FieldType = "boolean"
	FieldTemperature FieldType = "temperature"
	FieldText        FieldType = "text"
	FieldPPM         FieldType = "ppm"
	FieldSelect      FieldType = "select"
)

// IsNumeric reports whether the field carries a threshold-classified
// reading (temperature or ppm).
func (t FieldType) IsNumeric() bool {
	return t == FieldTemperature || t == FieldPPM
}

// Band is one inclusive numeric range; a nil bound is unbounded on that
// side. Thresholds are expressed as bands rather than closures so the
// evaluator stays total and testable.
type Band struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v float64) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

// Thresholds holds the pass and warn predicates for a numeric field.
// Pass is evaluated first; a value matching any pass band is "pass" even
// if it also sits in a warn band. Warn may be empty (no warning zone).
// A parsed value matching neither is "fail".
type Thresholds struct {
	Pass []Band `json:"pass"`
	Warn []Band `json:"warn,omitempty"`
}

// LogItemConfig is the static definition of one field within a log type.
type LogItemConfig struct {
	Key         string      `json:"key"`
	Label       string      `json:"label"`
	Type        FieldType   `json:"type"`
	Placeholder string      `json:"placeholder,omitempty"`
	Options     []string    `json:"options,omitempty"` // for boolean/select presentation
	Thresholds  *Thresholds `json:"thresholds,omitempty"`
}

// LogPageConfig is the static definition of one complete log type
// (e.g. "Cooking Log", "Sanitiser Check"). Item keys are unique within
// one config.
type LogPageConfig struct {
	LogType          string          `json:"logType"` // machine key persisted on each log row
	Title            string          `json:"title"`
	Icon             string          `json:"icon,omitempty"`
	Color            string          `json:"color,omitempty"`
	Items            []LogItemConfig `json:"items"`
	HasPhoto         bool            `json:"hasPhoto,omitempty"`
	HasDocUpload     bool            `json:"hasDocUpload,omitempty"`
	EmptyTitle       string          `json:"emptyTitle,omitempty"`
	EmptyDescription string          `json:"emptyDescription,omitempty"`
}

// HasNumericField reports whether the log type carries at least one
// temperature/ppm field; it decides which outcome flag a submitted row
// populates (is_within_safe_zone vs visual_check_passed).
func (p LogPageConfig) HasNumericField() bool {
	for _, item := range p.Items {
		if item.Type.IsNumeric() {
			return true
		}
	}
	return false
}

// FirstBooleanItem returns the "check passed" toggle for log types with
// no numeric field, or nil when the page has no boolean item.
func (p LogPageConfig) FirstBooleanItem() *LogItemConfig {
	for i := range p.Items {
		if p.Items[i].Type == FieldBoolean {
			return &p.Items[i]
		}
	}
	return nil
}

// Ptr is a convenience for building threshold bands in static config.
func Ptr(v float64) *float64 { return &v }
