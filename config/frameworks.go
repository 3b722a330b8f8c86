package config

import (
	"p9e.in/prepsafe/models"
	"p9e.in/prepsafe/pkg/compliance"
)

// WizardStep is one screen of the compliance setup wizard.
type WizardStep struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Fields []string `json:"fields,omitempty"`
}

// FrameworkConfig is the full static definition of one regulatory variant:
// labels, scoring model, default sections, the ordered tab list, wizard
// steps, and every log page schema. Defined at startup, immutable after.
type FrameworkConfig struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	AccentColor string `json:"accentColor"`

	// ScoringModel selects how self-assessment results are presented:
	// "percentage" or "stars".
	ScoringModel string `json:"scoringModel"`

	// LicenceFieldKey names the primary entry in a profile's dynamic
	// licence fields for this variant.
	LicenceFieldKey string `json:"licenceFieldKey"`
	LicenceLabel    string `json:"licenceLabel"`

	// DefaultSections are the toggle values assumed for section keys that
	// have no explicit row saved for the organization.
	DefaultSections map[string]bool `json:"defaultSections"`

	Tabs        []compliance.Tab       `json:"tabs"`
	WizardSteps []WizardStep           `json:"wizardSteps"`
	LogPages    []models.LogPageConfig `json:"logPages"`
}

// LogPage returns the page config for a log type, or nil if the variant
// does not define it.
func (f *FrameworkConfig) LogPage(logType string) *models.LogPageConfig {
	for i := range f.LogPages {
		if f.LogPages[i].LogType == logType {
			return &f.LogPages[i]
		}
	}
	return nil
}

// GetFramework resolves a variant key to its config, falling back to the
// default variant for unknown or empty keys.
func GetFramework(key string) *FrameworkConfig {
	if f, ok := frameworks[key]; ok {
		return f
	}
	return frameworks[DefaultFramework]
}

// FrameworkKeys lists the registered variant keys.
func FrameworkKeys() []string {
	keys := make([]string, 0, len(frameworks))
	for k := range frameworks {
		keys = append(keys, k)
	}
	return keys
}

const DefaultFramework = "fssai"

var frameworks = map[string]*FrameworkConfig{
	"fssai":          fssaiFramework(),
	"food_standards": foodStandardsFramework(),
	"home_cook":      homeCookFramework(),
}

// Section keys shared across variants.
const (
	SectionTemperatureLogs  = "temperature_logs"
	SectionCleaningSchedule = "cleaning_schedule"
	SectionStaffHealth      = "staff_health"
	SectionPestControl      = "pest_control"
	SectionHACCP            = "haccp"
	SectionReceiving        = "receiving"
	SectionSanitiser        = "sanitiser_checks"
)

// complianceTabs is the framework-ordered tab list. The temperature and
// temp_log keys alias the same route: temp_log predates the rename and is
// kept so saved tab orders keep working.
func complianceTabs() []compliance.Tab {
	return []compliance.Tab{
		{Key: "dashboard", Route: "/compliance", Title: "Dashboard", Icon: "home"},
		{Key: "temperature", Route: "/compliance/temperature", Title: "Temperature Logs", Icon: "thermometer", SectionKey: SectionTemperatureLogs},
		{Key: "temp_log", Route: "/compliance/temperature", Title: "Temperature Logs", Icon: "thermometer", SectionKey: SectionTemperatureLogs},
		{Key: "cooking", Route: "/compliance/cooking", Title: "Cooking", Icon: "flame", SectionKey: SectionTemperatureLogs},
		{Key: "cooling", Route: "/compliance/cooling", Title: "Cooling", Icon: "snowflake", SectionKey: SectionTemperatureLogs},
		{Key: "receiving", Route: "/compliance/receiving", Title: "Receiving", Icon: "truck", SectionKey: SectionReceiving},
		{Key: "sanitiser", Route: "/compliance/sanitiser", Title: "Sanitiser", Icon: "droplet", SectionKey: SectionSanitiser},
		{Key: "cleaning", Route: "/compliance/cleaning", Title: "Cleaning", Icon: "sparkles", SectionKey: SectionCleaningSchedule},
		{Key: "handwash", Route: "/compliance/handwash", Title: "Handwash", Icon: "hand", SectionKey: SectionStaffHealth},
		{Key: "staff_health", Route: "/compliance/staff-health", Title: "Staff Health", Icon: "heart", SectionKey: SectionStaffHealth},
		{Key: "pest_control", Route: "/compliance/pest-control", Title: "Pest Control", Icon: "bug", SectionKey: SectionPestControl},
		{Key: "haccp", Route: "/compliance/haccp", Title: "HACCP", Icon: "clipboard", SectionKey: SectionHACCP},
		{Key: "temp_setup", Route: "/compliance/temperature/setup", Title: "Temperature Setup", Icon: "settings", RequiresSetup: true},
		{Key: "receiving_setup", Route: "/compliance/receiving/setup", Title: "Receiving Setup", Icon: "settings", RequiresSetup: true},
	}
}

func standardLogPages() []models.LogPageConfig {
	return []models.LogPageConfig{
		{
			LogType: "cooking",
			Title:   "Cooking Log",
			Icon:    "flame",
			Color:   "#E8590C",
			Items: []models.LogItemConfig{
				{Key: "food_item", Label: "Food Item", Type: models.FieldText, Placeholder: "e.g. Chicken curry"},
				{Key: "core_temp", Label: "Core Temperature (°C)", Type: models.FieldTemperature,
					Thresholds: &models.Thresholds{Pass: []models.Band{{Min: models.Ptr(75)}}}},
			},
			HasPhoto:         true,
			EmptyTitle:       "No cooking logs today",
			EmptyDescription: "Record a core temperature for each cooked batch.",
		},
		{
			LogType: "cooling",
			Title:   "Cooling Log",
			Icon:    "snowflake",
			Color:   "#1971C2",
			Items: []models.LogItemConfig{
				{Key: "food_item", Label: "Food Item", Type: models.FieldText},
				{Key: "start_temp", Label: "Start Temperature (°C)", Type: models.FieldTemperature},
				{Key: "end_temp", Label: "End Temperature (°C)", Type: models.FieldTemperature,
					Thresholds: &models.Thresholds{
						Pass: []models.Band{{Max: models.Ptr(5)}},
						Warn: []models.Band{{Min: models.Ptr(5), Max: models.Ptr(21)}},
					}},
			},
			EmptyTitle:       "No cooling logs today",
			EmptyDescription: "Record cooling start and end temperatures.",
		},
		{
			LogType: "fridge",
			Title:   "Fridge & Freezer",
			Icon:    "thermometer",
			Color:   "#0C8599",
			Items: []models.LogItemConfig{
				{Key: "unit", Label: "Unit", Type: models.FieldText, Placeholder: "e.g. Walk-in fridge 1"},
				{Key: "temp", Label: "Temperature (°C)", Type: models.FieldTemperature,
					Thresholds: &models.Thresholds{
						Pass: []models.Band{{Max: models.Ptr(5)}},
						Warn: []models.Band{{Min: models.Ptr(5), Max: models.Ptr(8)}},
					}},
			},
			EmptyTitle:       "No fridge checks today",
			EmptyDescription: "Record each unit's temperature twice daily.",
		},
		{
			LogType: "hot_holding",
			Title:   "Hot Holding",
			Icon:    "flame",
			Color:   "#E03131",
			Items: []models.LogItemConfig{
				{Key: "food_item", Label: "Food Item", Type: models.FieldText},
				{Key: "temp", Label: "Holding Temperature (°C)", Type: models.FieldTemperature,
					Thresholds: &models.Thresholds{Pass: []models.Band{{Min: models.Ptr(60)}}}},
			},
			EmptyTitle:       "No hot holding checks today",
			EmptyDescription: "Hot-held food must stay at or above 60°C.",
		},
		{
			LogType: "receiving",
			Title:   "Goods Receiving",
			Icon:    "truck",
			Color:   "#5F3DC4",
			Items: []models.LogItemConfig{
				{Key: "supplier", Label: "Supplier", Type: models.FieldText},
				{Key: "item", Label: "Item", Type: models.FieldText},
				// hot deliveries >= 60, chilled <= 5; anything between fails
				{Key: "delivery_temp", Label: "Delivery Temperature (°C)", Type: models.FieldTemperature,
					Thresholds: &models.Thresholds{Pass: []models.Band{{Min: models.Ptr(60)}, {Max: models.Ptr(5)}}}},
				{Key: "packaging_ok", Label: "Packaging Intact", Type: models.FieldBoolean},
			},
			HasPhoto:         true,
			EmptyTitle:       "No deliveries logged today",
			EmptyDescription: "Check every delivery's temperature and packaging.",
		},
		{
			LogType: "sanitiser",
			Title:   "Sanitiser Check",
			Icon:    "droplet",
			Color:   "#2F9E44",
			Items: []models.LogItemConfig{
				{Key: "area", Label: "Area", Type: models.FieldText, Placeholder: "e.g. Prep bench"},
				{Key: "concentration", Label: "Concentration (ppm)", Type: models.FieldPPM,
					Thresholds: &models.Thresholds{
						Pass: []models.Band{{Min: models.Ptr(150), Max: models.Ptr(400)}},
						Warn: []models.Band{{Min: models.Ptr(100), Max: models.Ptr(150)}},
					}},
			},
			EmptyTitle:       "No sanitiser checks today",
			EmptyDescription: "Test sanitiser concentration at each station.",
		},
		{
			LogType: "cleaning",
			Title:   "Cleaning Check",
			Icon:    "sparkles",
			Color:   "#1098AD",
			Items: []models.LogItemConfig{
				{Key: "completed", Label: "Schedule Completed", Type: models.FieldBoolean},
				{Key: "area", Label: "Area", Type: models.FieldText},
				{Key: "checked_by", Label: "Checked By", Type: models.FieldText},
			},
			HasPhoto:         true,
			EmptyTitle:       "No cleaning checks today",
			EmptyDescription: "Sign off the cleaning schedule for each area.",
		},
		{
			LogType: "handwash",
			Title:   "Handwash Station",
			Icon:    "hand",
			Color:   "#1864AB",
			Items: []models.LogItemConfig{
				{Key: "passed", Label: "Station Stocked & Working", Type: models.FieldBoolean},
				{Key: "station", Label: "Station", Type: models.FieldText},
			},
			EmptyTitle:       "No handwash checks today",
			EmptyDescription: "Confirm soap, towels and hot water at each station.",
		},
		{
			LogType: "staff_health",
			Title:   "Staff Health",
			Icon:    "heart",
			Color:   "#C2255C",
			Items: []models.LogItemConfig{
				{Key: "staff_name", Label: "Staff Name", Type: models.FieldText},
				{Key: "staff_fit_to_work", Label: "Fit To Work", Type: models.FieldBoolean},
				{Key: "staff_illness_details", Label: "Illness Details", Type: models.FieldText},
			},
			EmptyTitle:       "No staff health records today",
			EmptyDescription: "Record each staff member's fitness to work.",
		},
	}
}

func fssaiFramework() *FrameworkConfig {
	return &FrameworkConfig{
		Key:             "fssai",
		Name:            "FSSAI",
		Country:         "IN",
		AccentColor:     "#F08C00",
		ScoringModel:    "percentage",
		LicenceFieldKey: "fssai_licence_no",
		LicenceLabel:    "FSSAI Licence Number",
		DefaultSections: map[string]bool{
			SectionTemperatureLogs:  true,
			SectionCleaningSchedule: true,
			SectionStaffHealth:      true,
			SectionReceiving:        true,
			SectionSanitiser:        true,
			SectionPestControl:      true,
			SectionHACCP:            false,
		},
		Tabs: complianceTabs(),
		WizardSteps: []WizardStep{
			{Key: "licence", Title: "FSSAI Licence", Fields: []string{"fssai_licence_no", "licence_type", "licence_expiry", "licence_displayed"}},
			{Key: "business", Title: "Business Details", Fields: []string{"business_category", "fostac_certified"}},
			{Key: "supervisors", Title: "Food Safety Supervisors"},
			{Key: "sections", Title: "Compliance Sections"},
		},
		LogPages: standardLogPages(),
	}
}

func foodStandardsFramework() *FrameworkConfig {
	return &FrameworkConfig{
		Key:             "food_standards",
		Name:            "Food Standards Agency",
		Country:         "GB",
		AccentColor:     "#2B8A3E",
		ScoringModel:    "stars",
		LicenceFieldKey: "fsa_registration",
		LicenceLabel:    "FSA Registration Number",
		DefaultSections: map[string]bool{
			SectionTemperatureLogs:  true,
			SectionCleaningSchedule: true,
			SectionStaffHealth:      true,
			SectionReceiving:        true,
			SectionSanitiser:        true,
			SectionPestControl:      true,
			SectionHACCP:            true,
		},
		Tabs: complianceTabs(),
		WizardSteps: []WizardStep{
			{Key: "licence", Title: "FSA Registration", Fields: []string{"fsa_registration", "licence_expiry"}},
			{Key: "business", Title: "Business Details", Fields: []string{"business_category"}},
			{Key: "supervisors", Title: "Food Safety Supervisors"},
			{Key: "sections", Title: "Compliance Sections"},
		},
		LogPages: standardLogPages(),
	}
}

// homeCookFramework is the home-cook product variant: same pages, but a
// reduced default section set suited to a single-operator kitchen.
func homeCookFramework() *FrameworkConfig {
	return &FrameworkConfig{
		Key:             "home_cook",
		Name:            "Home Cook",
		Country:         "IN",
		AccentColor:     "#9C36B5",
		ScoringModel:    "percentage",
		LicenceFieldKey: "fssai_registration_no",
		LicenceLabel:    "FSSAI Registration Number",
		DefaultSections: map[string]bool{
			SectionTemperatureLogs:  true,
			SectionCleaningSchedule: true,
			SectionStaffHealth:      false,
			SectionReceiving:        false,
			SectionSanitiser:        true,
			SectionPestControl:      false,
			SectionHACCP:            false,
		},
		Tabs: complianceTabs(),
		WizardSteps: []WizardStep{
			{Key: "licence", Title: "FSSAI Registration", Fields: []string{"fssai_registration_no", "licence_expiry"}},
			{Key: "sections", Title: "Compliance Sections"},
		},
		LogPages: standardLogPages(),
	}
}
