package config

import "testing"

func TestGetFramework(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"fssai", "fssai", "fssai"},
		{"food standards", "food_standards", "food_standards"},
		{"home cook", "home_cook", "home_cook"},
		{"unknown falls back", "unknown", "fssai"},
		{"empty falls back", "", "fssai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFramework(tt.key)
			if f == nil {
				t.Fatal("GetFramework returned nil")
			}
			if f.Key != tt.expected {
				t.Errorf("GetFramework(%q).Key = %q, expected %q", tt.key, f.Key, tt.expected)
			}
		})
	}
}

func TestFrameworkDefinitionsComplete(t *testing.T) {
	for _, key := range FrameworkKeys() {
		f := GetFramework(key)

		if f.ScoringModel != "percentage" && f.ScoringModel != "stars" {
			t.Errorf("%s: ScoringModel = %q", key, f.ScoringModel)
		}
		if f.LicenceFieldKey == "" {
			t.Errorf("%s: empty LicenceFieldKey", key)
		}
		if len(f.Tabs) == 0 || len(f.LogPages) == 0 || len(f.DefaultSections) == 0 {
			t.Errorf("%s: incomplete definition", key)
		}

		// every section key referenced by a tab must have a default
		for _, tab := range f.Tabs {
			if tab.SectionKey == "" {
				continue
			}
			if _, ok := f.DefaultSections[tab.SectionKey]; !ok {
				t.Errorf("%s: tab %s references section %s with no default", key, tab.Key, tab.SectionKey)
			}
		}

		// log type keys unique, item keys unique per page
		seenTypes := make(map[string]bool)
		for _, page := range f.LogPages {
			if seenTypes[page.LogType] {
				t.Errorf("%s: duplicate log type %s", key, page.LogType)
			}
			seenTypes[page.LogType] = true

			seenKeys := make(map[string]bool)
			for _, item := range page.Items {
				if seenKeys[item.Key] {
					t.Errorf("%s/%s: duplicate item key %s", key, page.LogType, item.Key)
				}
				seenKeys[item.Key] = true
			}
		}
	}
}

func TestHomeCookReducedDefaults(t *testing.T) {
	full := GetFramework("fssai").DefaultSections
	reduced := GetFramework("home_cook").DefaultSections

	if full[SectionStaffHealth] == reduced[SectionStaffHealth] {
		t.Error("home_cook should disable staff health by default")
	}
	if !reduced[SectionTemperatureLogs] {
		t.Error("home_cook should keep temperature logs enabled")
	}
}

func TestLogPageLookup(t *testing.T) {
	f := GetFramework("fssai")
	if page := f.LogPage("cooking"); page == nil || page.LogType != "cooking" {
		t.Errorf("LogPage(cooking) = %v", page)
	}
	if page := f.LogPage("nope"); page != nil {
		t.Errorf("LogPage(nope) = %v, expected nil", page)
	}
}
