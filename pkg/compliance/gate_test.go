package compliance

import (
	"reflect"
	"testing"
)

func frameworkTabs() []Tab {
	return []Tab{
		{Key: "dashboard", Route: "/compliance"},
		{Key: "temperature", Route: "/compliance/temperature", SectionKey: "temperature_logs"},
		{Key: "temp_log", Route: "/compliance/temperature", SectionKey: "temperature_logs"},
		{Key: "cleaning", Route: "/compliance/cleaning", SectionKey: "cleaning_schedule"},
		{Key: "staff_health", Route: "/compliance/staff-health", SectionKey: "staff_health"},
		{Key: "temp_setup", Route: "/compliance/temperature/setup", RequiresSetup: true},
		{Key: "receiving_setup", Route: "/compliance/receiving/setup", RequiresSetup: true},
	}
}

func TestAvailableTabs(t *testing.T) {
	tests := []struct {
		name           string
		toggles        map[string]bool
		canManageSetup bool
		expected       []string
	}{
		{
			// absent keys do not hide anything; aliases dedupe by route
			name:           "no toggles saved",
			toggles:        map[string]bool{},
			canManageSetup: false,
			expected:       []string{"dashboard", "temperature", "cleaning", "staff_health"},
		},
		{
			name:           "explicit false hides section",
			toggles:        map[string]bool{"cleaning_schedule": false},
			canManageSetup: false,
			expected:       []string{"dashboard", "temperature", "staff_health"},
		},
		{
			name:           "explicit true keeps section",
			toggles:        map[string]bool{"cleaning_schedule": true, "staff_health": false},
			canManageSetup: false,
			expected:       []string{"dashboard", "temperature", "cleaning"},
		},
		{
			name:           "setup tabs for managers only",
			toggles:        map[string]bool{},
			canManageSetup: true,
			expected: []string{
				"dashboard", "temperature", "cleaning", "staff_health",
				"temp_setup", "receiving_setup",
			},
		},
		{
			// first alias hidden by its section, so the route never appears
			name:           "alias hidden with its section",
			toggles:        map[string]bool{"temperature_logs": false},
			canManageSetup: false,
			expected:       []string{"dashboard", "cleaning", "staff_health"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TabKeys(AvailableTabs(frameworkTabs(), tt.toggles, tt.canManageSetup))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("AvailableTabs = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestApplyTabOrder(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		saved     []string
		expected  []string
	}{
		{
			name:      "no saved order keeps framework order",
			available: []string{"a", "b", "c"},
			saved:     nil,
			expected:  []string{"a", "b", "c"},
		},
		{
			name:      "saved order honored",
			available: []string{"a", "b", "c"},
			saved:     []string{"c", "a", "b"},
			expected:  []string{"c", "a", "b"},
		},
		{
			// keys enabled after the order was saved go to the end, in
			// framework order among themselves
			name:      "new keys appended",
			available: []string{"a", "b", "c", "d"},
			saved:     []string{"b", "a"},
			expected:  []string{"b", "a", "c", "d"},
		},
		{
			name:      "stale saved keys dropped",
			available: []string{"a", "b"},
			saved:     []string{"gone", "b", "a"},
			expected:  []string{"b", "a"},
		},
		{
			name:      "duplicate saved keys placed once",
			available: []string{"a", "b"},
			saved:     []string{"b", "b", "a"},
			expected:  []string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyTabOrder(tt.available, tt.saved)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ApplyTabOrder(%v, %v) = %v, expected %v",
					tt.available, tt.saved, got, tt.expected)
			}
		})
	}
}
