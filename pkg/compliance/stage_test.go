package compliance

import (
	"testing"

	"p9e.in/prepsafe/models"
)

func TestResolveStage(t *testing.T) {
	configured := map[string]bool{"temperature_logs": true}

	tests := []struct {
		name          string
		hasAssessment bool
		profile       *models.ComplianceProfile
		toggles       map[string]bool
		expected      Stage
	}{
		{
			name:     "no assessment",
			expected: StageAudit,
		},
		{
			// assessment alone is not enough without a profile
			name:          "assessed without profile",
			hasAssessment: true,
			toggles:       configured,
			expected:      StageEnable,
		},
		{
			name:          "profile without sections",
			hasAssessment: true,
			profile:       &models.ComplianceProfile{},
			toggles:       map[string]bool{},
			expected:      StageConfigure,
		},
		{
			name:          "configured and working",
			hasAssessment: true,
			profile:       &models.ComplianceProfile{},
			toggles:       configured,
			expected:      StageShield,
		},
		{
			// green shield wins even with no sections configured
			name:          "shield active is terminal",
			hasAssessment: true,
			profile:       &models.ComplianceProfile{GreenShieldActive: true},
			toggles:       map[string]bool{},
			expected:      StageComplete,
		},
		{
			// a disabled toggle still counts as configured
			name:          "explicit false toggle counts as configured",
			hasAssessment: true,
			profile:       &models.ComplianceProfile{},
			toggles:       map[string]bool{"cleaning_schedule": false},
			expected:      StageShield,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStage(tt.hasAssessment, tt.profile, tt.toggles)
			if got != tt.expected {
				t.Errorf("ResolveStage = %q, expected %q", got, tt.expected)
			}
		})
	}
}
