package utils

import "testing"

func TestMatchesPermission(t *testing.T) {
	tests := []struct {
		name     string
		userPerm string
		required string
		expected bool
	}{
		{"exact match", "compliance:create", "compliance:create", true},
		{"exact mismatch", "compliance:create", "compliance:read", false},
		{"full wildcard", "*:*:*", "setup:manage", true},
		{"bare wildcard", "*", "supervisor:delete", true},
		{"resource wildcard", "compliance:*", "compliance:export", true},
		{"resource wildcard wrong resource", "compliance:*", "setup:manage", false},
		{"action wildcard", "*:read", "profile:read", true},
		{"action wildcard wrong action", "*:read", "profile:update", false},
		{"legacy format exact", "admin_all", "admin_all", true},
		{"legacy format mismatch", "admin_all", "setup:manage", false},
		{"scoped required", "assessment:create", "assessment:create:org", true},
		{"both wildcards", "*:*", "file:upload", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesPermission(tt.userPerm, tt.required)
			if got != tt.expected {
				t.Errorf("MatchesPermission(%q, %q) = %v, expected %v",
					tt.userPerm, tt.required, got, tt.expected)
			}
		})
	}
}
