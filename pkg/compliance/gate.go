package compliance

// Tab is one candidate entry in the compliance tab bar, in
// framework-declared order. Several keys may alias the same route (old
// keys kept for saved preferences); the gate emits each route once.
type Tab struct {
	Key        string `json:"key"`
	Route      string `json:"route"`
	Title      string `json:"title,omitempty"`
	Icon       string `json:"icon,omitempty"`
	SectionKey string `json:"sectionKey,omitempty"` // gating section; empty = always visible

	// RequiresSetup marks configuration tabs (temp_setup, receiving_setup)
	// only shown to users who can manage compliance setup.
	RequiresSetup bool `json:"requiresSetup,omitempty"`
}

// AvailableTabs filters the framework's tab list down to what one user in
// one organization should see:
//
//   - setup tabs are skipped unless the caller can manage setup,
//   - a tab whose section key is explicitly false in the toggle map is
//     skipped (a key absent from the map does NOT hide the tab),
//   - a tab whose route was already produced by an earlier key is skipped.
//
// Framework order is preserved.
func AvailableTabs(tabs []Tab, toggles map[string]bool, canManageSetup bool) []Tab {
	seen := make(map[string]bool, len(tabs))
	out := make([]Tab, 0, len(tabs))

	for _, tab := range tabs {
		if tab.RequiresSetup && !canManageSetup {
			continue
		}
		if tab.SectionKey != "" {
			if enabled, ok := toggles[tab.SectionKey]; ok && !enabled {
				continue
			}
		}
		if seen[tab.Route] {
			continue
		}
		seen[tab.Route] = true
		out = append(out, tab)
	}

	return out
}

// ApplyTabOrder reorders available tab keys by the user's saved ordering.
// Saved keys that are still available come first, in saved order; keys
// that became available since the order was saved are appended at the end,
// preserving framework order among themselves. Saved keys that are no
// longer available are dropped.
func ApplyTabOrder(available []string, saved []string) []string {
	availableSet := make(map[string]bool, len(available))
	for _, key := range available {
		availableSet[key] = true
	}

	out := make([]string, 0, len(available))
	placed := make(map[string]bool, len(available))

	for _, key := range saved {
		if availableSet[key] && !placed[key] {
			out = append(out, key)
			placed[key] = true
		}
	}
	for _, key := range available {
		if !placed[key] {
			out = append(out, key)
			placed[key] = true
		}
	}

	return out
}

// TabKeys projects a tab list to its keys.
func TabKeys(tabs []Tab) []string {
	keys := make([]string, len(tabs))
	for i, tab := range tabs {
		keys[i] = tab.Key
	}
	return keys
}
