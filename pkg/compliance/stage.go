package compliance

import "p9e.in/prepsafe/models"

// Stage is the linear onboarding position of an organization. It is
// derived from current data on every request and never stored; there is no
// backward transition and no cancellation.
type Stage string

const (
	StageAudit     Stage = "audit"     // no self-assessment recorded yet
	StageEnable    Stage = "enable"    // assessed, but compliance mode not enabled (no profile)
	StageConfigure Stage = "configure" // profile exists, no sections configured yet
	StageShield    Stage = "shield"    // configured, working toward the green shield
	StageComplete  Stage = "complete"  // green shield active (terminal)
)

// ResolveStage derives the onboarding stage. Checks run in order; the
// first match wins:
//
//  1. no assessment            -> audit
//  2. no profile               -> enable
//  3. green shield active      -> complete
//  4. no sections configured   -> configure
//  5. otherwise                -> shield
func ResolveStage(hasAssessment bool, profile *models.ComplianceProfile, toggles map[string]bool) Stage {
	if !hasAssessment {
		return StageAudit
	}
	if profile == nil {
		return StageEnable
	}
	if profile.GreenShieldActive {
		return StageComplete
	}
	if len(toggles) == 0 {
		return StageConfigure
	}
	return StageShield
}
