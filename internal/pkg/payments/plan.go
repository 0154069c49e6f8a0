package payments

import "strings"

type planDefaults struct {
	Name     string
	Duration string
}

// knownPlans maps catalog plan keys to the display defaults applied when a
// claim omits planName/planDuration. Adding a plan means adding an entry
// here, not a new conditional.
var knownPlans = map[string]planDefaults{
	"basic":        {Name: "Basic Piano Course", Duration: "Lifetime"},
	"intermediate": {Name: "Intermediate Piano Course", Duration: "Lifetime"},
	"advanced":     {Name: "Advanced Piano Course", Duration: "Lifetime"},
	"styles-tones": {Name: "Styles & Tones Package", Duration: "Lifetime"},
}

// knownPlanKeys fixes the plan breakdown order reported by analytics.
var knownPlanKeys = []string{"basic", "intermediate", "advanced", "styles-tones"}

// DefaultPlanName returns the canonical display name for a plan key, or
// "Plan" for unknown plans.
func DefaultPlanName(plan string) string {
	if d, ok := knownPlans[normalizePlanKey(plan)]; ok {
		return d.Name
	}
	return "Plan"
}

// DefaultPlanDuration returns the canonical access duration for a plan key,
// or "Plan" for unknown plans.
func DefaultPlanDuration(plan string) string {
	if d, ok := knownPlans[normalizePlanKey(plan)]; ok {
		return d.Duration
	}
	return "Plan"
}

// KnownPlanKeys returns the catalog plan keys in reporting order.
func KnownPlanKeys() []string {
	out := make([]string, len(knownPlanKeys))
	copy(out, knownPlanKeys)
	return out
}

func normalizePlanKey(plan string) string {
	return strings.ToLower(strings.TrimSpace(plan))
}
