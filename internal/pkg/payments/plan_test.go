package payments

import "testing"

func TestDefaultPlanName(t *testing.T) {
	tests := []struct {
		plan string
		want string
	}{
		{"basic", "Basic Piano Course"},
		{"intermediate", "Intermediate Piano Course"},
		{"advanced", "Advanced Piano Course"},
		{"styles-tones", "Styles & Tones Package"},
		{" Styles-Tones ", "Styles & Tones Package"},
		{"unknown-plan", "Plan"},
		{"", "Plan"},
	}

	for _, tt := range tests {
		if got := DefaultPlanName(tt.plan); got != tt.want {
			t.Errorf("DefaultPlanName(%q) = %q, want %q", tt.plan, got, tt.want)
		}
	}
}

func TestDefaultPlanDuration(t *testing.T) {
	for _, key := range KnownPlanKeys() {
		if got := DefaultPlanDuration(key); got != "Lifetime" {
			t.Errorf("DefaultPlanDuration(%q) = %q, want Lifetime", key, got)
		}
	}
	if got := DefaultPlanDuration("trial"); got != "Plan" {
		t.Errorf("DefaultPlanDuration(trial) = %q, want Plan", got)
	}
}

func TestKnownPlanKeysOrder(t *testing.T) {
	want := []string{"basic", "intermediate", "advanced", "styles-tones"}
	got := KnownPlanKeys()
	if len(got) != len(want) {
		t.Fatalf("KnownPlanKeys() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("KnownPlanKeys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Callers must not be able to mutate the catalog order.
	got[0] = "mutated"
	if KnownPlanKeys()[0] != "basic" {
		t.Error("KnownPlanKeys() returned a shared slice")
	}
}
