package core

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWoundHealingScenarioShape(t *testing.T) {
	scenario := WoundHealingScenario()
	if scenario.ScenarioName != "Wound Healing Bridge Formation" {
		t.Fatalf("name = %q", scenario.ScenarioName)
	}
	if len(scenario.VisualSequence) != 4 {
		t.Fatalf("frames = %d, want 4", len(scenario.VisualSequence))
	}
	for i, frame := range scenario.VisualSequence {
		if frame.Frame != i+1 {
			t.Fatalf("frame %d numbered %d", i, frame.Frame)
		}
		if frame.Timepoint == "" || frame.Description == "" || frame.GapWidth == "" {
			t.Fatalf("incomplete frame %d: %+v", i, frame)
		}
	}
	if scenario.VisualSequence[0].AnthrobotCount != 5 {
		t.Fatalf("initial frame count = %d", scenario.VisualSequence[0].AnthrobotCount)
	}
	if scenario.VisualSequence[2].HealingEvidence == "" {
		t.Fatalf("bridge frame must carry healing evidence")
	}
	if scenario.VisualSequence[3].Outcome != "Functional neural repair achieved" {
		t.Fatalf("outcome = %q", scenario.VisualSequence[3].Outcome)
	}
	if scenario.ImagingSpecifications.AnthrobotCilia != "Yellow (acetylated tubulin)" {
		t.Fatalf("cilia channel = %q", scenario.ImagingSpecifications.AnthrobotCilia)
	}
	if scenario.SynthesisGuidance == "" {
		t.Fatalf("synthesis guidance missing")
	}
}

func TestWoundHealingScenarioCopiesAreIndependent(t *testing.T) {
	a := WoundHealingScenario()
	b := WoundHealingScenario()
	aJSON, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	bJSON, _ := json.Marshal(b)
	if diff := cmp.Diff(string(aJSON), string(bJSON)); diff != "" {
		t.Fatalf("scenario not stable (-first +second):\n%s", diff)
	}

	// Callers may annotate their copy without bleeding into later calls.
	a.VisualSequence[0].VisualNotes = "edited"
	c := WoundHealingScenario()
	if c.VisualSequence[0].VisualNotes == "edited" {
		t.Fatalf("scenario frames must not share backing storage across calls")
	}
}
