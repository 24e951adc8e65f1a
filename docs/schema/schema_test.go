package schema

import (
	"encoding/json"
	"testing"
)

func TestToolNamesCoverAllFifteenTools(t *testing.T) {
	names, err := ToolNames()
	if err != nil {
		t.Fatalf("ToolNames: %v", err)
	}
	if len(names) != 15 {
		t.Fatalf("schemas = %d, want 15", len(names))
	}
	want := []string{
		"calculate_size_effects",
		"generate_anthrobot_visualization",
		"generate_life_cycle_sequence",
		"get_imaging_aesthetics",
		"get_intentionality_principles",
		"get_life_cycle_stages",
		"get_morphotype_specifications",
		"get_movement_vocabulary",
		"get_research_attribution",
		"get_scale_references",
		"get_wound_healing_scenario",
		"list_morphotypes",
		"map_morphology_to_behavior",
		"simulate_swarm_behavior",
		"suggest_composition_domains",
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestToolInputSchemasAreObjects(t *testing.T) {
	names, err := ToolNames()
	if err != nil {
		t.Fatalf("ToolNames: %v", err)
	}
	for _, name := range names {
		raw, ok := ToolInput(name)
		if !ok {
			t.Fatalf("schema for %s missing", name)
		}
		var doc struct {
			Type       string                     `json:"type"`
			Properties map[string]json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if doc.Type != "object" {
			t.Fatalf("%s type = %q, want object", name, doc.Type)
		}
		if doc.Properties == nil {
			t.Fatalf("%s has no properties key", name)
		}
	}
}

func TestToolInputUnknownName(t *testing.T) {
	if _, ok := ToolInput("summon_kraken"); ok {
		t.Fatalf("unknown tool must have no schema")
	}
}

func TestRequiredFieldsDeclared(t *testing.T) {
	cases := map[string][]string{
		"map_morphology_to_behavior":       {"shape", "cilia_pattern"},
		"get_morphotype_specifications":    {"morphotype"},
		"calculate_size_effects":           {"size_micrometers"},
		"generate_anthrobot_visualization": {"morphotype"},
		"generate_life_cycle_sequence":     {"morphotype"},
	}
	for name, wantRequired := range cases {
		raw, ok := ToolInput(name)
		if !ok {
			t.Fatalf("schema for %s missing", name)
		}
		var doc struct {
			Required []string `json:"required"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if len(doc.Required) != len(wantRequired) {
			t.Fatalf("%s required = %v, want %v", name, doc.Required, wantRequired)
		}
		for i, field := range wantRequired {
			if doc.Required[i] != field {
				t.Fatalf("%s required[%d] = %q, want %q", name, i, doc.Required[i], field)
			}
		}
	}
}
