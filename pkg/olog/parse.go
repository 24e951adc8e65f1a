package olog

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a taxonomy document and validates it for referential
// completeness. Decode failures return *LoadError; a document that decodes
// but is missing sections or has dangling cross-references returns
// *SchemaError listing every problem found.
func Parse(data []byte) (*Taxonomy, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &LoadError{Reason: "empty document"}
	}
	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, &LoadError{Reason: "decode yaml", Err: err}
	}
	if err := tax.validate(); err != nil {
		return nil, err
	}
	return &tax, nil
}

func (t *Taxonomy) validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if t.Version == "" {
		add("version: missing")
	}
	if len(t.Types) == 0 {
		add("types: section missing or empty")
	}
	if len(t.MovementTypes) == 0 {
		add("movement_types: section missing or empty")
	}
	if len(t.LifeStages) == 0 {
		add("life_stages: section missing or empty")
	}
	if len(t.Morphisms.ShapeToMovement.Mappings) == 0 {
		add("morphisms.shape_to_movement: section missing or empty")
	}
	if len(t.Morphisms.SizeToBehavior.Mappings) == 0 {
		add("morphisms.size_to_behavior: section missing or empty")
	}
	if len(t.VisualParameters.ImagingStylePalette) == 0 {
		add("visual_parameters.imaging_style_palette: section missing or empty")
	}
	if t.SynthesisGuidance.ForCreativeSynthesis == "" {
		add("synthesis_guidance.for_creative_synthesis: missing")
	}
	if t.Intentionality.CorePrinciple.Concept == "" {
		add("intentionality.core_principle: missing")
	}
	if len(t.ImagingModalities.FluorescenceMultichannel.Channels) == 0 {
		add("imaging_modalities.fluorescence_multichannel.channels: section missing or empty")
	}
	if len(t.ScaleReferences.CellularScale.Comparison) == 0 {
		add("scale_references.cellular_scale.comparison: section missing or empty")
	}

	// Every morphotype must resolve everywhere the engine will look it up.
	for _, m := range Morphotypes() {
		if _, ok := t.Types[m]; !ok {
			add("types: missing %s", m)
		}
		if _, ok := t.VisualParameters.MorphotypeToSilhouette[m]; !ok {
			add("visual_parameters.morphotype_to_silhouette: missing %s", m)
		}
		if movement, ok := m.MovementKey(); ok {
			if _, found := t.MovementTypes[movement]; !found {
				add("movement_types: %s references missing movement %q", m, movement)
			}
		}
		if cilia, ok := m.Cilia(); ok {
			if _, found := t.VisualParameters.CiliaCoronaRendering[cilia]; !found {
				add("visual_parameters.cilia_corona_rendering: missing %s", cilia)
			}
		}
		if rendering, ok := m.MotionRendering(); ok {
			if _, found := t.VisualParameters.MovementVisualization[rendering]; !found {
				add("visual_parameters.movement_visualization: missing %q", rendering)
			}
		}
	}
	for key := range t.Types {
		if !key.Valid() {
			add("types: unknown morphotype %q", key)
		}
	}

	// The five-stage order is fixed; the dataset must cover it exactly.
	for _, stage := range StageOrder() {
		if _, ok := t.LifeStages[stage]; !ok {
			add("life_stages: missing %s", stage)
		}
	}
	for key := range t.LifeStages {
		if !key.Valid() {
			add("life_stages: unknown stage %q", key)
		}
	}

	// Shape rules must cover the recognized combinations and cite real
	// movement classes.
	for _, pair := range ValidShapeCombinations() {
		key, _ := ShapeRuleKey(pair.Shape, pair.Cilia)
		rule, ok := t.Morphisms.ShapeToMovement.Mappings[key]
		if !ok {
			add("morphisms.shape_to_movement: missing mapping %q", key)
			continue
		}
		if rule.Shape != pair.Shape || rule.Cilia != pair.Cilia {
			add("morphisms.shape_to_movement: mapping %q does not match %s+%s", key, pair.Shape, pair.Cilia)
		}
		if _, found := t.MovementTypes[rule.Movement]; !found {
			add("morphisms.shape_to_movement: mapping %q references missing movement %q", key, rule.Movement)
		}
	}

	for _, category := range []SizeCategory{SizeSmall, SizeMedium, SizeLarge} {
		key, _ := category.BandKey()
		if _, ok := t.Morphisms.SizeToBehavior.Mappings[key]; !ok {
			add("morphisms.size_to_behavior: missing mapping %q", key)
		}
	}

	if len(problems) > 0 {
		return &SchemaError{Problems: problems}
	}
	return nil
}
