package core

import (
	"encoding/json"
	"errors"
	"testing"

	"anthromorph/pkg/olog"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateVisualizationAssemblesAllSections(t *testing.T) {
	tax := testTaxonomy(t)
	spec, err := GenerateVisualization(tax, olog.Morphotype1, 150, "mature", "scientific")
	if err != nil {
		t.Fatalf("GenerateVisualization: %v", err)
	}

	if spec.Specifications.Morphotype != olog.Morphotype1 {
		t.Fatalf("morphotype = %q", spec.Specifications.Morphotype)
	}
	if spec.Specifications.SizeMicrometers != 150 {
		t.Fatalf("size = %v", spec.Specifications.SizeMicrometers)
	}
	if spec.Specifications.LifeStage != olog.StageMatureAnthrobot {
		t.Fatalf("life stage = %q, alias must normalize", spec.Specifications.LifeStage)
	}
	if spec.Specifications.Name == "" {
		t.Fatalf("name missing")
	}
	if len(spec.SilhouetteGeometry) == 0 {
		t.Fatalf("silhouette geometry missing")
	}

	if spec.CiliaCorona.Pattern != olog.CiliaFullyCiliated {
		t.Fatalf("morphotype_1 cilia = %q, want fully_ciliated", spec.CiliaCorona.Pattern)
	}
	if len(spec.CiliaCorona.Rendering) == 0 {
		t.Fatalf("cilia rendering missing")
	}
	if spec.CiliaCorona.VisualIdentity != "Corona of motile cilia" {
		t.Fatalf("cilia identity = %q", spec.CiliaCorona.VisualIdentity)
	}

	if spec.MovementSignature.Speed == "" || spec.MovementSignature.Trajectory == "" {
		t.Fatalf("movement signature incomplete: %+v", spec.MovementSignature)
	}
	if len(spec.MovementSignature.Rendering) == 0 {
		t.Fatalf("movement rendering missing")
	}

	if spec.ScaleContext.Category != olog.SizeMedium {
		t.Fatalf("scale category = %q, want medium", spec.ScaleContext.Category)
	}
	if spec.ScaleContext.Warning != nil {
		t.Fatalf("unexpected warning: %+v", spec.ScaleContext.Warning)
	}

	if spec.LifeStage.Stage != olog.StageMatureAnthrobot || spec.LifeStage.Timepoint == "" {
		t.Fatalf("life stage section incomplete: %+v", spec.LifeStage)
	}

	if spec.ImagingAesthetics.Style != "scientific" {
		t.Fatalf("style = %q", spec.ImagingAesthetics.Style)
	}
	if spec.ImagingAesthetics.Modality != "Fluorescence microscopy" {
		t.Fatalf("scientific modality = %q", spec.ImagingAesthetics.Modality)
	}
	if len(spec.ImagingAesthetics.Palette) == 0 {
		t.Fatalf("palette missing")
	}
	if spec.SynthesisInstructions == "" {
		t.Fatalf("synthesis instructions missing")
	}
}

func TestGenerateVisualizationNonScientificModality(t *testing.T) {
	tax := testTaxonomy(t)
	spec, err := GenerateVisualization(tax, olog.Morphotype2, 120, "mature", "artistic")
	if err != nil {
		t.Fatalf("GenerateVisualization: %v", err)
	}
	if spec.ImagingAesthetics.Modality != "artistic" {
		t.Fatalf("modality = %q, want the style name itself", spec.ImagingAesthetics.Modality)
	}
}

func TestGenerateVisualizationOutOfRangeSizeWarns(t *testing.T) {
	tax := testTaxonomy(t)
	spec, err := GenerateVisualization(tax, olog.Morphotype3, 600, "mature", "scientific")
	if err != nil {
		t.Fatalf("size warnings must not abort assembly: %v", err)
	}
	if spec.ScaleContext.Warning == nil {
		t.Fatalf("out-of-range size must carry the warning through")
	}
	if spec.ScaleContext.Category != "" {
		t.Fatalf("out-of-range size must not be categorized, got %q", spec.ScaleContext.Category)
	}
	if spec.Specifications.SizeMicrometers != 600 {
		t.Fatalf("size must pass through unclamped, got %v", spec.Specifications.SizeMicrometers)
	}
}

func TestGenerateVisualizationClosedSetFailures(t *testing.T) {
	tax := testTaxonomy(t)

	_, err := GenerateVisualization(tax, olog.Morphotype("morphotype_0"), 150, "mature", "scientific")
	var unknownMorphotype *UnknownMorphotypeError
	if !errors.As(err, &unknownMorphotype) {
		t.Fatalf("expected *UnknownMorphotypeError, got %v", err)
	}

	_, err = GenerateVisualization(tax, olog.Morphotype1, 150, "chrysalis", "scientific")
	var unknownStage *UnknownStageError
	if !errors.As(err, &unknownStage) {
		t.Fatalf("expected *UnknownStageError, got %v", err)
	}

	_, err = GenerateVisualization(tax, olog.Morphotype1, 150, "mature", "vaporwave")
	var unknownStyle *UnknownImagingStyleError
	if !errors.As(err, &unknownStyle) {
		t.Fatalf("expected *UnknownImagingStyleError, got %v", err)
	}
	if len(unknownStyle.ValidStyles) == 0 {
		t.Fatalf("style error must name the valid styles")
	}
}

func TestGenerateVisualizationDeterministic(t *testing.T) {
	tax := testTaxonomy(t)
	a, err := GenerateVisualization(tax, olog.Morphotype2, 150, "mature", "depth_map")
	if err != nil {
		t.Fatalf("GenerateVisualization: %v", err)
	}
	b, _ := GenerateVisualization(tax, olog.Morphotype2, 150, "mature", "depth_map")
	aJSON, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	bJSON, _ := json.Marshal(b)
	if diff := cmp.Diff(string(aJSON), string(bJSON)); diff != "" {
		t.Fatalf("assembly not deterministic (-first +second):\n%s", diff)
	}
}
