package core

import "anthromorph/pkg/olog"

const ciliaCoronaIdentity = "Corona of motile cilia"

func modalityFor(imagingStyle string) string {
	if imagingStyle == "scientific" {
		return "Fluorescence microscopy"
	}
	return imagingStyle
}

// GenerateVisualization composes one aggregate visual-parameter record
// from the morphotype spec, the size effect, the life-stage entry, and the
// imaging palette. The first sub-resolution failure aborts assembly;
// there is no partial record. Size range warnings are carried through
// unchanged — only closed-set misses fail.
func GenerateVisualization(tax *olog.Taxonomy, m olog.Morphotype, size float64, lifeStage, imagingStyle string) (VisualizationSpec, error) {
	spec, err := ResolveMorphotype(tax, m)
	if err != nil {
		return VisualizationSpec{}, err
	}

	sizeEffect := ResolveSizeEffect(tax, size)

	stage, ok := olog.NormalizeStage(lifeStage)
	if !ok {
		return VisualizationSpec{}, &UnknownStageError{Name: lifeStage}
	}
	stageEntry, _ := tax.Stage(stage)

	palette, ok := tax.Palette(imagingStyle)
	if !ok {
		return VisualizationSpec{}, &UnknownImagingStyleError{Style: imagingStyle, ValidStyles: tax.ImagingStyles()}
	}

	cilia, _ := m.Cilia()
	ciliaRendering, _ := tax.CiliaRendering(cilia)
	motionKey, _ := m.MotionRendering()
	motionRendering, _ := tax.MovementRendering(motionKey)

	return VisualizationSpec{
		Specifications: AnthrobotSpecification{
			Morphotype:      m,
			Name:            spec.Name,
			SizeMicrometers: size,
			LifeStage:       stage,
		},
		SilhouetteGeometry: spec.Silhouette,
		CiliaCorona: CiliaCorona{
			Pattern:        cilia,
			Rendering:      ciliaRendering,
			VisualIdentity: ciliaCoronaIdentity,
		},
		MovementSignature: MovementSignature{
			Type:            spec.TypicalMovement.MorphologicalCause,
			Speed:           spec.TypicalMovement.Speed,
			Trajectory:      spec.TypicalMovement.Trajectory,
			VisualSignature: spec.TypicalMovement.VisualSignature,
			Rendering:       motionRendering,
		},
		ScaleContext: ScaleContext{
			Size:         size,
			Category:     sizeEffect.SizeCategory,
			Reference:    sizeEffect.ScaleReference,
			VisualImpact: sizeEffect.VisualImpact,
			Warning:      sizeEffect.Warning,
		},
		LifeStage: LifeStageCharacteristics{
			Stage:            stage,
			Timepoint:        stageEntry.Timepoint,
			Morphology:       stageEntry.Morphology,
			VisualAppearance: stageEntry.Visual,
		},
		ImagingAesthetics: ImagingAesthetics{
			Style:    imagingStyle,
			Palette:  palette,
			Modality: modalityFor(imagingStyle),
		},
		SynthesisInstructions: tax.SynthesisGuidance.ForCreativeSynthesis,
	}, nil
}
