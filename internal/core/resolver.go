package core

import (
	"fmt"
	"strconv"
	"strings"

	"anthromorph/pkg/olog"
)

// ResolveMovement maps a shape/cilia pair to its movement identity through
// the taxonomy morphism table. Exactly three combinations are recognized;
// everything else returns *NoMappingError carrying the valid set.
func ResolveMovement(tax *olog.Taxonomy, shape olog.Shape, cilia olog.CiliaPattern) (MovementRecord, error) {
	rule, ok := tax.ShapeRule(shape, cilia)
	if !ok {
		return MovementRecord{}, &NoMappingError{
			Shape:             shape,
			CiliaPattern:      cilia,
			ValidCombinations: olog.ValidShapeCombinations(),
		}
	}
	movement, ok := tax.Movement(rule.Movement)
	if !ok {
		// Unreachable against a validated taxonomy; guarded for callers
		// holding a hand-built one.
		return MovementRecord{}, fmt.Errorf("taxonomy missing movement %q cited by shape rule", rule.Movement)
	}
	return MovementRecord{
		Shape:              rule.Shape,
		CiliaPattern:       rule.Cilia,
		MovementType:       rule.Movement,
		Speed:              movement.Speed,
		Trajectory:         movement.Trajectory,
		VisualSignature:    movement.VisualSignature,
		PhysicalReason:     rule.Reason,
		MorphologicalCause: movement.MorphologicalCause,
		Intentionality:     movement.Intentionality,
	}, nil
}

// ResolveMorphotype assembles the full visual specification of one
// morphotype: the types entry, its silhouette table, and the movement
// class fixed for it by the static association table.
func ResolveMorphotype(tax *olog.Taxonomy, m olog.Morphotype) (MorphotypeSpec, error) {
	entry, ok := tax.Type(m)
	if !ok {
		return MorphotypeSpec{}, &UnknownMorphotypeError{Morphotype: m}
	}
	silhouette, _ := tax.Silhouette(m)
	movementKey, _ := m.MovementKey()
	movement, _ := tax.Movement(movementKey)
	return MorphotypeSpec{
		Morphotype:      m,
		Name:            entry.Name,
		Description:     entry.Description,
		Silhouette:      silhouette,
		TypicalMovement: movement,
		VisualIdentity:  fmt.Sprintf("%s - %s", entry.Name, entry.Description),
	}, nil
}

// Scale-reference thresholds, in micrometers. This is a second, finer
// partition of the size domain, independent of the three-band category.
const (
	hairLowerMicrometers = 70.0
	hairUpperMicrometers = 100.0
	dotMicrometers       = 300.0
)

func scaleReference(size float64) string {
	switch {
	case size < hairLowerMicrometers:
		return "Smaller than human hair diameter (~70µm)"
	case size < hairUpperMicrometers:
		return "About human hair thickness"
	case size < dotMicrometers:
		return "2-4x human hair thickness"
	default:
		return "Visible as small dot to naked eye"
	}
}

func formatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}

// ResolveSizeEffect reads the behavioral tendency of one body size. Sizes
// outside the closed [30,500] domain produce a record carrying only a
// range warning; they are never clamped into a category.
func ResolveSizeEffect(tax *olog.Taxonomy, size float64) SizeEffect {
	category, ok := olog.CategorizeSize(size)
	if !ok {
		return SizeEffect{
			SizeMicrometers: size,
			Warning: &RangeWarning{
				Message:    "Size outside observed range",
				ValidRange: "30-500 micrometers",
				InputSize:  size,
			},
		}
	}
	band, _ := tax.SizeBand(category)
	reference := scaleReference(size)
	return SizeEffect{
		SizeMicrometers:    size,
		SizeCategory:       category,
		SizeRange:          band.SizeRange,
		BehavioralTendency: band.Tendency,
		PhysicalReason:     band.Reason,
		ScaleReference:     reference,
		VisualImpact:       fmt.Sprintf("At %sµm, appears %s", formatSize(size), strings.ToLower(reference)),
	}
}
