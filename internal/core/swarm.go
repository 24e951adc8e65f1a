package core

import (
	"fmt"

	"anthromorph/pkg/olog"
)

// Supported swarm population range.
const (
	SwarmCountMin = 3
	SwarmCountMax = 20
)

// Synthetic per-unit size formula parameters: 50 + (i × 30) mod 300 with
// the unit index starting at 1. Deterministic pseudo-variation, not a
// random draw; identical inputs always compose identical swarms.
const (
	unitSizeBase   = 50
	unitSizeStep   = 30
	unitSizeModulo = 300
)

func unitSize(index int) float64 {
	return float64(unitSizeBase + (index*unitSizeStep)%unitSizeModulo)
}

func defaultMix() map[olog.Morphotype]float64 {
	return map[olog.Morphotype]float64{
		olog.Morphotype1: 0.33,
		olog.Morphotype2: 0.33,
		olog.Morphotype3: 0.34,
	}
}

// Arrangement policies fixed per behavior tag. Unlisted behaviors fall
// back to a bare random arrangement; selection never errors.
var arrangements = map[olog.Behavior]ArrangementSpec{
	olog.BehaviorSwimming: {
		Type:        olog.ArrangementDispersed,
		Description: "Bots distributed naturally with varied orientations",
		Spacing:     "50-200 micrometers between individuals",
	},
	olog.BehaviorWoundSeeking: {
		Type:        olog.ArrangementConverging,
		Description: "Bots oriented toward central wound/scratch",
		Spacing:     "Decreasing density toward wound edge",
	},
	olog.BehaviorBridgeFormation: {
		Type:        olog.ArrangementLinearChain,
		Description: "Bots aligned in bridge across gap",
		Spacing:     "End-to-end contact, minimal gaps",
	},
}

func arrangementFor(behavior olog.Behavior) ArrangementSpec {
	if spec, ok := arrangements[behavior]; ok {
		return spec
	}
	return ArrangementSpec{Type: olog.ArrangementRandom}
}

func collectiveBehaviorFor(tax *olog.Taxonomy, behavior olog.Behavior) CollectiveBehavior {
	out := CollectiveBehavior{
		BehaviorType:    behavior,
		Description:     fmt.Sprintf("%s behavior", behavior),
		VisualSignature: "Multiple anthrobots in coordinated activity",
		Scale:           "Scalable from individual to thousands",
	}
	entry, ok := tax.CollectiveBehavior(behavior)
	if !ok {
		return out
	}
	if entry.Description != "" {
		out.Description = entry.Description
	}
	if entry.VisualSignature != "" {
		out.VisualSignature = entry.VisualSignature
	}
	if entry.Scalability != "" {
		out.Scale = entry.Scalability
	}
	return out
}

// ComposeSwarm distributes a population across the three morphotypes and
// generates one deterministic unit record per member. Per-morphotype
// counts truncate count × proportion toward zero; the truncation shortfall
// is added entirely to morphotype_1. The repair rule is deliberately
// coarse and is reproduced exactly for output compatibility.
func ComposeSwarm(tax *olog.Taxonomy, count int, mix map[olog.Morphotype]float64, behavior olog.Behavior, imagingStyle string) (SwarmSpec, error) {
	if count < SwarmCountMin || count > SwarmCountMax {
		return SwarmSpec{}, &SwarmCountError{Count: count}
	}
	if mix == nil {
		mix = defaultMix()
	}

	counts := make(map[olog.Morphotype]int, 3)
	total := 0
	for _, m := range olog.Morphotypes() {
		n := int(float64(count) * mix[m])
		counts[m] = n
		total += n
	}
	if total < count {
		counts[olog.Morphotype1] += count - total
	}

	units := make([]SwarmUnit, 0, count)
	index := 1
	minSize, maxSize := 0.0, 0.0
	for _, m := range olog.Morphotypes() {
		specs, err := ResolveMorphotype(tax, m)
		if err != nil {
			return SwarmSpec{}, err
		}
		for i := 0; i < counts[m]; i++ {
			size := unitSize(index)
			if len(units) == 0 || size < minSize {
				minSize = size
			}
			if len(units) == 0 || size > maxSize {
				maxSize = size
			}
			units = append(units, SwarmUnit{
				BotID:           index,
				Morphotype:      m,
				SizeMicrometers: size,
				Specs:           specs,
			})
			index++
		}
	}

	return SwarmSpec{
		Composition: SwarmComposition{
			TotalBots:              count,
			MorphotypeDistribution: counts,
			SizeRange:              fmt.Sprintf("%.0f-%.0f µm", minSize, maxSize),
		},
		IndividualBots:     units,
		SpatialArrangement: arrangementFor(behavior),
		CollectiveBehavior: collectiveBehaviorFor(tax, behavior),
		ImagingParameters: SwarmImaging{
			Style:            imagingStyle,
			FrameComposition: "Wide field showing multiple subjects",
			DepthOfField:     "Moderate - some bots in focus, others contextual blur",
			VisualComplexity: "High - multiple subjects with individual characteristics",
		},
		SynthesisNote: fmt.Sprintf(
			"Swarm of %d anthrobots engaged in %s - emphasize both individual morphologies and collective pattern",
			count, behavior),
	}, nil
}
