package core

import (
	"fmt"

	"anthromorph/pkg/olog"
)

// Per-stage size schedule relative to the mature size. The progenitor cell
// is a fixed 15µm regardless of the mature size; the other stages are
// discrete multipliers. The schedule stands in for unavailable continuous
// growth data and is never smoothed between stages.
const progenitorSizeMicrometers = 15.0

var stageSizeFactors = map[olog.LifeStage]float64{
	olog.StageEarlySpheroid:   0.3,
	olog.StageEversion:        0.6,
	olog.StageMatureAnthrobot: 1.0,
	olog.StageSenescence:      0.8,
}

func stageSize(stage olog.LifeStage, matureSize float64) float64 {
	if stage == olog.StageProgenitorCell {
		return progenitorSizeMicrometers
	}
	return matureSize * stageSizeFactors[stage]
}

// Fixed narrative annotations attached to every generated sequence. They
// describe the three hinge points of the life cycle and are not derived
// from the requested range.
var criticalTransitions = []string{
	"Eversion (Day 0-3): Inside-out turning, cilia reorientation - DRAMATIC",
	"Maturation (Day 10): Stable motile form achieved",
	"Senescence (Day 45+): Natural biodegradation begins",
}

const missingGeneExpression = "N/A"

// GenerateSequence builds the inclusive developmental progression from
// start to end for one morphotype, deriving a size at each stage from the
// mature size. Stage names pass through the alias table before validation;
// a start stage strictly after the end stage is an ordering error, while
// an equal pair yields a single-stage sequence.
func GenerateSequence(tax *olog.Taxonomy, m olog.Morphotype, start, end string, matureSize float64) (Sequence, error) {
	if !m.Valid() {
		return Sequence{}, &UnknownMorphotypeError{Morphotype: m}
	}
	startStage, ok := olog.NormalizeStage(start)
	if !ok {
		return Sequence{}, &UnknownStageError{Name: start}
	}
	endStage, ok := olog.NormalizeStage(end)
	if !ok {
		return Sequence{}, &UnknownStageError{Name: end}
	}
	startIdx, _ := startStage.Index()
	endIdx, _ := endStage.Index()
	if startIdx > endIdx {
		return Sequence{}, &StageOrderError{Start: startStage, End: endStage}
	}

	order := olog.StageOrder()
	stages := make([]SequenceStage, 0, endIdx-startIdx+1)
	for _, stage := range order[startIdx : endIdx+1] {
		entry, _ := tax.Stage(stage)
		gene := entry.GeneExpression
		if gene == "" {
			gene = missingGeneExpression
		}
		stages = append(stages, SequenceStage{
			StageName:        stage,
			Timepoint:        entry.Timepoint,
			Morphology:       entry.Morphology,
			VisualAppearance: entry.Visual,
			SizeMicrometers:  stageSize(stage, matureSize),
			GeneExpression:   gene,
			KeyEvent:         entry.KeyEvent(),
		})
	}

	return Sequence{
		Morphotype:     m,
		SequenceLength: len(stages),
		// Span label keeps the caller's raw stage names.
		TotalTimespan:       fmt.Sprintf("%s to %s", start, end),
		Stages:              stages,
		CriticalTransitions: append([]string(nil), criticalTransitions...),
	}, nil
}
