package core

import (
	"fmt"
	"strings"

	"anthromorph/pkg/olog"
)

// NoMappingError reports a shape/cilia combination outside the closed
// morphism table. It carries the three recognized combinations as guidance;
// the lookup gives no partial credit for a correct shape with a mismatched
// cilia pattern.
type NoMappingError struct {
	Shape             olog.Shape
	CiliaPattern      olog.CiliaPattern
	ValidCombinations []olog.ShapeCilia
}

func (e *NoMappingError) Error() string {
	combos := make([]string, 0, len(e.ValidCombinations))
	for _, c := range e.ValidCombinations {
		combos = append(combos, fmt.Sprintf("%s+%s", c.Shape, c.Cilia))
	}
	return fmt.Sprintf("no movement mapping for %s+%s; valid combinations: %s",
		e.Shape, e.CiliaPattern, strings.Join(combos, ", "))
}

// UnknownMorphotypeError reports a morphotype key outside the closed set of
// three, naming the valid set.
type UnknownMorphotypeError struct {
	Morphotype olog.Morphotype
}

func (e *UnknownMorphotypeError) Error() string {
	valid := make([]string, 0, 3)
	for _, m := range olog.Morphotypes() {
		valid = append(valid, string(m))
	}
	return fmt.Sprintf("unknown morphotype %q; use one of %s", e.Morphotype, strings.Join(valid, ", "))
}

// UnknownStageError reports a life-stage name that does not normalize into
// the fixed five-stage order.
type UnknownStageError struct {
	Name string
}

func (e *UnknownStageError) Error() string {
	valid := make([]string, 0, 5)
	for _, s := range olog.StageOrder() {
		valid = append(valid, string(s))
	}
	return fmt.Sprintf("unknown life stage %q; use one of %s", e.Name, strings.Join(valid, ", "))
}

// StageOrderError reports a start stage that occurs strictly after the end
// stage in the fixed developmental order.
type StageOrderError struct {
	Start olog.LifeStage
	End   olog.LifeStage
}

func (e *StageOrderError) Error() string {
	return fmt.Sprintf("start stage %s occurs after end stage %s", e.Start, e.End)
}

// UnknownImagingStyleError reports an imaging style absent from the
// taxonomy palette, naming the valid styles.
type UnknownImagingStyleError struct {
	Style       string
	ValidStyles []string
}

func (e *UnknownImagingStyleError) Error() string {
	return fmt.Sprintf("unknown imaging style %q; use one of %s", e.Style, strings.Join(e.ValidStyles, ", "))
}

// SwarmCountError reports a requested population outside the supported
// [3,20] range.
type SwarmCountError struct {
	Count int
}

func (e *SwarmCountError) Error() string {
	return fmt.Sprintf("swarm count %d outside supported range %d-%d", e.Count, SwarmCountMin, SwarmCountMax)
}
