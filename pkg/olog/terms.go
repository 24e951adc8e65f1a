package olog

// Morphotype identifies one of the three published anthrobot structural
// categories. The set is closed: the taxonomy never defines more.
type Morphotype string

// Morphotype constants.
const (
	Morphotype1 Morphotype = "morphotype_1"
	Morphotype2 Morphotype = "morphotype_2"
	Morphotype3 Morphotype = "morphotype_3"
)

// Morphotypes returns the closed morphotype set in canonical order. Callers
// that iterate morphotypes must use this order so derived output stays
// deterministic.
func Morphotypes() []Morphotype {
	return []Morphotype{Morphotype1, Morphotype2, Morphotype3}
}

// Valid reports whether the value is one of the three published morphotypes.
func (m Morphotype) Valid() bool {
	_, ok := morphotypeMovements[m]
	return ok
}

// Shape identifies a gross anthrobot body shape.
type Shape string

// Shape constants.
const (
	ShapeSpherical   Shape = "spherical"
	ShapePotato      Shape = "potato_shaped"
	ShapeEllipsoidal Shape = "ellipsoidal"
)

// CiliaPattern identifies a ciliation layout on the anthrobot surface.
type CiliaPattern string

// Cilia pattern constants.
const (
	CiliaFullyCiliated    CiliaPattern = "fully_ciliated"
	CiliaPolarClustered   CiliaPattern = "polar_clustered"
	CiliaDispersedPatches CiliaPattern = "dispersed_patches"
)

// LifeStage identifies one stage of the fixed five-stage developmental order.
type LifeStage string

// Life stage constants, in developmental order.
const (
	StageProgenitorCell  LifeStage = "progenitor_cell"
	StageEarlySpheroid   LifeStage = "early_spheroid"
	StageEversion        LifeStage = "eversion"
	StageMatureAnthrobot LifeStage = "mature_anthrobot"
	StageSenescence      LifeStage = "senescence"
)

// StageOrder returns the five life stages in developmental order.
func StageOrder() []LifeStage {
	return []LifeStage{
		StageProgenitorCell,
		StageEarlySpheroid,
		StageEversion,
		StageMatureAnthrobot,
		StageSenescence,
	}
}

var stageIndex = map[LifeStage]int{
	StageProgenitorCell:  0,
	StageEarlySpheroid:   1,
	StageEversion:        2,
	StageMatureAnthrobot: 3,
	StageSenescence:      4,
}

// Index returns the stage position within the fixed developmental order.
func (s LifeStage) Index() (int, bool) {
	i, ok := stageIndex[s]
	return i, ok
}

// Valid reports whether the stage is a member of the fixed order.
func (s LifeStage) Valid() bool {
	_, ok := stageIndex[s]
	return ok
}

// stageAliases maps accepted shorthand names onto canonical stage keys.
// Canonical keys normalize to themselves.
var stageAliases = map[string]LifeStage{
	"progenitor": StageProgenitorCell,
	"mature":     StageMatureAnthrobot,
	"senescent":  StageSenescence,
}

// NormalizeStage resolves shorthand aliases and canonical names to a
// LifeStage. The boolean reports membership in the fixed order; unknown
// names are returned unchanged so callers can echo them in errors.
func NormalizeStage(name string) (LifeStage, bool) {
	if s, ok := stageAliases[name]; ok {
		return s, true
	}
	s := LifeStage(name)
	return s, s.Valid()
}

// SizeCategory buckets a body size into one of the three behavior bands.
type SizeCategory string

// Size category constants.
const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

// Size domain and band boundaries, in micrometers. The domain is closed:
// values outside [SizeMin, SizeMax] have no category. Band upper edges are
// inclusive.
const (
	SizeMinMicrometers       = 30.0
	SizeMaxMicrometers       = 500.0
	SizeSmallMaxMicrometers  = 100.0
	SizeMediumMaxMicrometers = 300.0
)

// CategorizeSize buckets a size into the three bands. The boolean is false
// outside the closed [30,500] domain; out-of-domain sizes are never clamped.
func CategorizeSize(size float64) (SizeCategory, bool) {
	if size < SizeMinMicrometers || size > SizeMaxMicrometers {
		return "", false
	}
	switch {
	case size <= SizeSmallMaxMicrometers:
		return SizeSmall, true
	case size <= SizeMediumMaxMicrometers:
		return SizeMedium, true
	default:
		return SizeLarge, true
	}
}

var sizeBandKeys = map[SizeCategory]string{
	SizeSmall:  "small_bots",
	SizeMedium: "medium_bots",
	SizeLarge:  "large_bots",
}

// BandKey returns the size_to_behavior mapping key for the category.
func (c SizeCategory) BandKey() (string, bool) {
	k, ok := sizeBandKeys[c]
	return k, ok
}

// Behavior tags a collective swarm activity.
type Behavior string

// Behavior constants. Other values are accepted by the swarm composer and
// fall back to a random arrangement.
const (
	BehaviorSwimming        Behavior = "swimming"
	BehaviorWoundSeeking    Behavior = "wound_seeking"
	BehaviorBridgeFormation Behavior = "bridge_formation"
)

// Arrangement identifies a spatial layout policy for a composed swarm.
type Arrangement string

// Arrangement constants.
const (
	ArrangementDispersed   Arrangement = "dispersed"
	ArrangementConverging  Arrangement = "converging"
	ArrangementLinearChain Arrangement = "linear_chain"
	ArrangementRandom      Arrangement = "random"
)

// Fixed per-morphotype associations. Each morphotype has exactly one
// movement class, one ciliation pattern, and one motion-rendering key;
// the tables are total over the closed morphotype set.
var (
	morphotypeMovements = map[Morphotype]string{
		Morphotype1: "stationary_wiggler",
		Morphotype2: "circular_swimmer",
		Morphotype3: "straight_swimmer",
	}
	morphotypeCilia = map[Morphotype]CiliaPattern{
		Morphotype1: CiliaFullyCiliated,
		Morphotype2: CiliaPolarClustered,
		Morphotype3: CiliaDispersedPatches,
	}
	morphotypeMotionRenderings = map[Morphotype]string{
		Morphotype1: "static_image",
		Morphotype2: "trajectory_traces",
		Morphotype3: "trajectory_traces",
	}
)

// MovementKey returns the movement class fixed for the morphotype.
func (m Morphotype) MovementKey() (string, bool) {
	k, ok := morphotypeMovements[m]
	return k, ok
}

// Cilia returns the ciliation pattern fixed for the morphotype.
func (m Morphotype) Cilia() (CiliaPattern, bool) {
	p, ok := morphotypeCilia[m]
	return p, ok
}

// MotionRendering returns the movement-visualization key fixed for the
// morphotype.
func (m Morphotype) MotionRendering() (string, bool) {
	k, ok := morphotypeMotionRenderings[m]
	return k, ok
}

// ShapeCilia pairs a body shape with a ciliation pattern for morphism lookup.
type ShapeCilia struct {
	Shape Shape        `json:"shape" yaml:"shape"`
	Cilia CiliaPattern `json:"cilia_pattern" yaml:"cilia_pattern"`
}

// shapeRules maps the three recognized shape/cilia combinations onto
// shape_to_movement mapping keys. The lookup is closed-world: a correct
// shape with a mismatched cilia pattern resolves to nothing.
var shapeRules = map[ShapeCilia]string{
	{ShapeSpherical, CiliaFullyCiliated}:      "spherical_symmetric",
	{ShapePotato, CiliaPolarClustered}:        "asymmetric_compact",
	{ShapeEllipsoidal, CiliaDispersedPatches}: "elongated_balanced",
}

// ShapeRuleKey resolves a shape/cilia pair to its shape_to_movement mapping
// key.
func ShapeRuleKey(shape Shape, cilia CiliaPattern) (string, bool) {
	k, ok := shapeRules[ShapeCilia{Shape: shape, Cilia: cilia}]
	return k, ok
}

// ValidShapeCombinations returns the recognized shape/cilia pairs in
// canonical order, for use as guidance on failed lookups.
func ValidShapeCombinations() []ShapeCilia {
	return []ShapeCilia{
		{ShapeSpherical, CiliaFullyCiliated},
		{ShapePotato, CiliaPolarClustered},
		{ShapeEllipsoidal, CiliaDispersedPatches},
	}
}
