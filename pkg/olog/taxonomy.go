package olog

import (
	"sort"
	"strings"
)

// Taxonomy is the parsed anthrobot reference dataset: a versioned tree of
// categorical facts and rule tables. A Taxonomy is loaded once, validated
// for referential completeness, and then treated as immutable; no mutating
// accessor is exported and callers share one handle by reference.
type Taxonomy struct {
	Version            string                       `yaml:"version" json:"version"`
	Types              map[Morphotype]TypeEntry     `yaml:"types" json:"types"`
	MovementTypes      map[string]MovementType      `yaml:"movement_types" json:"movement_types"`
	LifeStages         map[LifeStage]StageEntry     `yaml:"life_stages" json:"life_stages"`
	ImagingModalities  ImagingModalities            `yaml:"imaging_modalities" json:"imaging_modalities"`
	ScaleReferences    ScaleReferences              `yaml:"scale_references" json:"scale_references"`
	Intentionality     Intentionality               `yaml:"intentionality" json:"intentionality"`
	Morphisms          Morphisms                    `yaml:"morphisms" json:"morphisms"`
	VisualParameters   VisualParameters             `yaml:"visual_parameters" json:"visual_parameters"`
	Behaviors          map[string]BehaviorEntry     `yaml:"behaviors" json:"behaviors,omitempty"`
	CompositionTargets map[string]CompositionTarget `yaml:"composition_targets" json:"composition_targets,omitempty"`
	Citations          Citations                    `yaml:"citations" json:"citations"`
	SynthesisGuidance  SynthesisGuidance            `yaml:"synthesis_guidance" json:"synthesis_guidance"`
}

// TypeEntry names and describes one morphotype.
type TypeEntry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// MovementType describes one movement class and its visual identity.
type MovementType struct {
	MorphologicalCause string `yaml:"morphological_cause" json:"morphological_cause"`
	Speed              string `yaml:"speed" json:"speed"`
	Trajectory         string `yaml:"trajectory" json:"trajectory"`
	VisualSignature    string `yaml:"visual_signature" json:"visual_signature"`
	Intentionality     string `yaml:"intentionality" json:"intentionality"`
}

// StageEntry carries the static descriptive facts for one life stage.
// Event, fate, and the other trailing fields are optional in the dataset.
type StageEntry struct {
	Timepoint       string `yaml:"timepoint" json:"timepoint"`
	Morphology      string `yaml:"morphology" json:"morphology"`
	Visual          string `yaml:"visual" json:"visual"`
	GeneExpression  string `yaml:"gene_expression,omitempty" json:"gene_expression,omitempty"`
	Event           string `yaml:"event,omitempty" json:"event,omitempty"`
	EpigeneticState string `yaml:"epigenetic_state,omitempty" json:"epigenetic_state,omitempty"`
	Behavior        string `yaml:"behavior,omitempty" json:"behavior,omitempty"`
	Fate            string `yaml:"fate,omitempty" json:"fate,omitempty"`
}

// defaultKeyEvent labels stages with neither an event nor a fate.
const defaultKeyEvent = "Continued development"

// KeyEvent selects the stage's headline happening with fixed priority:
// explicit event, then fate, then a generic continuation label.
func (e StageEntry) KeyEvent() string {
	for _, candidate := range []string{e.Event, e.Fate} {
		if candidate != "" {
			return candidate
		}
	}
	return defaultKeyEvent
}

// ImagingModalities groups the supported microscopy aesthetics.
type ImagingModalities struct {
	FluorescenceMultichannel FluorescenceModality `yaml:"fluorescence_multichannel" json:"fluorescence_multichannel"`
	DepthColoring            SimpleModality       `yaml:"depth_coloring" json:"depth_coloring"`
	BrightfieldMicroscopy    SimpleModality       `yaml:"brightfield_microscopy" json:"brightfield_microscopy"`
}

// FluorescenceModality describes multichannel fluorescence imaging.
type FluorescenceModality struct {
	Description        string             `yaml:"description" json:"description"`
	Channels           map[string]Channel `yaml:"channels" json:"channels"`
	CompositeAesthetic CompositeAesthetic `yaml:"composite_aesthetic" json:"composite_aesthetic"`
}

// Channel describes one fluorescence channel assignment.
type Channel struct {
	Stain        string `yaml:"stain" json:"stain"`
	Color        string `yaml:"color" json:"color"`
	Targets      string `yaml:"targets" json:"targets"`
	VisualEffect string `yaml:"visual_effect" json:"visual_effect"`
}

// CompositeAesthetic describes the combined multichannel look.
type CompositeAesthetic struct {
	CoronaEffect    string `yaml:"corona_effect" json:"corona_effect"`
	DepthPerception string `yaml:"depth_perception" json:"depth_perception"`
	ColorHarmony    string `yaml:"color_harmony" json:"color_harmony"`
}

// SimpleModality describes a single-look imaging modality.
type SimpleModality struct {
	Description  string `yaml:"description" json:"description"`
	VisualEffect string `yaml:"visual_effect" json:"visual_effect"`
	Aesthetic    string `yaml:"aesthetic" json:"aesthetic"`
}

// ScaleReferences anchors anthrobot sizes against familiar objects.
type ScaleReferences struct {
	CellularScale    CellularScale    `yaml:"cellular_scale" json:"cellular_scale"`
	RelativeToSource RelativeToSource `yaml:"relative_to_source" json:"relative_to_source"`
}

// CellularScale carries the human-scale comparison set.
type CellularScale struct {
	AnthrobotSize string   `yaml:"anthrobot_size" json:"anthrobot_size"`
	Comparison    []string `yaml:"comparison" json:"comparison"`
	VisualNiche   string   `yaml:"visual_niche" json:"visual_niche"`
}

// RelativeToSource relates anthrobot size to its source cell.
type RelativeToSource struct {
	SingleCell    string `yaml:"single_cell" json:"single_cell"`
	MatureBot     string `yaml:"mature_bot" json:"mature_bot"`
	ScalingFactor string `yaml:"scaling_factor" json:"scaling_factor"`
}

// Intentionality collects the framework principles explaining why the
// aesthetics hold together.
type Intentionality struct {
	CorePrinciple               CorePrinciple `yaml:"core_principle" json:"core_principle"`
	SymmetryDeterminesMotion    Principle     `yaml:"symmetry_determines_motion" json:"symmetry_determines_motion"`
	SelfAssemblyEmergence       Principle     `yaml:"self_assembly_emergence" json:"self_assembly_emergence"`
	AgeReversalParadox          Principle     `yaml:"age_reversal_paradox" json:"age_reversal_paradox"`
	WoundHealingMechanism       Principle     `yaml:"wound_healing_mechanism" json:"wound_healing_mechanism"`
	CiliaAsComputationalElement Principle     `yaml:"cilia_as_computational_element" json:"cilia_as_computational_element"`
}

// CorePrinciple is the headline framework statement.
type CorePrinciple struct {
	Concept        string `yaml:"concept" json:"concept"`
	Explanation    string `yaml:"explanation" json:"explanation"`
	LevinFramework string `yaml:"levin_framework" json:"levin_framework"`
}

// Principle is one named framework principle; trailing fields are optional
// and rendered only when present.
type Principle struct {
	Principle                string `yaml:"principle" json:"principle"`
	Physics                  string `yaml:"physics,omitempty" json:"physics,omitempty"`
	Mechanism                string `yaml:"mechanism,omitempty" json:"mechanism,omitempty"`
	Discovery                string `yaml:"discovery,omitempty" json:"discovery,omitempty"`
	Hypothesis               string `yaml:"hypothesis,omitempty" json:"hypothesis,omitempty"`
	VisualConsequence        string `yaml:"visual_consequence,omitempty" json:"visual_consequence,omitempty"`
	VisualSignature          string `yaml:"visual_signature,omitempty" json:"visual_signature,omitempty"`
	GeneExpression           string `yaml:"gene_expression,omitempty" json:"gene_expression,omitempty"`
	PhilosophicalImplication string `yaml:"philosophical_implication,omitempty" json:"philosophical_implication,omitempty"`
}

// NamedPrinciple pairs a display title with its principle entry.
type NamedPrinciple struct {
	Title     string
	Principle Principle
}

// OrderedPrinciples returns the five principles in their canonical render
// order.
func (i Intentionality) OrderedPrinciples() []NamedPrinciple {
	return []NamedPrinciple{
		{Title: "Symmetry Determines Motion", Principle: i.SymmetryDeterminesMotion},
		{Title: "Self-Assembly Emergence", Principle: i.SelfAssemblyEmergence},
		{Title: "Age Reversal Paradox", Principle: i.AgeReversalParadox},
		{Title: "Wound Healing Mechanism", Principle: i.WoundHealingMechanism},
		{Title: "Cilia as Computational Element", Principle: i.CiliaAsComputationalElement},
	}
}

// Morphisms holds the named deterministic rule tables.
type Morphisms struct {
	ShapeToMovement ShapeToMovement `yaml:"shape_to_movement" json:"shape_to_movement"`
	SizeToBehavior  SizeToBehavior  `yaml:"size_to_behavior" json:"size_to_behavior"`
}

// ShapeToMovement maps shape/cilia combinations onto movement classes.
type ShapeToMovement struct {
	Description string                       `yaml:"description,omitempty" json:"description,omitempty"`
	Mappings    map[string]ShapeMovementRule `yaml:"mappings" json:"mappings"`
}

// ShapeMovementRule is one row of the shape_to_movement table.
type ShapeMovementRule struct {
	Shape    Shape        `yaml:"shape" json:"shape"`
	Cilia    CiliaPattern `yaml:"cilia" json:"cilia"`
	Movement string       `yaml:"movement" json:"movement"`
	Reason   string       `yaml:"reason" json:"reason"`
}

// SizeToBehavior maps size bands onto behavioral tendencies.
type SizeToBehavior struct {
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Mappings    map[string]SizeBand `yaml:"mappings" json:"mappings"`
}

// SizeBand is one row of the size_to_behavior table.
type SizeBand struct {
	SizeRange string `yaml:"size_range" json:"size_range"`
	Tendency  string `yaml:"tendency" json:"tendency"`
	Reason    string `yaml:"reason" json:"reason"`
}

// VisualParameters holds the rendering lookup tables keyed by pattern or
// style. Values are free-form attribute maps; keys within each entry are
// dataset-defined.
type VisualParameters struct {
	MorphotypeToSilhouette map[Morphotype]map[string]string   `yaml:"morphotype_to_silhouette" json:"morphotype_to_silhouette"`
	ImagingStylePalette    map[string]map[string]string       `yaml:"imaging_style_palette" json:"imaging_style_palette"`
	CiliaCoronaRendering   map[CiliaPattern]map[string]string `yaml:"cilia_corona_rendering" json:"cilia_corona_rendering"`
	MovementVisualization  map[string]map[string]string       `yaml:"movement_visualization" json:"movement_visualization"`
}

// BehaviorEntry describes one collective behavior. Entries are keyed by the
// behavior tag with underscores stripped.
type BehaviorEntry struct {
	Description     string `yaml:"description" json:"description"`
	VisualSignature string `yaml:"visual_signature" json:"visual_signature"`
	Scalability     string `yaml:"scalability" json:"scalability"`
}

// CompositionTarget describes a sibling domain this taxonomy composes with.
type CompositionTarget struct {
	SharedStructure       []string               `yaml:"shared_structure" json:"shared_structure"`
	NaturalTransformation *NaturalTransformation `yaml:"natural_transformation,omitempty" json:"natural_transformation,omitempty"`
	ConceptualBridge      map[string]string      `yaml:"conceptual_bridge,omitempty" json:"conceptual_bridge,omitempty"`
	FunctionalMapping     map[string]string      `yaml:"functional_mapping,omitempty" json:"functional_mapping,omitempty"`
}

// NaturalTransformation maps this domain's components onto another's.
type NaturalTransformation struct {
	Source     string            `yaml:"source" json:"source"`
	Target     string            `yaml:"target" json:"target"`
	Components map[string]string `yaml:"components" json:"components"`
}

// Citations carries research attribution.
type Citations struct {
	PrimarySource      string              `yaml:"primary_source" json:"primary_source"`
	LifeCycleSource    string              `yaml:"life_cycle_source" json:"life_cycle_source"`
	LevinPhilosophy    string              `yaml:"levin_philosophy" json:"levin_philosophy"`
	EducationalGateway *EducationalGateway `yaml:"educational_gateway,omitempty" json:"educational_gateway,omitempty"`
}

// EducationalGateway lists public learning resources.
type EducationalGateway struct {
	Description string   `yaml:"description" json:"description"`
	Links       []string `yaml:"links" json:"links"`
}

// SynthesisGuidance carries the downstream synthesis instructions attached
// to assembled visualization records.
type SynthesisGuidance struct {
	ForCreativeSynthesis string `yaml:"for_creative_synthesis" json:"for_creative_synthesis"`
}

// Type returns the types entry for a morphotype.
func (t *Taxonomy) Type(m Morphotype) (TypeEntry, bool) {
	entry, ok := t.Types[m]
	return entry, ok
}

// Movement returns the movement class entry for a movement key.
func (t *Taxonomy) Movement(key string) (MovementType, bool) {
	entry, ok := t.MovementTypes[key]
	return entry, ok
}

// Stage returns the life-stage entry for a canonical stage key.
func (t *Taxonomy) Stage(s LifeStage) (StageEntry, bool) {
	entry, ok := t.LifeStages[s]
	return entry, ok
}

// Silhouette returns the silhouette rendering table for a morphotype.
func (t *Taxonomy) Silhouette(m Morphotype) (map[string]string, bool) {
	entry, ok := t.VisualParameters.MorphotypeToSilhouette[m]
	return entry, ok
}

// Palette returns the rendering palette for an imaging style.
func (t *Taxonomy) Palette(style string) (map[string]string, bool) {
	entry, ok := t.VisualParameters.ImagingStylePalette[style]
	return entry, ok
}

// ImagingStyles returns the known imaging style names in sorted order, for
// use as guidance on failed lookups.
func (t *Taxonomy) ImagingStyles() []string {
	styles := make([]string, 0, len(t.VisualParameters.ImagingStylePalette))
	for style := range t.VisualParameters.ImagingStylePalette {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	return styles
}

// CiliaRendering returns the corona rendering table for a cilia pattern.
func (t *Taxonomy) CiliaRendering(p CiliaPattern) (map[string]string, bool) {
	entry, ok := t.VisualParameters.CiliaCoronaRendering[p]
	return entry, ok
}

// MovementRendering returns the motion rendering table for a visualization
// key.
func (t *Taxonomy) MovementRendering(key string) (map[string]string, bool) {
	entry, ok := t.VisualParameters.MovementVisualization[key]
	return entry, ok
}

// ShapeRule resolves a shape/cilia pair through the shape_to_movement table.
func (t *Taxonomy) ShapeRule(shape Shape, cilia CiliaPattern) (ShapeMovementRule, bool) {
	key, ok := ShapeRuleKey(shape, cilia)
	if !ok {
		return ShapeMovementRule{}, false
	}
	rule, ok := t.Morphisms.ShapeToMovement.Mappings[key]
	return rule, ok
}

// SizeBand returns the size_to_behavior row for a size category.
func (t *Taxonomy) SizeBand(c SizeCategory) (SizeBand, bool) {
	key, ok := c.BandKey()
	if !ok {
		return SizeBand{}, false
	}
	band, ok := t.Morphisms.SizeToBehavior.Mappings[key]
	return band, ok
}

// CollectiveBehavior returns the behaviors entry for a behavior tag. The
// dataset keys behaviors with underscores stripped, so the tag is folded
// before lookup.
func (t *Taxonomy) CollectiveBehavior(b Behavior) (BehaviorEntry, bool) {
	entry, ok := t.Behaviors[strings.ReplaceAll(string(b), "_", "")]
	return entry, ok
}

// MovementKeys returns the movement class names in sorted order.
func (t *Taxonomy) MovementKeys() []string {
	keys := make([]string, 0, len(t.MovementTypes))
	for key := range t.MovementTypes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
