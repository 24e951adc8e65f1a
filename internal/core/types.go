package core

import "anthromorph/pkg/olog"

// MovementRecord is the resolved movement identity of one shape/cilia
// combination. Constructed per call and discarded after the response.
type MovementRecord struct {
	Shape              olog.Shape        `json:"shape"`
	CiliaPattern       olog.CiliaPattern `json:"cilia_pattern"`
	MovementType       string            `json:"movement_type"`
	Speed              string            `json:"speed"`
	Trajectory         string            `json:"trajectory"`
	VisualSignature    string            `json:"visual_signature"`
	PhysicalReason     string            `json:"physical_reason"`
	MorphologicalCause string            `json:"morphological_cause"`
	Intentionality     string            `json:"intentionality"`
}

// MorphotypeSpec is the complete visual specification of one morphotype:
// the types entry, its silhouette rendering table, and the movement class
// fixed for it.
type MorphotypeSpec struct {
	Morphotype      olog.Morphotype   `json:"morphotype"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Silhouette      map[string]string `json:"silhouette"`
	TypicalMovement olog.MovementType `json:"typical_movement"`
	VisualIdentity  string            `json:"visual_identity"`
}

// RangeWarning marks a size outside the closed [30,500] domain. It is
// guidance, not a hard failure: callers may proceed with an approximate
// size.
type RangeWarning struct {
	Message    string  `json:"warning"`
	ValidRange string  `json:"valid_range"`
	InputSize  float64 `json:"input_size"`
}

// SizeEffect is the behavioral reading of one body size. Inside the domain
// it carries both partitions of the input: the three-band category and the
// finer human-scale reference. Outside the domain only Warning is set.
type SizeEffect struct {
	SizeMicrometers    float64           `json:"size_micrometers"`
	SizeCategory       olog.SizeCategory `json:"size_category,omitempty"`
	SizeRange          string            `json:"size_range,omitempty"`
	BehavioralTendency string            `json:"behavioral_tendency,omitempty"`
	PhysicalReason     string            `json:"physical_reason,omitempty"`
	ScaleReference     string            `json:"scale_reference,omitempty"`
	VisualImpact       string            `json:"visual_impact,omitempty"`
	Warning            *RangeWarning     `json:"range_warning,omitempty"`
}

// SequenceStage is one element of a generated life-cycle progression.
type SequenceStage struct {
	StageName        olog.LifeStage `json:"stage_name"`
	Timepoint        string         `json:"timepoint"`
	Morphology       string         `json:"morphology"`
	VisualAppearance string         `json:"visual_appearance"`
	SizeMicrometers  float64        `json:"size_micrometers"`
	GeneExpression   string         `json:"gene_expression"`
	KeyEvent         string         `json:"key_event"`
}

// Sequence is a validated inclusive slice of the five-stage developmental
// order, with per-stage derived sizes. The timespan label echoes the
// caller's raw stage names; the critical transitions list is fixed
// narrative metadata, not derived from the range.
type Sequence struct {
	Morphotype          olog.Morphotype `json:"morphotype"`
	SequenceLength      int             `json:"sequence_length"`
	TotalTimespan       string          `json:"total_timespan"`
	Stages              []SequenceStage `json:"stages"`
	CriticalTransitions []string        `json:"critical_transitions"`
}

// SwarmUnit is one synthetic member of a composed population. It exists
// only within a single composition call.
type SwarmUnit struct {
	BotID           int             `json:"bot_id"`
	Morphotype      olog.Morphotype `json:"morphotype"`
	SizeMicrometers float64         `json:"size_micrometers"`
	Specs           MorphotypeSpec  `json:"specs"`
}

// SwarmComposition aggregates the population-level counts of one swarm.
type SwarmComposition struct {
	TotalBots              int                     `json:"total_bots"`
	MorphotypeDistribution map[olog.Morphotype]int `json:"morphotype_distribution"`
	SizeRange              string                  `json:"size_range"`
}

// ArrangementSpec is the spatial layout policy chosen for a behavior tag.
type ArrangementSpec struct {
	Type        olog.Arrangement `json:"type"`
	Description string           `json:"description,omitempty"`
	Spacing     string           `json:"spacing,omitempty"`
}

// CollectiveBehavior describes the group activity of a swarm. Fields
// degrade to fixed placeholder text when the taxonomy lacks an entry.
type CollectiveBehavior struct {
	BehaviorType    olog.Behavior `json:"behavior_type"`
	Description     string        `json:"description"`
	VisualSignature string        `json:"visual_signature"`
	Scale           string        `json:"scale"`
}

// SwarmImaging carries the fixed frame-level imaging parameters of a
// multi-subject scene.
type SwarmImaging struct {
	Style            string `json:"style"`
	FrameComposition string `json:"frame_composition"`
	DepthOfField     string `json:"depth_of_field"`
	VisualComplexity string `json:"visual_complexity"`
}

// SwarmSpec is the full composed population record.
type SwarmSpec struct {
	Composition        SwarmComposition   `json:"swarm_composition"`
	IndividualBots     []SwarmUnit        `json:"individual_bots"`
	SpatialArrangement ArrangementSpec    `json:"spatial_arrangement"`
	CollectiveBehavior CollectiveBehavior `json:"collective_behavior"`
	ImagingParameters  SwarmImaging       `json:"imaging_parameters"`
	SynthesisNote      string             `json:"synthesis_note"`
}

// AnthrobotSpecification is the identity header of an assembled
// visualization record.
type AnthrobotSpecification struct {
	Morphotype      olog.Morphotype `json:"morphotype"`
	Name            string          `json:"name"`
	SizeMicrometers float64         `json:"size_micrometers"`
	LifeStage       olog.LifeStage  `json:"life_stage"`
}

// CiliaCorona pairs the morphotype's fixed ciliation pattern with its
// rendering table.
type CiliaCorona struct {
	Pattern        olog.CiliaPattern `json:"pattern"`
	Rendering      map[string]string `json:"rendering"`
	VisualIdentity string            `json:"visual_identity"`
}

// MovementSignature describes how the subject's motion should read in the
// rendered frame.
type MovementSignature struct {
	Type            string            `json:"type"`
	Speed           string            `json:"speed"`
	Trajectory      string            `json:"trajectory"`
	VisualSignature string            `json:"visual_signature"`
	Rendering       map[string]string `json:"rendering"`
}

// ScaleContext anchors the subject's size against human-scale references.
type ScaleContext struct {
	Size         float64           `json:"size"`
	Category     olog.SizeCategory `json:"category,omitempty"`
	Reference    string            `json:"reference,omitempty"`
	VisualImpact string            `json:"visual_impact,omitempty"`
	Warning      *RangeWarning     `json:"range_warning,omitempty"`
}

// LifeStageCharacteristics carries the static descriptive facts of the
// subject's current stage.
type LifeStageCharacteristics struct {
	Stage            olog.LifeStage `json:"stage"`
	Timepoint        string         `json:"timepoint"`
	Morphology       string         `json:"morphology"`
	VisualAppearance string         `json:"visual_appearance"`
}

// ImagingAesthetics selects the rendering palette and modality.
type ImagingAesthetics struct {
	Style    string            `json:"style"`
	Palette  map[string]string `json:"palette"`
	Modality string            `json:"modality"`
}

// VisualizationSpec is the aggregate record for one visualization request.
// Assembly is all-or-nothing: any sub-resolution failure aborts it.
type VisualizationSpec struct {
	Specifications        AnthrobotSpecification   `json:"anthrobot_specifications"`
	SilhouetteGeometry    map[string]string        `json:"silhouette_geometry"`
	CiliaCorona           CiliaCorona              `json:"cilia_corona"`
	MovementSignature     MovementSignature        `json:"movement_signature"`
	ScaleContext          ScaleContext             `json:"scale_context"`
	LifeStage             LifeStageCharacteristics `json:"life_stage_characteristics"`
	ImagingAesthetics     ImagingAesthetics        `json:"imaging_aesthetics"`
	SynthesisInstructions string                   `json:"synthesis_instructions"`
}
