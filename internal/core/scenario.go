package core

// WoundFrame is one frame of the wound-healing time-lapse scenario.
type WoundFrame struct {
	Frame              int    `json:"frame"`
	Timepoint          string `json:"timepoint"`
	Description        string `json:"description"`
	GapWidth           string `json:"gap_width"`
	AnthrobotPositions string `json:"anthrobot_positions,omitempty"`
	AnthrobotCount     int    `json:"anthrobot_count,omitempty"`
	VisualNotes        string `json:"visual_notes,omitempty"`
	EmergentBehavior   string `json:"emergent_behavior,omitempty"`
	HealingEvidence    string `json:"healing_evidence,omitempty"`
	NeuralRegrowth     string `json:"neural_regrowth,omitempty"`
	AnthrobotState     string `json:"anthrobot_state,omitempty"`
	Outcome            string `json:"outcome,omitempty"`
}

// WoundScenarioContext summarizes the published science behind the
// scenario.
type WoundScenarioContext struct {
	Discovery     string `json:"discovery"`
	Mechanism     string `json:"mechanism"`
	HealingEffect string `json:"healing_effect"`
	Significance  string `json:"significance"`
}

// WoundImagingSpec fixes the channel assignments of the scenario.
type WoundImagingSpec struct {
	NeuralLayerStain  string `json:"neural_layer_stain"`
	AnthrobotCilia    string `json:"anthrobot_cilia"`
	NeuralRegrowth    string `json:"neural_regrowth"`
	Background        string `json:"background"`
	TimeLapseInterval string `json:"time_lapse_interval"`
}

// WoundVisualDrama names the aesthetic beats of the scenario.
type WoundVisualDrama struct {
	KeyMoment          string `json:"key_moment"`
	AestheticPrinciple string `json:"aesthetic_principle"`
	EmotionalImpact    string `json:"emotional_impact"`
	ScaleWonder        string `json:"scale_wonder"`
}

// WoundScenario is the complete four-frame wound-healing bridge record.
type WoundScenario struct {
	ScenarioName          string               `json:"scenario_name"`
	ScientificContext     WoundScenarioContext `json:"scientific_context"`
	VisualSequence        []WoundFrame         `json:"visual_sequence"`
	ImagingSpecifications WoundImagingSpec     `json:"imaging_specifications"`
	VisualDrama           WoundVisualDrama     `json:"visual_drama"`
	SynthesisGuidance     string               `json:"synthesis_guidance"`
}

const woundSynthesisGuidance = `This is the 'hero shot' of anthrobot research. Emphasize:
1. The GAP - make the wound/injury visually clear
2. The MIGRATION - show directional movement toward damage
3. The BRIDGE - linear chain formation is stunning
4. The HEALING - green regrowth crossing the bridge
5. The SCALE - this happens at cellular scale but has huge implications

Visual metaphor: Cellular emergency response team building living bridge.`

// WoundHealingScenario returns the fixed wound-healing bridge-formation
// record. The content is static narrative metadata carried verbatim; a
// fresh value is built per call so callers may annotate their copy.
func WoundHealingScenario() WoundScenario {
	return WoundScenario{
		ScenarioName: "Wound Healing Bridge Formation",
		ScientificContext: WoundScenarioContext{
			Discovery:     "Anthrobots spontaneously form bridges across neural damage",
			Mechanism:     "Unknown - possibly bioelectric sensing or chemotaxis",
			HealingEffect: "Neural regrowth occurs across anthrobot bridge",
			Significance:  "Demonstrates therapeutic potential for personalized medicine",
		},
		VisualSequence: []WoundFrame{
			{
				Frame:              1,
				Timepoint:          "T=0 (Initial state)",
				Description:        "Scratch/tear in red neural cell layer",
				GapWidth:           "100-300 micrometers",
				AnthrobotPositions: "Scattered around wound periphery",
				AnthrobotCount:     5,
				VisualNotes:        "Anthrobots randomly oriented, not yet wound-seeking",
			},
			{
				Frame:              2,
				Timepoint:          "T=30 minutes",
				Description:        "Anthrobots migrating toward wound",
				GapWidth:           "100-300 micrometers (unchanged)",
				AnthrobotPositions: "Moving into gap, beginning to align",
				VisualNotes:        "Yellow cilia coronas visible, trajectory traces showing convergence",
				EmergentBehavior:   "Collective wound-seeking initiated",
			},
			{
				Frame:              3,
				Timepoint:          "T=2 hours",
				Description:        "Bridge formation complete",
				GapWidth:           "100-300 micrometers (spanned)",
				AnthrobotPositions: "Linear chain spanning gap end-to-end",
				VisualNotes:        "Anthrobots in contact, forming continuous bridge",
				HealingEvidence:    "Green neural regrowth visible crossing bridge",
			},
			{
				Frame:          4,
				Timepoint:      "T=24-48 hours",
				Description:    "Tissue reconnection",
				GapWidth:       "Partially closed",
				NeuralRegrowth: "Complete reconnection across former gap",
				AnthrobotState: "Still present or beginning to disperse",
				Outcome:        "Functional neural repair achieved",
			},
		},
		ImagingSpecifications: WoundImagingSpec{
			NeuralLayerStain:  "Red (tight junctions or cell tracker)",
			AnthrobotCilia:    "Yellow (acetylated tubulin)",
			NeuralRegrowth:    "Green (growth marker)",
			Background:        "Black (fluorescence standard)",
			TimeLapseInterval: "5-15 minutes per frame",
		},
		VisualDrama: WoundVisualDrama{
			KeyMoment:          "Frame 3 - complete bridge spans gap",
			AestheticPrinciple: "Ant bridge structure - living scaffolding",
			EmotionalImpact:    "Adult cells collaborating to heal damage",
			ScaleWonder:        "Microscopic repair with macro-scale implications",
		},
		SynthesisGuidance: woundSynthesisGuidance,
	}
}
