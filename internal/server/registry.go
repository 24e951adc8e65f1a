// Package server exposes the engine over JSON-RPC 2.0 tool calls, with
// stdio and HTTP transports.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"anthromorph/docs/schema"
	"anthromorph/internal/core"
	"anthromorph/internal/render"
	"anthromorph/pkg/olog"
)

// Tool-boundary defaults. Omitted arguments take these values before the
// engine sees them; the engine itself has no defaults.
const (
	defaultSizeMicrometers = 150.0
	defaultLifeStage       = "mature"
	defaultImagingStyle    = "scientific"
	defaultStartStage      = "progenitor"
	defaultEndStage        = "mature"
	defaultBotCount        = 5
	defaultBehavior        = olog.Behavior("swimming")
)

// ContentBlock is one piece of tool output.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the outcome of one tool call. Domain failures set IsError
// and describe the failure in the content; they are not protocol errors.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

func textResult(text string) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

func jsonResult(v any) (ToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ToolResult{}, fmt.Errorf("encode tool result: %w", err)
	}
	return textResult(string(data)), nil
}

func errorResult(err error) ToolResult {
	return ToolResult{
		Content: []ContentBlock{{Type: "text", Text: err.Error()}},
		IsError: true,
	}
}

// UnknownToolError reports a tool name absent from the registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string { return fmt.Sprintf("unknown tool %q", e.Name) }

// ParamError reports tool arguments that fail structural decoding. It maps
// to the invalid-params protocol code, unlike domain failures.
type ParamError struct {
	Tool   string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, e.Reason)
}

type handler func(ctx context.Context, args json.RawMessage) (ToolResult, error)

// Tool is one registered operation with its listing metadata.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Registry maps tool names onto engine and renderer calls.
type Registry struct {
	service  *core.Service
	order    []string
	tools    map[string]Tool
	handlers map[string]handler
}

// decode parses tool arguments strictly: unknown keys are a structural
// failure, not a silent drop. A nil or empty payload decodes as {}.
func decode(tool string, args json.RawMessage, into any) error {
	if len(args) == 0 {
		args = []byte("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(args))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return &ParamError{Tool: tool, Reason: err.Error()}
	}
	return nil
}

// NewRegistry builds the full fifteen-tool registry over an engine
// service.
func NewRegistry(service *core.Service) *Registry {
	r := &Registry{
		service:  service,
		tools:    make(map[string]Tool),
		handlers: make(map[string]handler),
	}
	tax := service.Taxonomy()

	r.text("list_morphotypes",
		"List all three anthrobot morphotypes with descriptions.",
		func() string { return render.Morphotypes(tax) })
	r.text("get_movement_vocabulary",
		"Get the complete taxonomy of anthrobot movement types.",
		func() string { return render.MovementVocabulary(tax) })
	r.text("get_life_cycle_stages",
		"Get the temporal progression through the anthrobot life cycle.",
		func() string { return render.LifeCycleStages(tax) })
	r.text("get_imaging_aesthetics",
		"Get fluorescence microscopy imaging specifications and palettes.",
		func() string { return render.ImagingAesthetics(tax) })
	r.text("get_scale_references",
		"Get human-scale context for anthrobot sizes.",
		func() string { return render.ScaleReferences(tax) })
	r.text("get_intentionality_principles",
		"Get the framework principles behind anthrobot aesthetics.",
		func() string { return render.IntentionalityPrinciples(tax) })

	r.register("map_morphology_to_behavior",
		"Map a shape and cilia pattern to the resulting movement type.",
		r.mapMorphology)
	r.register("get_morphotype_specifications",
		"Get the complete visual specification of one morphotype.",
		r.morphotypeSpecifications)
	r.register("calculate_size_effects",
		"Calculate the behavioral and visual effects of a body size.",
		r.sizeEffects)
	r.register("generate_anthrobot_visualization",
		"Generate complete visual parameters for one anthrobot.",
		r.visualization)
	r.register("generate_life_cycle_sequence",
		"Generate a developmental progression between two life stages.",
		r.lifeCycleSequence)
	r.register("simulate_swarm_behavior",
		"Compose a multi-anthrobot scene with collective behavior.",
		r.swarm)
	r.register("get_wound_healing_scenario",
		"Get the fixed wound-healing bridge-formation scenario.",
		r.woundScenario)

	r.text("suggest_composition_domains",
		"Suggest sibling domains that compose with anthrobot morphology.",
		func() string { return render.CompositionDomains(tax) })
	r.text("get_research_attribution",
		"Get research citations and educational resources.",
		func() string { return render.ResearchAttribution(tax) })

	return r
}

func (r *Registry) register(name, description string, h handler) {
	input, ok := schema.ToolInput(name)
	if !ok {
		// Schemas ship in the same binary; a miss is a build defect.
		input = json.RawMessage(`{"type":"object","properties":{}}`)
	}
	r.order = append(r.order, name)
	r.tools[name] = Tool{Name: name, Description: description, InputSchema: input}
	r.handlers[name] = h
}

func (r *Registry) text(name, description string, renderDoc func() string) {
	r.register(name, description, func(ctx context.Context, args json.RawMessage) (ToolResult, error) {
		var empty struct{}
		if err := decode(name, args, &empty); err != nil {
			return ToolResult{}, err
		}
		return textResult(renderDoc()), nil
	})
}

// List returns the tool descriptors in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Call runs one tool. Unknown tools and malformed arguments return typed
// errors for the protocol layer; domain failures come back as error-marked
// tool results.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (ToolResult, error) {
	h, ok := r.handlers[name]
	if !ok {
		return ToolResult{}, &UnknownToolError{Name: name}
	}
	return h(ctx, args)
}

func (r *Registry) mapMorphology(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var in struct {
		Shape        string `json:"shape"`
		CiliaPattern string `json:"cilia_pattern"`
	}
	if err := decode("map_morphology_to_behavior", args, &in); err != nil {
		return ToolResult{}, err
	}
	if in.Shape == "" || in.CiliaPattern == "" {
		return ToolResult{}, &ParamError{Tool: "map_morphology_to_behavior", Reason: "shape and cilia_pattern are required"}
	}
	record, err := r.service.ResolveMovement(ctx, olog.Shape(in.Shape), olog.CiliaPattern(in.CiliaPattern))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(record)
}

func (r *Registry) morphotypeSpecifications(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var in struct {
		Morphotype string `json:"morphotype"`
	}
	if err := decode("get_morphotype_specifications", args, &in); err != nil {
		return ToolResult{}, err
	}
	if in.Morphotype == "" {
		return ToolResult{}, &ParamError{Tool: "get_morphotype_specifications", Reason: "morphotype is required"}
	}
	spec, err := r.service.ResolveMorphotype(ctx, olog.Morphotype(in.Morphotype))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(spec)
}

func (r *Registry) sizeEffects(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var in struct {
		SizeMicrometers *float64 `json:"size_micrometers"`
	}
	if err := decode("calculate_size_effects", args, &in); err != nil {
		return ToolResult{}, err
	}
	if in.SizeMicrometers == nil {
		return ToolResult{}, &ParamError{Tool: "calculate_size_effects", Reason: "size_micrometers is required"}
	}
	return jsonResult(r.service.ResolveSizeEffect(ctx, *in.SizeMicrometers))
}

func (r *Registry) visualization(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	in := struct {
		Morphotype      string   `json:"morphotype"`
		SizeMicrometers *float64 `json:"size_micrometers"`
		LifeStage       string   `json:"life_stage"`
		ImagingStyle    string   `json:"imaging_style"`
	}{LifeStage: defaultLifeStage, ImagingStyle: defaultImagingStyle}
	if err := decode("generate_anthrobot_visualization", args, &in); err != nil {
		return ToolResult{}, err
	}
	if in.Morphotype == "" {
		return ToolResult{}, &ParamError{Tool: "generate_anthrobot_visualization", Reason: "morphotype is required"}
	}
	size := defaultSizeMicrometers
	if in.SizeMicrometers != nil {
		size = *in.SizeMicrometers
	}
	spec, err := r.service.GenerateVisualization(ctx, olog.Morphotype(in.Morphotype), size, in.LifeStage, in.ImagingStyle)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(spec)
}

func (r *Registry) lifeCycleSequence(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	in := struct {
		Morphotype      string   `json:"morphotype"`
		StartStage      string   `json:"start_stage"`
		EndStage        string   `json:"end_stage"`
		SizeMicrometers *float64 `json:"size_micrometers"`
	}{StartStage: defaultStartStage, EndStage: defaultEndStage}
	if err := decode("generate_life_cycle_sequence", args, &in); err != nil {
		return ToolResult{}, err
	}
	if in.Morphotype == "" {
		return ToolResult{}, &ParamError{Tool: "generate_life_cycle_sequence", Reason: "morphotype is required"}
	}
	size := defaultSizeMicrometers
	if in.SizeMicrometers != nil {
		size = *in.SizeMicrometers
	}
	seq, err := r.service.GenerateSequence(ctx, olog.Morphotype(in.Morphotype), in.StartStage, in.EndStage, size)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(seq)
}

func (r *Registry) swarm(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	in := struct {
		BotCount      *int               `json:"bot_count"`
		MorphotypeMix map[string]float64 `json:"morphotype_mix"`
		Behavior      string             `json:"behavior"`
		ImagingStyle  string             `json:"imaging_style"`
	}{Behavior: string(defaultBehavior), ImagingStyle: defaultImagingStyle}
	if err := decode("simulate_swarm_behavior", args, &in); err != nil {
		return ToolResult{}, err
	}
	count := defaultBotCount
	if in.BotCount != nil {
		count = *in.BotCount
	}
	var mix map[olog.Morphotype]float64
	if in.MorphotypeMix != nil {
		mix = make(map[olog.Morphotype]float64, len(in.MorphotypeMix))
		for m, proportion := range in.MorphotypeMix {
			mix[olog.Morphotype(m)] = proportion
		}
	}
	spec, err := r.service.ComposeSwarm(ctx, count, mix, olog.Behavior(in.Behavior), in.ImagingStyle)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(spec)
}

func (r *Registry) woundScenario(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var empty struct{}
	if err := decode("get_wound_healing_scenario", args, &empty); err != nil {
		return ToolResult{}, err
	}
	return jsonResult(r.service.WoundHealingScenario(ctx))
}
