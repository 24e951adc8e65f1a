// Package render builds markdown documents over a taxonomy handle. Each
// renderer is a pure string builder: map sections iterate in sorted or
// declaration order so repeated calls emit byte-identical output.
package render

import (
	"fmt"
	"sort"
	"strings"

	"anthromorph/pkg/olog"
)

// titleCase turns a snake_case dataset key into a display heading.
func titleCase(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Morphotypes renders the three-morphotype overview.
func Morphotypes(tax *olog.Taxonomy) string {
	var b strings.Builder
	b.WriteString("# Anthrobot Morphotypes (from Gumuskaya et al. 2023)\n\n")
	for _, m := range olog.Morphotypes() {
		entry, ok := tax.Type(m)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", entry.Name)
		fmt.Fprintf(&b, "**Type:** %s\n", m)
		fmt.Fprintf(&b, "**Description:** %s\n\n", entry.Description)
	}
	return b.String()
}

// MovementVocabulary renders the movement class taxonomy.
func MovementVocabulary(tax *olog.Taxonomy) string {
	var b strings.Builder
	b.WriteString("# Anthrobot Movement Vocabulary\n\n")
	b.WriteString("Movement emerges deterministically from morphology:\n\n")
	for _, key := range tax.MovementKeys() {
		movement, _ := tax.Movement(key)
		fmt.Fprintf(&b, "## %s\n", titleCase(key))
		fmt.Fprintf(&b, "**Morphological Cause:** %s\n", movement.MorphologicalCause)
		fmt.Fprintf(&b, "**Speed:** %s\n", movement.Speed)
		fmt.Fprintf(&b, "**Trajectory:** %s\n", movement.Trajectory)
		fmt.Fprintf(&b, "**Visual Signature:** %s\n", movement.VisualSignature)
		fmt.Fprintf(&b, "**Intentionality:** %s\n\n", movement.Intentionality)
	}
	return b.String()
}

// LifeCycleStages renders the five-stage developmental progression in
// temporal order. Optional stage fields appear only when the dataset
// carries them.
func LifeCycleStages(tax *olog.Taxonomy) string {
	var b strings.Builder
	b.WriteString("# Anthrobot Life Cycle (45-60 day lifespan)\n\n")
	for _, stage := range olog.StageOrder() {
		entry, ok := tax.Stage(stage)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", titleCase(string(stage)))
		fmt.Fprintf(&b, "**Timepoint:** %s\n", entry.Timepoint)
		fmt.Fprintf(&b, "**Morphology:** %s\n", entry.Morphology)
		fmt.Fprintf(&b, "**Visual:** %s\n", entry.Visual)
		if entry.GeneExpression != "" {
			fmt.Fprintf(&b, "**Gene Expression:** %s\n", entry.GeneExpression)
		}
		if entry.Event != "" {
			fmt.Fprintf(&b, "**Key Event:** %s\n", entry.Event)
		}
		if entry.EpigeneticState != "" {
			fmt.Fprintf(&b, "**Epigenetic State:** %s\n", entry.EpigeneticState)
		}
		if entry.Behavior != "" {
			fmt.Fprintf(&b, "**Behavior:** %s\n", entry.Behavior)
		}
		if entry.Fate != "" {
			fmt.Fprintf(&b, "**Fate:** %s\n", entry.Fate)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ImagingAesthetics renders the microscopy modality vocabulary.
func ImagingAesthetics(tax *olog.Taxonomy) string {
	imaging := tax.ImagingModalities
	fluor := imaging.FluorescenceMultichannel

	var b strings.Builder
	b.WriteString("# Anthrobot Imaging Aesthetics\n\n")
	fmt.Fprintf(&b, "## %s\n\n", fluor.Description)

	b.WriteString("### Fluorescence Channels:\n\n")
	for _, name := range sortedKeys(fluor.Channels) {
		channel := fluor.Channels[name]
		fmt.Fprintf(&b, "**%s**\n", titleCase(name))
		fmt.Fprintf(&b, "- Stain: %s\n", channel.Stain)
		fmt.Fprintf(&b, "- Color: %s\n", channel.Color)
		fmt.Fprintf(&b, "- Targets: %s\n", channel.Targets)
		fmt.Fprintf(&b, "- Visual Effect: %s\n\n", channel.VisualEffect)
	}

	b.WriteString("### Composite Aesthetic:\n")
	composite := fluor.CompositeAesthetic
	fmt.Fprintf(&b, "- Corona Effect: %s\n", composite.CoronaEffect)
	fmt.Fprintf(&b, "- Depth Perception: %s\n", composite.DepthPerception)
	fmt.Fprintf(&b, "- Color Harmony: %s\n\n", composite.ColorHarmony)

	b.WriteString("## Depth Coloring\n")
	fmt.Fprintf(&b, "**Description:** %s\n", imaging.DepthColoring.Description)
	fmt.Fprintf(&b, "**Visual Effect:** %s\n", imaging.DepthColoring.VisualEffect)
	fmt.Fprintf(&b, "**Aesthetic:** %s\n\n", imaging.DepthColoring.Aesthetic)

	b.WriteString("## Brightfield Microscopy\n")
	fmt.Fprintf(&b, "**Description:** %s\n", imaging.BrightfieldMicroscopy.Description)
	fmt.Fprintf(&b, "**Visual Effect:** %s\n", imaging.BrightfieldMicroscopy.VisualEffect)
	fmt.Fprintf(&b, "**Aesthetic:** %s\n", imaging.BrightfieldMicroscopy.Aesthetic)
	return b.String()
}

// ScaleReferences renders the human-scale size context.
func ScaleReferences(tax *olog.Taxonomy) string {
	scale := tax.ScaleReferences

	var b strings.Builder
	b.WriteString("# Anthrobot Scale Context\n\n")
	b.WriteString("## Cellular Scale Context\n")
	fmt.Fprintf(&b, "**Anthrobot Size Range:** %s\n\n", scale.CellularScale.AnthrobotSize)
	b.WriteString("**Comparisons:**\n")
	for _, comparison := range scale.CellularScale.Comparison {
		fmt.Fprintf(&b, "- %s\n", comparison)
	}
	fmt.Fprintf(&b, "\n**Visual Niche:** %s\n\n", scale.CellularScale.VisualNiche)

	b.WriteString("## Relative to Source Cells\n")
	fmt.Fprintf(&b, "- Single tracheal cell: %s\n", scale.RelativeToSource.SingleCell)
	fmt.Fprintf(&b, "- Mature anthrobot: %s\n", scale.RelativeToSource.MatureBot)
	fmt.Fprintf(&b, "- Scaling factor: %s\n", scale.RelativeToSource.ScalingFactor)
	return b.String()
}

// IntentionalityPrinciples renders the framework principles in their
// canonical order.
func IntentionalityPrinciples(tax *olog.Taxonomy) string {
	intent := tax.Intentionality

	var b strings.Builder
	b.WriteString("# Anthrobot Intentionality Principles\n\n")
	fmt.Fprintf(&b, "## Core Principle: %s\n", intent.CorePrinciple.Concept)
	fmt.Fprintf(&b, "%s\n\n", intent.CorePrinciple.Explanation)
	fmt.Fprintf(&b, "### Levin Framework:\n%s\n\n", intent.CorePrinciple.LevinFramework)

	for _, named := range intent.OrderedPrinciples() {
		p := named.Principle
		fmt.Fprintf(&b, "## %s\n", named.Title)
		fmt.Fprintf(&b, "**Principle:** %s\n", p.Principle)
		if p.Physics != "" {
			fmt.Fprintf(&b, "**Physics:** %s\n", p.Physics)
		}
		if p.Mechanism != "" {
			fmt.Fprintf(&b, "**Mechanism:** %s\n", p.Mechanism)
		}
		if p.Discovery != "" {
			fmt.Fprintf(&b, "**Discovery:** %s\n", p.Discovery)
		}
		if p.Hypothesis != "" {
			fmt.Fprintf(&b, "**Hypothesis:** %s\n", p.Hypothesis)
		}
		if p.VisualConsequence != "" {
			fmt.Fprintf(&b, "**Visual Consequence:** %s\n", p.VisualConsequence)
		}
		if p.VisualSignature != "" {
			fmt.Fprintf(&b, "**Visual Signature:** %s\n", p.VisualSignature)
		}
		if p.GeneExpression != "" {
			fmt.Fprintf(&b, "**Gene Expression:** %s\n", p.GeneExpression)
		}
		if p.PhilosophicalImplication != "" {
			fmt.Fprintf(&b, "**Philosophical Implication:** %s\n", p.PhilosophicalImplication)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// CompositionDomains renders the sibling domains this taxonomy composes
// with.
func CompositionDomains(tax *olog.Taxonomy) string {
	var b strings.Builder
	b.WriteString("# Composition Opportunities for Anthrobot Morphology\n\n")
	for _, name := range sortedKeys(tax.CompositionTargets) {
		target := tax.CompositionTargets[name]
		fmt.Fprintf(&b, "## %s\n", titleCase(name))
		b.WriteString("**Shared Structure:**\n")
		for _, structure := range target.SharedStructure {
			fmt.Fprintf(&b, "- %s\n", structure)
		}
		if trans := target.NaturalTransformation; trans != nil {
			b.WriteString("\n**Natural Transformation:**\n")
			fmt.Fprintf(&b, "- Source: %s\n", trans.Source)
			fmt.Fprintf(&b, "- Target: %s\n", trans.Target)
			b.WriteString("- Component mappings:\n")
			for _, component := range sortedKeys(trans.Components) {
				fmt.Fprintf(&b, "  - %s: %s\n", component, trans.Components[component])
			}
		}
		if len(target.ConceptualBridge) > 0 {
			b.WriteString("\n**Conceptual Bridge:**\n")
			for _, concept := range sortedKeys(target.ConceptualBridge) {
				fmt.Fprintf(&b, "- %s: %s\n", concept, target.ConceptualBridge[concept])
			}
		}
		if len(target.FunctionalMapping) > 0 {
			b.WriteString("\n**Functional Mapping:**\n")
			for _, function := range sortedKeys(target.FunctionalMapping) {
				fmt.Fprintf(&b, "- %s: %s\n", function, target.FunctionalMapping[function])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ResearchAttribution renders citations and educational resources.
func ResearchAttribution(tax *olog.Taxonomy) string {
	citations := tax.Citations

	var b strings.Builder
	b.WriteString("# Anthrobot Research Attribution\n\n")
	b.WriteString("## Primary Research Papers\n\n")
	fmt.Fprintf(&b, "### Original Discovery (2023)\n%s\n\n", citations.PrimarySource)
	fmt.Fprintf(&b, "### Life Cycle Study (2025)\n%s\n\n", citations.LifeCycleSource)
	fmt.Fprintf(&b, "### Philosophical Framework\n%s\n\n", citations.LevinPhilosophy)

	if gateway := citations.EducationalGateway; gateway != nil {
		b.WriteString("## Educational Resources\n\n")
		fmt.Fprintf(&b, "%s\n\n", gateway.Description)
		b.WriteString("**Links:**\n")
		for _, link := range gateway.Links {
			fmt.Fprintf(&b, "- %s\n", link)
		}
	}

	b.WriteString("\n## Research Team\n")
	b.WriteString("- **Michael Levin, PhD** - Director, Allen Discovery Center at Tufts\n")
	b.WriteString("- **Gizem Gumuskaya** - Lead researcher\n")
	b.WriteString("- **Tufts University** - Allen Discovery Center\n\n")

	b.WriteString("## Key Concepts from Levin Lab\n")
	b.WriteString("- Morphological computation\n")
	b.WriteString("- Bioelectric signaling in development\n")
	b.WriteString("- Synthetic morphology as research platform\n")
	b.WriteString("- Platonic morphospace navigation\n")
	b.WriteString("- Regenerative medicine applications\n")
	return b.String()
}
