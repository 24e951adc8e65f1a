package render

import (
	"strings"
	"testing"

	"anthromorph/pkg/olog"

	"github.com/google/go-cmp/cmp"
)

func defaultTaxonomy(t *testing.T) *olog.Taxonomy {
	t.Helper()
	tax, err := olog.Default()
	if err != nil {
		t.Fatalf("default taxonomy: %v", err)
	}
	return tax
}

func TestMorphotypesListsAllThree(t *testing.T) {
	doc := Morphotypes(defaultTaxonomy(t))
	if !strings.HasPrefix(doc, "# Anthrobot Morphotypes") {
		t.Fatalf("heading missing:\n%s", doc)
	}
	for _, m := range olog.Morphotypes() {
		if !strings.Contains(doc, "**Type:** "+string(m)) {
			t.Fatalf("morphotype %s missing from document", m)
		}
	}
	if got := strings.Count(doc, "\n## "); got != 3 {
		t.Fatalf("sections = %d, want 3", got)
	}
}

func TestMovementVocabularyCoversAllClasses(t *testing.T) {
	tax := defaultTaxonomy(t)
	doc := MovementVocabulary(tax)
	for _, heading := range []string{"Circular Swimmer", "Stationary Wiggler", "Straight Swimmer"} {
		if !strings.Contains(doc, "## "+heading) {
			t.Fatalf("heading %q missing:\n%s", heading, doc)
		}
	}
	for _, field := range []string{"**Morphological Cause:**", "**Speed:**", "**Trajectory:**", "**Visual Signature:**", "**Intentionality:**"} {
		if got := strings.Count(doc, field); got != len(tax.MovementKeys()) {
			t.Fatalf("%s appears %d times, want %d", field, got, len(tax.MovementKeys()))
		}
	}
}

func TestLifeCycleStagesInTemporalOrder(t *testing.T) {
	doc := LifeCycleStages(defaultTaxonomy(t))
	headings := []string{
		"## Progenitor Cell",
		"## Early Spheroid",
		"## Eversion",
		"## Mature Anthrobot",
		"## Senescence",
	}
	last := -1
	for _, heading := range headings {
		pos := strings.Index(doc, heading)
		if pos < 0 {
			t.Fatalf("heading %q missing:\n%s", heading, doc)
		}
		if pos < last {
			t.Fatalf("heading %q out of temporal order", heading)
		}
		last = pos
	}
}

func TestImagingAestheticsSections(t *testing.T) {
	doc := ImagingAesthetics(defaultTaxonomy(t))
	for _, fragment := range []string{
		"### Fluorescence Channels:",
		"### Composite Aesthetic:",
		"## Depth Coloring",
		"## Brightfield Microscopy",
	} {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("fragment %q missing:\n%s", fragment, doc)
		}
	}
}

func TestScaleReferencesSections(t *testing.T) {
	doc := ScaleReferences(defaultTaxonomy(t))
	for _, fragment := range []string{
		"## Cellular Scale Context",
		"**Comparisons:**",
		"## Relative to Source Cells",
		"- Scaling factor:",
	} {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("fragment %q missing:\n%s", fragment, doc)
		}
	}
}

func TestIntentionalityPrinciplesCanonicalOrder(t *testing.T) {
	doc := IntentionalityPrinciples(defaultTaxonomy(t))
	if !strings.Contains(doc, "## Core Principle:") {
		t.Fatalf("core principle missing:\n%s", doc)
	}
	headings := []string{
		"## Symmetry Determines Motion",
		"## Self-Assembly Emergence",
		"## Age Reversal Paradox",
		"## Wound Healing Mechanism",
		"## Cilia as Computational Element",
	}
	last := -1
	for _, heading := range headings {
		pos := strings.Index(doc, heading)
		if pos < 0 {
			t.Fatalf("heading %q missing", heading)
		}
		if pos < last {
			t.Fatalf("heading %q out of canonical order", heading)
		}
		last = pos
	}
}

func TestCompositionDomainsListsTargets(t *testing.T) {
	tax := defaultTaxonomy(t)
	doc := CompositionDomains(tax)
	if got := strings.Count(doc, "\n## "); got != len(tax.CompositionTargets) {
		t.Fatalf("sections = %d, want %d", got, len(tax.CompositionTargets))
	}
	if !strings.Contains(doc, "**Shared Structure:**") {
		t.Fatalf("shared structure missing:\n%s", doc)
	}
}

func TestResearchAttributionSections(t *testing.T) {
	doc := ResearchAttribution(defaultTaxonomy(t))
	for _, fragment := range []string{
		"## Primary Research Papers",
		"### Original Discovery (2023)",
		"### Life Cycle Study (2025)",
		"## Research Team",
		"Michael Levin",
		"## Key Concepts from Levin Lab",
	} {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("fragment %q missing:\n%s", fragment, doc)
		}
	}
}

func TestRenderersAreByteStable(t *testing.T) {
	tax := defaultTaxonomy(t)
	renderers := map[string]func(*olog.Taxonomy) string{
		"morphotypes":    Morphotypes,
		"movement":       MovementVocabulary,
		"life_cycle":     LifeCycleStages,
		"imaging":        ImagingAesthetics,
		"scale":          ScaleReferences,
		"intentionality": IntentionalityPrinciples,
		"composition":    CompositionDomains,
		"attribution":    ResearchAttribution,
	}
	for name, render := range renderers {
		first := render(tax)
		if first == "" {
			t.Fatalf("%s rendered empty", name)
		}
		for i := 0; i < 3; i++ {
			if diff := cmp.Diff(first, render(tax)); diff != "" {
				t.Fatalf("%s not byte-stable (-first +repeat):\n%s", name, diff)
			}
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"circular_swimmer": "Circular Swimmer",
		"mature_anthrobot": "Mature Anthrobot",
		"nuclei":           "Nuclei",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Fatalf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
