package blocks

import (
	"strings"
	"testing"

	"landing-builder-backend/internal/models"
)

func TestMatchFindsTaggedTemplates(t *testing.T) {
	lib := NewLibrary()

	matches := lib.Match("crie uma landing page para minha academia")
	if len(matches) < 2 {
		t.Fatalf("expected at least 2 academia templates, got %d", len(matches))
	}
	for _, tpl := range matches {
		tagged := false
		for _, tag := range tpl.Tags {
			if strings.Contains("crie uma landing page para minha academia", tag) {
				tagged = true
			}
		}
		if !tagged {
			t.Fatalf("template %s matched without a matching tag", tpl.ID)
		}
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	lib := NewLibrary()

	lower := lib.Match("preciso de testimonials e logos")
	upper := lib.Match("PRECISO DE TESTIMONIALS E LOGOS")
	if len(lower) == 0 {
		t.Fatal("expected matches for testimonials request")
	}
	if len(lower) != len(upper) {
		t.Fatalf("case changed the match set: %d vs %d", len(lower), len(upper))
	}
}

func TestMatchReturnsNothingForUnrelatedRequest(t *testing.T) {
	lib := NewLibrary()

	if matches := lib.Match("xyzzy"); len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
	if matches := lib.Match("   "); len(matches) != 0 {
		t.Fatalf("expected no matches for blank request, got %d", len(matches))
	}
}

func TestInstantiateAssignsFreshIDs(t *testing.T) {
	lib := NewLibrary()
	tpl, ok := lib.ByID("hero-full-width")
	if !ok {
		t.Fatal("hero-full-width template missing")
	}

	first, err := lib.Instantiate(tpl, Overrides{})
	if err != nil {
		t.Fatalf("instantiate failed: %v", err)
	}
	second, err := lib.Instantiate(tpl, Overrides{})
	if err != nil {
		t.Fatalf("instantiate failed: %v", err)
	}

	if first.Base().ID == "" || first.Base().ID == second.Base().ID {
		t.Fatalf("expected unique ids, got %q and %q", first.Base().ID, second.Base().ID)
	}
}

func TestInstantiateAppliesOverridesWithoutMutatingTemplate(t *testing.T) {
	lib := NewLibrary()
	tpl, ok := lib.ByID("features-grid")
	if !ok {
		t.Fatal("features-grid template missing")
	}
	originalOrder := tpl.Section.Base().Order

	order := 9
	section, err := lib.Instantiate(tpl, Overrides{ID: "fixed-id", Order: &order})
	if err != nil {
		t.Fatalf("instantiate failed: %v", err)
	}

	if section.Base().ID != "fixed-id" || section.Base().Order != 9 {
		t.Fatalf("overrides not applied: %+v", section.Base())
	}
	if tpl.Section.Base().Order != originalOrder || tpl.Section.Base().ID != "" {
		t.Fatalf("catalog template was mutated: %+v", tpl.Section.Base())
	}

	features, ok := section.(*models.FeaturesSection)
	if !ok {
		t.Fatalf("expected *FeaturesSection, got %T", section)
	}
	features.Items[0].Title = "changed"
	original := tpl.Section.(*models.FeaturesSection)
	if original.Items[0].Title == "changed" {
		t.Fatal("instantiated copy shares memory with the template")
	}
}

func TestCatalogSectionsPassValidation(t *testing.T) {
	lib := NewLibrary()
	for _, tpl := range lib.Templates() {
		if tpl.Section.SectionType() != tpl.Type {
			t.Fatalf("template %s: type mismatch %s vs %s", tpl.ID, tpl.Section.SectionType(), tpl.Type)
		}
		if len(tpl.Tags) == 0 {
			t.Fatalf("template %s has no tags", tpl.ID)
		}
	}
}
