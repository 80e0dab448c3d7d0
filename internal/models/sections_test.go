package models

import (
	"encoding/json"
	"testing"
)

func TestSectionListDecodesConcreteTypes(t *testing.T) {
	payload := `[
		{"id": "a", "type": "hero", "order": 0, "variant": "full-width", "headline": "H", "subheadline": "S", "ctaText": "Go"},
		{"id": "b", "type": "faq", "order": 1, "items": [{"id": "q1", "question": "Q", "answer": "A"}]}
	]`

	var list SectionList
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(list))
	}

	hero, ok := list[0].(*HeroSection)
	if !ok {
		t.Fatalf("expected *HeroSection, got %T", list[0])
	}
	if hero.Headline != "H" || hero.Variant != "full-width" {
		t.Fatalf("hero fields not decoded: %+v", hero)
	}

	faq, ok := list[1].(*FAQSection)
	if !ok {
		t.Fatalf("expected *FAQSection, got %T", list[1])
	}
	if len(faq.Items) != 1 || faq.Items[0].Question != "Q" {
		t.Fatalf("faq items not decoded: %+v", faq)
	}
}

func TestSectionListRejectsUnknownType(t *testing.T) {
	payload := `[{"id": "a", "type": "sidebar"}]`

	var list SectionList
	err := json.Unmarshal([]byte(payload), &list)
	if err == nil {
		t.Fatal("expected error for unknown section type")
	}
}

func TestNewSectionCoversEveryType(t *testing.T) {
	for _, typ := range SectionTypes() {
		section, err := NewSection(typ)
		if err != nil {
			t.Fatalf("NewSection(%s): %v", typ, err)
		}
		if section.SectionType() != typ {
			t.Fatalf("NewSection(%s) reported type %s", typ, section.SectionType())
		}
	}
}

func TestSortByOrder(t *testing.T) {
	list := SectionList{
		&CTASection{SectionBase: SectionBase{ID: "c", Type: SectionCTA, Order: 5}},
		&HeroSection{SectionBase: SectionBase{ID: "a", Type: SectionHero, Order: 1}},
		&FAQSection{SectionBase: SectionBase{ID: "b", Type: SectionFAQ, Order: 3}},
	}

	sorted := list.SortByOrder()

	got := []string{sorted[0].Base().ID, sorted[1].Base().ID, sorted[2].Base().ID}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if list[0].Base().ID != "c" {
		t.Fatal("SortByOrder mutated the receiver")
	}
}

func TestSortByOrderIsStable(t *testing.T) {
	list := SectionList{
		&CTASection{SectionBase: SectionBase{ID: "first", Type: SectionCTA, Order: 2}},
		&FAQSection{SectionBase: SectionBase{ID: "second", Type: SectionFAQ, Order: 2}},
	}

	sorted := list.SortByOrder()
	if sorted[0].Base().ID != "first" || sorted[1].Base().ID != "second" {
		t.Fatalf("equal orders must keep array position, got %s, %s",
			sorted[0].Base().ID, sorted[1].Base().ID)
	}
}
