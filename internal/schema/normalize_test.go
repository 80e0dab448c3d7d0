package schema

import (
	"testing"
	"time"
)

func TestNormalizeFillsMissingAdministrativeFields(t *testing.T) {
	doc := Normalize(map[string]any{})

	for _, rule := range Rules() {
		if _, ok := doc[rule.Path]; !ok {
			t.Fatalf("expected %q to be filled", rule.Path)
		}
	}
	if doc["name"] != "Nova Landing Page" {
		t.Fatalf("unexpected default name: %v", doc["name"])
	}

	design, ok := doc["design"].(map[string]any)
	if !ok {
		t.Fatalf("expected design map, got %T", doc["design"])
	}
	if design["primaryColor"] != "#3b82f6" {
		t.Fatalf("unexpected default primary color: %v", design["primaryColor"])
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	doc := Normalize(map[string]any{
		"id":   "keep-me",
		"name": "Minha Página",
	})

	if doc["id"] != "keep-me" || doc["name"] != "Minha Página" {
		t.Fatalf("explicit values were overwritten: %v / %v", doc["id"], doc["name"])
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	input := map[string]any{
		"sections": []any{
			map[string]any{"type": "hero"},
		},
	}

	_ = Normalize(input)

	section := input["sections"].([]any)[0].(map[string]any)
	if _, ok := section["id"]; ok {
		t.Fatal("input document was mutated")
	}
}

func TestNormalizeBackfillsSectionIDAndOrder(t *testing.T) {
	doc := Normalize(map[string]any{
		"sections": []any{
			map[string]any{"type": "hero"},
			map[string]any{"type": "faq", "order": float64(7)},
		},
	})

	sections := doc["sections"].([]any)

	first := sections[0].(map[string]any)
	if first["id"] == "" || first["id"] == nil {
		t.Fatal("expected generated section id")
	}
	if first["order"] != 0 {
		t.Fatalf("expected positional order 0, got %v", first["order"])
	}

	second := sections[1].(map[string]any)
	if second["order"] != float64(7) {
		t.Fatalf("explicit order was overwritten: %v", second["order"])
	}
}

func TestNormalizeDefaultsSocialProofLogos(t *testing.T) {
	doc := Normalize(map[string]any{
		"sections": []any{
			map[string]any{"type": "social-proof"},
		},
	})

	section := doc["sections"].([]any)[0].(map[string]any)
	logos, ok := section["logos"].([]any)
	if !ok {
		t.Fatalf("expected empty logos list, got %T", section["logos"])
	}
	if len(logos) != 0 {
		t.Fatalf("expected empty logos list, got %v", logos)
	}
}

func TestCoerceTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"epoch seconds", float64(1700000000), "2023-11-14T22:13:20Z"},
		{"epoch milliseconds", float64(1700000000000), "2023-11-14T22:13:20Z"},
		{"datetime without zone", "2024-05-01T10:30:00", "2024-05-01T10:30:00Z"},
		{"space separated", "2024-05-01 10:30:00", "2024-05-01T10:30:00Z"},
		{"date only", "2024-05-01", "2024-05-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceTimestamp(tt.value)
			if got != tt.want {
				t.Fatalf("coerceTimestamp(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCoerceTimestampPassesRFC3339Through(t *testing.T) {
	value := time.Now().UTC().Format(time.RFC3339)
	if got := coerceTimestamp(value); got != value {
		t.Fatalf("RFC3339 value was rewritten: %v", got)
	}
}

func TestCoerceTimestampLeavesGarbageForValidator(t *testing.T) {
	if got := coerceTimestamp("yesterday"); got != "yesterday" {
		t.Fatalf("unparseable value should pass through, got %v", got)
	}
}
