package agent

import (
	"encoding/json"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			"bare object",
			`{"a": 1}`,
			`{"a": 1}`,
		},
		{
			"markdown fence",
			"```json\n{\"a\": 1}\n```",
			`{"a": 1}`,
		},
		{
			"prose around object",
			"Claro! Aqui está o JSON:\n{\"a\": 1}\nEspero que ajude.",
			`{"a": 1}`,
		},
		{
			"trailing garbage after balanced close",
			`{"a": {"b": 2}} and some words } here`,
			`{"a": {"b": 2}}`,
		},
		{
			"braces inside strings",
			`{"plan": "use {curly} braces", "config": {"n": 1}}`,
			`{"plan": "use {curly} braces", "config": {"n": 1}}`,
		},
		{
			"escaped quotes inside strings",
			`{"plan": "say \"hello\" {ok}", "n": 1}`,
			`{"plan": "say \"hello\" {ok}", "n": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON(tt.response)
			if got != tt.want {
				t.Fatalf("extractJSON(%q) = %q, want %q", tt.response, got, tt.want)
			}
			var decoded map[string]any
			if err := json.Unmarshal([]byte(got), &decoded); err != nil {
				t.Fatalf("extracted value is not valid JSON: %v", err)
			}
		})
	}
}

func TestExtractJSONWithoutObjectReturnsInput(t *testing.T) {
	got := extractJSON("no json here")
	if got != "no json here" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
