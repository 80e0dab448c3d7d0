package schema

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"landing-builder-backend/internal/models"
)

// Rule is one entry of the normalization table: a top-level field that is
// filled with a default when the generator omits it. The table is fixed so
// its completeness can be tested independently of the schema itself.
type Rule struct {
	Path string
	Fill func() any
}

// Rules returns the default-if-missing table applied before validation.
// These cover the administrative fields models reliably omit even when the
// content is otherwise correct.
func Rules() []Rule {
	return []Rule{
		{Path: "id", Fill: func() any { return uuid.New().String() }},
		{Path: "name", Fill: func() any { return "Nova Landing Page" }},
		{Path: "sections", Fill: func() any { return []any{} }},
		{Path: "design", Fill: func() any {
			d := models.DefaultDesign()
			return map[string]any{
				"primaryColor":   d.PrimaryColor,
				"secondaryColor": d.SecondaryColor,
				"fontFamily":     d.FontFamily,
				"buttonStyle":    d.ButtonStyle,
			}
		}},
		{Path: "integrations", Fill: func() any { return map[string]any{} }},
		{Path: "createdAt", Fill: func() any { return time.Now().UTC().Format(time.RFC3339) }},
		{Path: "updatedAt", Fill: func() any { return time.Now().UTC().Format(time.RFC3339) }},
	}
}

// Normalize applies the defaults table and structural coercions to a decoded
// document. The input map is not mutated; a deep copy is returned.
func Normalize(raw map[string]any) map[string]any {
	doc := deepCopy(raw)

	for _, rule := range Rules() {
		if value, ok := doc[rule.Path]; !ok || value == nil {
			doc[rule.Path] = rule.Fill()
		}
	}

	doc["createdAt"] = coerceTimestamp(doc["createdAt"])
	doc["updatedAt"] = coerceTimestamp(doc["updatedAt"])

	if sections, ok := doc["sections"].([]any); ok {
		for i, entry := range sections {
			section, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			normalizeSection(section, i)
		}
	}

	return doc
}

func normalizeSection(section map[string]any, index int) {
	if value, ok := section["id"]; !ok || value == "" || value == nil {
		section["id"] = uuid.New().String()
	}
	if _, ok := section["order"]; !ok {
		section["order"] = index
	}

	// Absent optional lists default to empty rather than failing validation.
	if section["type"] == string(models.SectionSocialProof) {
		if _, ok := section["logos"]; !ok {
			section["logos"] = []any{}
		}
	}
}

// coerceTimestamp rewrites date-like values into RFC3339 strings. Epoch
// numbers (seconds or milliseconds) and a handful of common date layouts are
// accepted; anything unrecognized passes through for the validator to reject.
func coerceTimestamp(value any) any {
	switch v := value.(type) {
	case float64:
		ms := int64(v)
		if ms > 1e12 {
			return time.UnixMilli(ms).UTC().Format(time.RFC3339)
		}
		return time.Unix(ms, 0).UTC().Format(time.RFC3339)
	case string:
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return v
		}
		layouts := []string{
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC().Format(time.RFC3339)
			}
		}
	}
	return value
}

func deepCopy(src map[string]any) map[string]any {
	data, err := json.Marshal(src)
	if err != nil {
		return map[string]any{}
	}
	var dst map[string]any
	if err := json.Unmarshal(data, &dst); err != nil {
		return map[string]any{}
	}
	return dst
}
