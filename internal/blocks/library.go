package blocks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"landing-builder-backend/internal/models"
)

// Library holds the prebuilt section catalog and answers free-text lookups
// against it. It is safe for concurrent use because the catalog is immutable
// after construction.
type Library struct {
	templates []Template
}

func NewLibrary() *Library {
	return &Library{templates: defaultCatalog()}
}

// Templates returns the full catalog.
func (l *Library) Templates() []Template {
	return l.templates
}

// ByType returns every template of the given section type.
func (l *Library) ByType(t models.SectionType) []Template {
	var out []Template
	for _, tpl := range l.templates {
		if tpl.Type == t {
			out = append(out, tpl)
		}
	}
	return out
}

// ByID looks a template up by its catalog id.
func (l *Library) ByID(id string) (Template, bool) {
	for _, tpl := range l.templates {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}

// Match returns the templates relevant to a free-text request. A template
// matches when any of its tags appears in the request, or when the request
// appears in the template name or description. Matching is case insensitive.
func (l *Library) Match(request string) []Template {
	needle := strings.ToLower(strings.TrimSpace(request))
	if needle == "" {
		return nil
	}

	var matched []Template
	for _, tpl := range l.templates {
		if tpl.matches(needle) {
			matched = append(matched, tpl)
		}
	}
	return matched
}

func (t Template) matches(needle string) bool {
	for _, tag := range t.Tags {
		if strings.Contains(needle, strings.ToLower(tag)) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(t.Name), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), needle)
}

// Overrides adjusts the instantiated copy of a template. A zero value keeps
// the template content and only assigns a fresh id.
type Overrides struct {
	ID    string
	Order *int
}

// Instantiate produces an independent copy of the template section with its
// own id. The catalog entry is never mutated.
func (l *Library) Instantiate(tpl Template, ov Overrides) (models.Section, error) {
	raw, err := json.Marshal(tpl.Section)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", tpl.ID, err)
	}

	section, err := models.NewSection(tpl.Type)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", tpl.ID, err)
	}
	if err := json.Unmarshal(raw, section); err != nil {
		return nil, fmt.Errorf("block %s: %w", tpl.ID, err)
	}

	base := section.Base()
	base.ID = ov.ID
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	if ov.Order != nil {
		base.Order = *ov.Order
	}
	return section, nil
}
