package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"landing-builder-backend/internal/models"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate normalizes and validates an arbitrary decoded-JSON value against
// the landing-page document shape. On success it returns the fully-typed
// document; on failure an ErrorList with one entry per violation. It has no
// side effects on its input.
func Validate(raw any) (*models.LandingPage, error) {
	doc, err := toMap(raw)
	if err != nil {
		return nil, ErrorList{{Path: "", Message: err.Error()}}
	}

	normalized := Normalize(doc)

	var head struct {
		ID           string                   `json:"id"`
		Name         string                   `json:"name"`
		Sections     []json.RawMessage        `json:"sections"`
		Design       models.DesignConfig      `json:"design"`
		Integrations models.IntegrationConfig `json:"integrations"`
		CreatedAt    time.Time                `json:"createdAt"`
		UpdatedAt    time.Time                `json:"updatedAt"`
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return nil, ErrorList{{Path: "", Message: err.Error()}}
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, ErrorList{decodeError("", err)}
	}

	var errs ErrorList

	page := &models.LandingPage{
		ID:           head.ID,
		Name:         head.Name,
		Design:       head.Design,
		Integrations: head.Integrations,
		CreatedAt:    head.CreatedAt,
		UpdatedAt:    head.UpdatedAt,
	}
	errs = append(errs, structErrors("", structValidator.Struct(page))...)

	sections := make(models.SectionList, 0, len(head.Sections))
	seen := make(map[string]int, len(head.Sections))
	for i, raw := range head.Sections {
		section, sectionErrs := decodeSection(i, raw)
		errs = append(errs, sectionErrs...)
		if section == nil {
			continue
		}

		id := section.Base().ID
		if prev, dup := seen[id]; dup {
			errs = append(errs, FieldError{
				Path:    fmt.Sprintf("sections[%d].id", i),
				Message: fmt.Sprintf("duplicate section id, already used by sections[%d]", prev),
			})
		} else {
			seen[id] = i
		}
		sections = append(sections, section)
	}
	page.Sections = sections

	if len(errs) > 0 {
		return nil, errs
	}
	return page, nil
}

func decodeSection(index int, raw json.RawMessage) (models.Section, ErrorList) {
	prefix := fmt.Sprintf("sections[%d]", index)

	var probe struct {
		Type models.SectionType `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, ErrorList{decodeError(prefix, err)}
	}

	section, err := models.NewSection(probe.Type)
	if err != nil {
		return nil, ErrorList{{
			Path:    prefix + ".type",
			Message: err.Error(),
		}}
	}

	if err := json.Unmarshal(raw, section); err != nil {
		return nil, ErrorList{decodeError(prefix, err)}
	}

	return section, structErrors(prefix+".", structValidator.Struct(section))
}

func decodeError(prefix string, err error) FieldError {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		path := typeErr.Field
		if prefix != "" && path != "" {
			path = prefix + "." + path
		} else if path == "" {
			path = prefix
		}
		return FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return FieldError{Path: prefix, Message: err.Error()}
}

func structErrors(prefix string, err error) ErrorList {
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ErrorList{{Path: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}

	errs := make(ErrorList, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, FieldError{
			Path:    prefix + fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return errs
}

// fieldPath turns a validator namespace into a JSON path relative to the
// validated value: the leading type name and the embedded SectionBase
// segment are dropped.
func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if dot := strings.Index(path, "."); dot >= 0 {
		path = path[dot+1:]
	}
	return strings.ReplaceAll(path, "SectionBase.", "")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "hexcolor":
		return "must be a valid hex color string"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}

func toMap(raw any) (map[string]any, error) {
	if raw == nil {
		return nil, fmt.Errorf("document is null")
	}
	if m, ok := raw.(map[string]any); ok {
		return m, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("document is not JSON-encodable: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("document is not a JSON object")
	}
	return m, nil
}
