package schema

import (
	"fmt"
	"strings"
)

// FieldError is a single validation violation, qualified by the JSON path of
// the offending field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorList collects every independent violation found in a document. Its
// string form is one violation per line so it can be fed back to the
// generative model as corrective instruction.
type ErrorList []FieldError

func (e ErrorList) Error() string {
	lines := make([]string, 0, len(e))
	for _, fe := range e {
		lines = append(lines, fmt.Sprintf("Path: %s, Message: %s", fe.Path, fe.Message))
	}
	return strings.Join(lines, "\n")
}
