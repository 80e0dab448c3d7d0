package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Init registers the custom validations on gin's binding engine.
func Init() {
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		engine.RegisterValidation("no_html", validateNoHTML)
	}
}

// SanitizeString strips all markup. Chat messages go through this before any
// further processing.
func SanitizeString(s string) string {
	return strict.Sanitize(s)
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

func TrimSpaces(s string) string {
	return strings.TrimSpace(s)
}
