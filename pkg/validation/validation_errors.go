package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FirstMissingField returns the name of the first field that failed a
// "required" rule, in struct declaration order.
func FirstMissingField(err error) (string, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "", false
	}
	for _, e := range validationErrors {
		if e.Tag() == "required" || e.Tag() == "notblank" {
			return e.Field(), true
		}
	}
	return "", false
}

// FormatValidationErrors converts validator.ValidationErrors to messages.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("Missing required field: %s", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", capitalize(e.Field()), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", capitalize(e.Field()), e.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", e.Field(), e.Tag())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
