package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldMessages converts validator.ValidationErrors into a field -> message
// map. Fields listed in messages always get their fixed message whatever
// rule failed; other fields get a generated one.
func FieldMessages(err error, messages map[string]string) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		if _, seen := fields[e.Field()]; seen {
			continue
		}
		if msg, ok := messages[e.Field()]; ok {
			fields[e.Field()] = msg
			continue
		}
		fields[e.Field()] = formatSingleError(e)
	}

	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "trimmed_min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "email", "contact_email":
		return fmt.Sprintf("%s must be a valid email", field)
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}
