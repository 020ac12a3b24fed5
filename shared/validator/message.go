package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// Keyed by tag, then by whether the field is measured in characters.
var messages = map[string][2]string{
	"required": {"{field} is required", "{field} is required"},
	"max":      {"{field} must be at most {param}", "{field} must be at most {param} characters"},
	"min":      {"{field} must be at least {param}", "{field} must be at least {param} characters"},
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		templates, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		text := templates[0]
		if valErr.Kind() == reflect.String {
			text = templates[1]
		}

		text = strings.ReplaceAll(text, "{field}", valErr.Field())

		return strings.ReplaceAll(text, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
