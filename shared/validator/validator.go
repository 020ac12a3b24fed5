package validator

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"todolist/shared/constant"
	"todolist/shared/failure"

	"github.com/go-playground/form/v4"
	val "github.com/go-playground/validator/v10"
)

const tagForm = "form"

var (
	validate *val.Validate
	decoder  *form.Decoder
)

// Normalizer is implemented by request types that clean up their own input before validation.
type Normalizer interface {
	Normalize()
}

func fieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get(tagForm), ",")
	if name != "" && name != "-" {
		return name
	}

	return field.Name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	decoder = form.NewDecoder()
	decoder.SetTagName(tagForm)
}

// ValidateForm decodes an urlencoded body into the `form` tagged fields of data,
// normalizes it when data knows how, and validates the result.
// https://github.com/go-playground/form
func ValidateForm[T any](r *http.Request, data *T) error {
	r.Body = http.MaxBytesReader(nil, r.Body, constant.RequestMaxMemory)

	if err := r.ParseForm(); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if err := decoder.Decode(data, r.PostForm); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if normalizer, ok := any(data).(Normalizer); ok {
		normalizer.Normalize()
	}

	return ValidateStruct(data)
}

// ValidateStruct runs the `validate` tags of data and reports the first violation.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
