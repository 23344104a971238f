package forms

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the schema validator used for server-side
// re-validation of form submissions. Field names in error details follow
// the json tags, so the client can attach messages to its own form
// controls directly.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors turns validator errors into per-field messages the
// storefront renders next to the form controls.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_form": "Neplatná data formuláře"}
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = messageFor(fe)
	}
	return details
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Toto pole je povinné"
	case "email":
		return "Zadejte platnou e-mailovou adresu"
	case "min":
		return "Zadaná hodnota je příliš krátká"
	case "max":
		return "Zadaná hodnota je příliš dlouhá"
	case "gt", "gte":
		return "Zadejte platné číslo"
	default:
		return "Neplatná hodnota"
	}
}
