package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo. Field names in
// errors are the JSON names clients send.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}
