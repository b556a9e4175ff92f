package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Eursukkul/club-admin/internal/lifecycle"
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo.Validator and reports
// failures as lifecycle.FieldErrors keyed by JSON path.
type RequestValidator struct {
	v *validator.Validate
}

func NewValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	fe := lifecycle.FieldErrors{}
	for _, e := range ves {
		key := fieldPath(e.Namespace())
		if _, seen := fe[key]; !seen {
			fe[key] = message(e)
		}
	}
	return fe
}

// fieldPath drops the root struct name: "ItemRequest.price.standard" -> "price.standard".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return lifecycle.MsgRequired
	case "email":
		return "Enter a valid email address"
	case "url":
		return "Enter a valid URL"
	case "numeric":
		return "Digits only"
	case "len":
		return fmt.Sprintf("Must be exactly %s digits", e.Param())
	case "datetime":
		return "Enter a time as HH:MM"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "gt":
		return "Must be greater than " + e.Param()
	case "gte":
		return "Must be at least " + e.Param()
	case "min":
		return fmt.Sprintf("Select at least %s", e.Param())
	default:
		return "Invalid value"
	}
}
