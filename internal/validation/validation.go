// FilePath: internal/validation/validation.go

// Package validation checks decoded sensor payloads against the expected
// shape of their record family using go-playground/validator. Rules live in
// the `validate` struct tags on the models; this package owns the shared
// validator instance and turns validator output into messages that name the
// offending JSON field.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// instance returns the shared validator. The validator caches struct
// metadata, so a single instance is reused across requests.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON field names instead of Go struct field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// FieldError reports the first field that failed validation, by its JSON
// path within the record.
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	if e.Tag == "required" {
		return "missing required field: " + e.Field
	}
	return fmt.Sprintf("invalid value for field %s (%s)", e.Field, e.Tag)
}

// ValidateRecord checks a decoded record and returns nil, or a *FieldError
// naming the first missing or invalid field.
func ValidateRecord(record any) error {
	err := instance().Struct(record)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{Field: fieldPath(fe), Tag: fe.Tag()}
	}
	return err
}

// fieldPath strips the root struct name from the error namespace, leaving
// the JSON path of the field, e.g. "location.lat".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}
