// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package validation

import (
	"errors"
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

// FieldError describes a single failed rule.
type FieldError struct {
	path    string
	tag     string
	param   string
	value   interface{}
	message string
}

// Path returns the dotted configuration key of the field, e.g.
// "mining.min_support".
func (e *FieldError) Path() string {
	return e.path
}

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string {
	return e.tag
}

// Param returns the tag parameter (e.g. "1" for "lte=1").
func (e *FieldError) Param() string {
	return e.param
}

// Value returns the rejected value.
func (e *FieldError) Value() interface{} {
	return e.value
}

// Error returns a human-readable message.
func (e *FieldError) Error() string {
	return e.message
}

// StructError collects every failed rule of one ValidateStruct call.
type StructError struct {
	errors []FieldError
}

// Errors returns the individual field errors.
func (ve *StructError) Errors() []FieldError {
	return ve.errors
}

// Paths returns the keys of all failed fields.
func (ve *StructError) Paths() []string {
	out := make([]string, len(ve.errors))
	for i := range ve.errors {
		out[i] = ve.errors[i].path
	}
	return out
}

// Error joins all field messages.
func (ve *StructError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.errors))
	for i := range ve.errors {
		messages[i] = ve.errors[i].message
	}
	return strings.Join(messages, "; ")
}

// GetValidator returns the shared validator. Field names are taken from the
// koanf struct tag so messages name configuration keys.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct validates s. It returns nil when every rule passes.
//
//	if verr := validation.ValidateStruct(cfg); verr != nil {
//	    return fmt.Errorf("invalid configuration: %w", verr)
//	}
func ValidateStruct(s interface{}) *StructError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &StructError{errors: []FieldError{{path: "unknown", tag: "unknown", message: err.Error()}}}
	}

	out := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		path := fieldPath(fe)
		out[i] = FieldError{
			path:    path,
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: translateError(fe, path),
		}
	}
	return &StructError{errors: out}
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"file":     "%s must name an existing file",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

func translateError(fe validator.FieldError, path string) string {
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, path)
	}
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, path, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
}
