// Package types holds the data structures shared across the application.
// Keeping them in one place lets config, handlers and the entry point import
// them without depending on each other.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Profile is the student record rendered on every page.
//
// It is built once at startup and never mutated afterwards. The validate
// tags are checked by the go-playground/validator package.
type Profile struct {
	Name   string `validate:"required"`
	Class  string `validate:"required"`
	RollNo string `validate:"required"`
}

// The profile served by the application.
const (
	DefaultName   = "Saravanakrishnn B"
	DefaultClass  = "IoT-B"
	DefaultRollNo = "22011102092"
)

// NewProfile builds a Profile and checks that every field is set.
func NewProfile(name, class, rollNo string) (Profile, error) {
	p := Profile{Name: name, Class: class, RollNo: rollNo}
	if err := Validate(p); err != nil {
		return Profile{}, fmt.Errorf("types.NewProfile: %w", err)
	}

	return p, nil
}

// Validate checks the validate:"..." tags on v and turns any failures into
// a single readable error, e.g.
//
//	field Name is required, field Port must be a number
func Validate(v any) error {
	err := validator.New().Struct(v)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	return ValidationError(errs)
}

// ValidationError converts validator field errors into one error whose
// message lists every failing field.
func ValidationError(errs validator.ValidationErrors) error {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "number":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a number", e.Field()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of [%s]", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return errors.New(strings.Join(errMessages, ", "))
}
