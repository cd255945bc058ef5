// Package inputval validates request input against struct tags and
// produces user-facing error messages.
//
// Fields declare rules with the standard `validate` tag and a display
// name with a `label` tag:
//
//	type CreateAlbumInput struct {
//	    Name   string `validate:"required,max=200" label:"Album name"`
//	    TripID string `validate:"required,objectid" label:"Trip ID"`
//	}
//
//	result := inputval.Validate(input)
//	if result.HasErrors() {
//	    // result.First() for the lead message, result.All() for every
//	    // message joined with "; "
//	}
//
// The engine is go-playground/validator; custom rules cover the
// application's types: objectid, httpurl, itemtype, mediatype,
// segmenttype, and coords (a [lat, lng] pair).
package inputval

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dalemusser/tripfolio/internal/domain/models"
)

// FieldError is a single validation failure with a ready-to-show message.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the validation failures for one input struct.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first failure message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All returns every failure message joined with "; ".
func (r *Result) All() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// engine returns the singleton validator, registering tag-name lookup
// and the custom rules on first use.
func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report errors under the label tag so messages read naturally.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			return fld.Name
		})

		mustRegister("objectid", func(fl validator.FieldLevel) bool {
			return IsValidObjectID(fl.Field().String())
		})
		mustRegister("httpurl", func(fl validator.FieldLevel) bool {
			return IsValidHTTPURL(fl.Field().String())
		})
		mustRegister("itemtype", func(fl validator.FieldLevel) bool {
			_, err := models.ParseItemType(fl.Field().String())
			return err == nil
		})
		mustRegister("mediatype", func(fl validator.FieldLevel) bool {
			return models.IsValidMediaType(fl.Field().String())
		})
		mustRegister("segmenttype", func(fl validator.FieldLevel) bool {
			return models.IsValidSegmentType(fl.Field().String())
		})
		mustRegister("coords", func(fl validator.FieldLevel) bool {
			f := fl.Field()
			return f.Kind() == reflect.Slice && f.Len() == 2
		})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("inputval: registering %q: %v", tag, err))
	}
}

// Validate checks the struct's `validate` tags and returns a Result
// with one FieldError per failed rule, in field declaration order.
func Validate(input any) *Result {
	result := &Result{}

	err := engine().Struct(input)
	if err == nil {
		return result
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Errors = append(result.Errors, FieldError{
			Field:   "input",
			Message: "Input could not be validated.",
		})
		return result
	}

	for _, fe := range verrs {
		result.Errors = append(result.Errors, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return result
}

// messageFor renders one failed rule as a sentence using the field's
// label.
func messageFor(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "email":
		return "A valid email address is required."
	case "objectid":
		return fmt.Sprintf("%s must be a valid ID.", label)
	case "httpurl":
		return fmt.Sprintf("%s must be a valid http(s) URL.", label)
	case "itemtype":
		return fmt.Sprintf("%s must be one of trip, segment, or stay.", label)
	case "mediatype":
		return fmt.Sprintf("%s must be photo or note.", label)
	case "segmenttype":
		return fmt.Sprintf("%s must be a valid transport mode.", label)
	case "coords":
		return fmt.Sprintf("%s must be a [lat, lng] pair.", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, fe.Param())
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry.", label)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
