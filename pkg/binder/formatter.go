package binder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/segmentio/encoding/json"
)

// Validation tags with a dedicated message.
const (
	alpha       = "alpha"
	alphanum    = "alphanum"
	bookID      = "book_id"
	hexadecimal = "hexadecimal"
	lang        = "lang"
	length      = "len"
	mx          = "max"
	mn          = "min"
	required    = "required"
)

func formatUnmarshalTypeError(err *json.UnmarshalTypeError) string {
	// Field is empty when the whole payload has the wrong shape.
	field := strings.Trim(err.Field, ".")
	if field == "" {
		return fmt.Sprintf("payload should be of type %s", err.Type)
	}
	return fmt.Sprintf("%q should be of type %s", field, err.Type)
}

func formatSchemaConversionError(err schema.ConversionError) string {
	return fmt.Sprintf("%q should be of type %s", err.Key, err.Type)
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case alpha:
		return fmt.Sprintf("%q may only contain letters", field)
	case alphanum:
		return fmt.Sprintf("%q may only contain letters and digits", field)
	case bookID:
		return fmt.Sprintf("%q should be a 32 character MD5 hex digest", field)
	case hexadecimal:
		return fmt.Sprintf("%q should be hexadecimal", field)
	case lang:
		return fmt.Sprintf("%q should be a 2 or 3 letter language code", field)
	case length:
		return fmt.Sprintf("%q length must be exactly %s", field, characters(err.Param()))
	case mx:
		if isNumeric(err.Kind()) {
			return fmt.Sprintf("%q must be less than or equal to %s", field, err.Param())
		}
		return fmt.Sprintf("%q length must be less than or equal to %s", field, characters(err.Param()))
	case mn:
		if isNumeric(err.Kind()) {
			return fmt.Sprintf("%q must be greater than or equal to %s", field, err.Param())
		}
		return fmt.Sprintf("%q length must be greater than or equal to %s", field, characters(err.Param()))
	case required:
		return fmt.Sprintf("%q is required", field)
	default:
		return fmt.Sprintf("%q failed %s validation", field, err.Tag())
	}
}

func characters(n string) string {
	if n == "1" {
		return "1 character"
	}
	return n + " characters"
}

func isNumeric(kind reflect.Kind) bool {
	//exhaustive:ignore
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
