package binder

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	bookIDRE   = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)
	languageRE = regexp.MustCompile(`^[a-zA-Z]{2,3}$`)
)

// bookIDValidator ensures the value is an MD5 hex digest, which is how the
// catalog identifies every record.
func bookIDValidator(fl validator.FieldLevel) bool {
	return bookIDRE.MatchString(fl.Field().String())
}

// languageValidator ensures the value is a 2 or 3 letter language code or the
// empty string. Use `required` alongside it if the field can't be blank.
func languageValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return languageRE.MatchString(value)
}
