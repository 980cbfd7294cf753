// Package validation provides custom validation rules for the application.
package validation

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/bankvault/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PinFormat validates a numeric PIN of bounded length.
type PinFormat struct {
	MinLength int
	MaxLength int
}

// Validate checks that the PIN only holds ASCII digits and has an allowed length.
func (p PinFormat) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_pin_type", "pin must be a string")
	}

	if !isDigits(s) {
		return validation.NewError("validation_pin_digits", "pin must contain only digits")
	}

	if len(s) < p.MinLength || len(s) > p.MaxLength {
		return validation.NewError(
			"validation_pin_length",
			"pin must have between "+strconv.Itoa(p.MinLength)+" and "+strconv.Itoa(p.MaxLength)+" digits",
		)
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Finite validates that a float64 is neither NaN nor infinite.
var Finite = validation.By(func(value interface{}) error {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case *float64:
		if v == nil {
			return nil
		}
		f = *v
	default:
		return validation.NewError("validation_finite_type", "must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return validation.NewError("validation_finite", "must be a finite number")
	}
	return nil
})

// AccountNumber validates an account number as free text: not blank, no leading or
// trailing whitespace and no control characters. Separators such as '-' or ' ' are kept.
var AccountNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		if strings.TrimSpace(s) == "" || s != strings.TrimSpace(s) {
			return false
		}
		return strings.IndexFunc(s, unicode.IsControl) < 0
	},
	validation.NewError("validation_account_number", "must be non-blank text without padding or control characters"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
