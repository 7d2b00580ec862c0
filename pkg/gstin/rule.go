package gstin

import (
	"errors"
	"strconv"

	"github.com/dmitrymomot/gstcheck/pkg/validator"
)

// Rule adapts Parse to the validator package. The message distinguishes
// a length problem from a format problem.
func Rule(field, value string) validator.Rule {
	_, err := Parse(value)

	verr := validator.ValidationError{
		Field:          field,
		TranslationKey: "validation.gstin",
		TranslationValues: map[string]any{
			"field": field,
		},
		Cause: err,
	}

	var ferr *FormatError
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidLength):
		verr.Message = "GSTIN must be exactly 15 characters"
		verr.TranslationKey = "validation.gstin.length"
	case errors.As(err, &ferr):
		verr.Message = "GSTIN format is invalid: " + ordinal(ferr.Pos+1) + " character must be " + ferr.Want.String()
		verr.TranslationKey = "validation.gstin.format"
		verr.TranslationValues["position"] = ferr.Pos + 1
	default:
		verr.Message = "GSTIN is invalid"
	}

	return validator.Rule{
		Check: func() bool { return err == nil },
		Error: verr,
	}
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
