package validator

import (
	"fmt"
	"slices"
	"strings"
)

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "field is required", Key: "validation.required"},
	}
}

// NotEmpty fails only for the empty string. Whitespace counts as a value,
// which suits passwords.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{Field: field, Message: "field is required", Key: "validation.required"},
	}
}

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Key:     "validation.min_length",
		},
	}
}

func MinNum[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Key:     "validation.min",
		},
	}
}

func MaxNum[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
			Key:     "validation.max",
		},
	}
}

func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(options, value) },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of %v", options),
			Key:     "validation.one_of",
		},
	}
}

// HasPrefix fails when value does not start with prefix.
func HasPrefix(field, value, prefix string) Rule {
	return Rule{
		Check: func() bool { return strings.HasPrefix(value, prefix) },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must start with %q", prefix),
			Key:     "validation.prefix",
		},
	}
}

// Custom turns a precomputed condition into a rule.
func Custom(field string, ok bool, key, message string) Rule {
	return Rule{
		Check: func() bool { return ok },
		Error: ValidationError{Field: field, Message: message, Key: key},
	}
}
