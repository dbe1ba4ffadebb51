package validator

import (
	"fmt"
	"time"
)

// RequiredDate validates that a date is present and non-zero.
func RequiredDate(field string, value *time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value != nil && !value.IsZero()
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// NotInFuture validates that a date does not lie after the reference time.
// The caller supplies the reference so the outcome is reproducible; production
// code passes time.Now().
func NotInFuture(field string, value time.Time, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.After(now)
		},
		Error: ValidationError{
			Field:   field,
			Message: "date cannot be in the future",
		},
	}
}

// DateAfter validates that a date lies strictly after another date.
func DateAfter(field string, value time.Time, after time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(after)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be after %s", after.Format("2006-01-02")),
		},
	}
}

// DateBefore validates that a date lies strictly before another date.
func DateBefore(field string, value time.Time, before time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.Before(before)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be before %s", before.Format("2006-01-02")),
		},
	}
}
