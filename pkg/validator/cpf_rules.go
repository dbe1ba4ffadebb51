package validator

import (
	"regexp"
	"strings"
)

var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// ValidCPFPattern validates that a CPF tax identifier is written with the
// standard 000.000.000-00 digit grouping.
func ValidCPFPattern(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return cpfPattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must match the format 000.000.000-00",
		},
	}
}

// ValidCPFChecksum validates the two CPF verification digits. Formatting is
// ignored: every non-digit is stripped before the check runs, so this rule
// passes or fails independently of ValidCPFPattern.
func ValidCPFChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return validCPFChecksum(cpfDigits(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid verification digits",
		},
	}
}

func cpfDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validCPFChecksum(digits string) bool {
	if len(digits) != 11 {
		return false
	}
	// A CPF with all eleven digits equal satisfies the arithmetic below but is
	// not a real identifier.
	if strings.Count(digits, digits[:1]) == 11 {
		return false
	}
	if digits[9]-'0' != cpfCheckDigit(digits[:9], 10) {
		return false
	}
	return digits[10]-'0' == cpfCheckDigit(digits[:10], 11)
}

// cpfCheckDigit computes one verification digit: each digit is weighted
// descending from firstWeight, and the result is (sum*10 mod 11) mod 10.
func cpfCheckDigit(digits string, firstWeight int) byte {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * (firstWeight - i)
	}
	return byte(sum * 10 % 11 % 10)
}
