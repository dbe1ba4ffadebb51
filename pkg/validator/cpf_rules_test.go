package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrkit/pkg/validator"
)

func TestValidCPFPattern(t *testing.T) {
	t.Parallel()

	t.Run("standard grouping passes", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"529.982.247-25", "123.456.789-09", "000.000.000-00"} {
			assert.NoError(t, validator.Apply(validator.ValidCPFPattern("tax_id", value)), "value %q", value)
		}
	})

	t.Run("other shapes fail", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"52998224725",      // bare digits
			"529-982-247.25",   // separators swapped
			"529.982.247-256",  // too many digits
			"529.982.247-2",    // too few digits
			"52a.982.247-25",   // letter inside
			" 529.982.247-25",  // leading space
			"",
		}
		for _, value := range invalid {
			err := validator.Apply(validator.ValidCPFPattern("tax_id", value))
			require.Error(t, err, "value %q", value)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "must match the format 000.000.000-00", verrs[0].Message)
		}
	})
}

func TestValidCPFChecksum(t *testing.T) {
	t.Parallel()

	t.Run("valid verification digits pass regardless of formatting", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"529.982.247-25", "52998224725", "123.456.789-09"} {
			assert.NoError(t, validator.Apply(validator.ValidCPFChecksum("tax_id", value)), "value %q", value)
		}
	})

	t.Run("wrong verification digits fail", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"123.456.789-00", // second verification digit should be 9
			"12345678900",
			"529.982.247-26",
		}
		for _, value := range invalid {
			err := validator.Apply(validator.ValidCPFChecksum("tax_id", value))
			require.Error(t, err, "value %q", value)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "invalid verification digits", verrs[0].Message)
		}
	})

	t.Run("repeated digits fail even though the arithmetic holds", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"000.000.000-00", "111.111.111-11", "99999999999"} {
			assert.Error(t, validator.Apply(validator.ValidCPFChecksum("tax_id", value)), "value %q", value)
		}
	})

	t.Run("wrong digit count fails", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"", "5299822472", "529982247255", "abc"} {
			assert.Error(t, validator.Apply(validator.ValidCPFChecksum("tax_id", value)), "value %q", value)
		}
	})

	t.Run("pattern and checksum fail independently", func(t *testing.T) {
		t.Parallel()

		// Well-formed but arithmetically wrong.
		err := validator.Apply(
			validator.ValidCPFPattern("tax_id", "000.000.000-00"),
			validator.ValidCPFChecksum("tax_id", "000.000.000-00"),
		)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "invalid verification digits", verrs[0].Message)

		// Arithmetically right but unformatted.
		err = validator.Apply(
			validator.ValidCPFPattern("tax_id", "52998224725"),
			validator.ValidCPFChecksum("tax_id", "52998224725"),
		)
		verrs = validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "must match the format 000.000.000-00", verrs[0].Message)
	})
}
