package candidate_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrkit/pkg/candidate"
	"github.com/dmitrymomot/hrkit/pkg/payload"
	"github.com/dmitrymomot/hrkit/pkg/validator"
)

// fixedNow keeps the future-date rules deterministic across test runs.
var fixedNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() *candidate.Engine {
	return candidate.NewEngine(candidate.WithNow(func() time.Time { return fixedNow }))
}

func validRawDocument() payload.Payload {
	return payload.Payload{
		"name":          "Ana Clara Silva",
		"tax_id":        "529.982.247-25",
		"document_date": "2024-03-20",
		"position":      "Engineer",
		"salary":        7500.0,
		"main_skills":   []any{"Leadership", "Communication"},
		"hard_skills":   []any{"Go", "PostgreSQL"},
		"work_experience": []any{map[string]any{
			"company":     "Tech Corp",
			"position":    "Backend Developer",
			"start_date":  "2022-01-01",
			"end_date":    "2023-12-31",
			"description": "Backend services for the billing platform",
		}},
	}
}

func TestValidateCleanDocument(t *testing.T) {
	t.Parallel()

	rec := candidate.Canonicalize(validRawDocument())
	errs := newTestEngine().Validate(rec)
	assert.True(t, errs.IsEmpty(), "unexpected errors: %v", errs)
}

func TestValidateShortNameBadTaxIDFutureDate(t *testing.T) {
	t.Parallel()

	rec := candidate.Canonicalize(payload.Payload{
		"name":          "Jo",
		"tax_id":        "000.000.000-00",
		"document_date": "2999-01-01",
	})
	errs := newTestEngine().Validate(rec)

	assert.Equal(t, []string{"must be at least 3 characters long"}, errs.Get("name"))
	assert.Equal(t, []string{"invalid verification digits"}, errs.Get("tax_id"))
	assert.Equal(t, []string{"date cannot be in the future"}, errs.Get("document_date"))
	for path := range errs {
		assert.NotContains(t, path, "work_experience")
	}
}

func TestValidateCurrentJobClearedEndDate(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["work_experience"] = []any{map[string]any{
		"company":     "Tech Corp",
		"position":    "Backend Developer",
		"start_date":  "2022-01-01",
		"end_date":    "2024-01-01",
		"current_job": true,
		"description": "Backend services for the billing platform",
	}}

	rec := candidate.Canonicalize(raw)
	errs := newTestEngine().Validate(rec)

	assert.False(t, errs.Has("work_experience.0.end_date"))
	assert.True(t, errs.IsEmpty(), "unexpected errors: %v", errs)
}

func TestValidateEndBeforeStart(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["work_experience"] = []any{map[string]any{
		"company":     "Tech Corp",
		"position":    "Backend Developer",
		"start_date":  "2024-06-01",
		"end_date":    "2024-01-01",
		"description": "Backend services for the billing platform",
	}}

	rec := candidate.Canonicalize(raw)
	errs := newTestEngine().Validate(rec)

	assert.Equal(t, []string{"date must be after 2024-06-01"}, errs.Get("work_experience.0.end_date"))
	assert.False(t, errs.Has("work_experience.0.start_date"))
	assert.Len(t, errs, 1)
}

func TestValidateEndEqualToStartRejected(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["work_experience"] = []any{map[string]any{
		"company":     "Tech Corp",
		"position":    "Backend Developer",
		"start_date":  "2024-06-01",
		"end_date":    "2024-06-01",
		"description": "Backend services for the billing platform",
	}}

	rec := candidate.Canonicalize(raw)
	errs := newTestEngine().Validate(rec)

	assert.True(t, errs.Has("work_experience.0.end_date"))
}

func TestValidateUnparsableSalaryProducesNoSalaryError(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["salary"] = "abc"

	rec := candidate.Canonicalize(raw)
	require.Nil(t, rec.Salary)

	errs := newTestEngine().Validate(rec)
	assert.False(t, errs.Has("salary"))
	assert.True(t, errs.IsEmpty(), "unexpected errors: %v", errs)
}

func TestValidateNegativeSalary(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["salary"] = -100.0

	rec := candidate.Canonicalize(raw)
	errs := newTestEngine().Validate(rec)
	assert.Equal(t, []string{"must be greater than zero"}, errs.Get("salary"))
}

func TestValidateNonListWorkExperience(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["work_experience"] = "not a list"

	rec := candidate.Canonicalize(raw)
	errs := newTestEngine().Validate(rec)

	for path := range errs {
		assert.NotContains(t, path, "work_experience")
	}
	assert.True(t, errs.IsEmpty(), "unexpected errors: %v", errs)
}

func TestValidateMalformedEntryReportsRequiredFields(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["work_experience"] = []any{"garbage entry"}

	rec := candidate.Canonicalize(raw)
	errs := newTestEngine().Validate(rec)

	assert.Equal(t, []string{"field is required"}, errs.Get("work_experience.0.company"))
	assert.Equal(t, []string{"field is required"}, errs.Get("work_experience.0.position"))
	assert.Equal(t, []string{"field is required"}, errs.Get("work_experience.0.start_date"))
	assert.Equal(t, []string{"field is required"}, errs.Get("work_experience.0.description"))
}

func TestValidateEntryIndicesAreZeroBased(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["work_experience"] = []any{
		map[string]any{
			"company":     "Tech Corp",
			"position":    "Backend Developer",
			"start_date":  "2022-01-01",
			"end_date":    "2023-12-31",
			"description": "Backend services for the billing platform",
		},
		map[string]any{
			"position":    "Analyst",
			"start_date":  "2021-01-01",
			"description": "Reporting pipeline maintenance",
		},
	}

	rec := candidate.Canonicalize(raw)
	errs := newTestEngine().Validate(rec)

	assert.False(t, errs.Has("work_experience.0.company"))
	assert.Equal(t, []string{"field is required"}, errs.Get("work_experience.1.company"))
}

func TestValidateRequiredFields(t *testing.T) {
	t.Parallel()

	errs := newTestEngine().Validate(candidate.Record{})

	assert.Equal(t, []string{"field is required"}, errs.Get("name"))
	assert.Equal(t, []string{"field is required"}, errs.Get("tax_id"))
	assert.Equal(t, []string{"field is required"}, errs.Get("document_date"))
	assert.Len(t, errs, 3)
}

func TestValidateRequiredPrecedesContent(t *testing.T) {
	t.Parallel()

	t.Run("absent field reports only required", func(t *testing.T) {
		t.Parallel()

		errs := newTestEngine().Validate(candidate.Record{})
		assert.Equal(t, []string{"field is required"}, errs.Get("name"))
	})

	t.Run("present field reports content errors in registration order", func(t *testing.T) {
		t.Parallel()

		rec := candidate.Canonicalize(payload.Payload{
			"name":          "Ana Clara Silva",
			"tax_id":        "12",
			"document_date": "2024-03-20",
		})
		errs := newTestEngine().Validate(rec)

		assert.Equal(t, []string{
			"must match the format 000.000.000-00",
			"invalid verification digits",
		}, errs.Get("tax_id"))
	})
}

func TestValidateTaxIDChecksum(t *testing.T) {
	t.Parallel()

	t.Run("well-formed but wrong digits fails only the checksum", func(t *testing.T) {
		t.Parallel()

		rec := candidate.Canonicalize(payload.Payload{
			"name":          "Ana Clara Silva",
			"tax_id":        "123.456.789-00",
			"document_date": "2024-03-20",
		})
		errs := newTestEngine().Validate(rec)
		assert.Equal(t, []string{"invalid verification digits"}, errs.Get("tax_id"))
	})

	t.Run("valid digits pass both checks", func(t *testing.T) {
		t.Parallel()

		rec := candidate.Canonicalize(payload.Payload{
			"name":          "Ana Clara Silva",
			"tax_id":        "123.456.789-09",
			"document_date": "2024-03-20",
		})
		errs := newTestEngine().Validate(rec)
		assert.False(t, errs.Has("tax_id"))
	})
}

func TestValidateShortListEntries(t *testing.T) {
	t.Parallel()

	raw := validRawDocument()
	raw["main_skills"] = []any{"Leadership", "X"}
	raw["hard_skills"] = []any{"K"}

	rec := candidate.Canonicalize(raw)
	errs := newTestEngine().Validate(rec)

	assert.False(t, errs.Has("main_skills.0"))
	assert.Equal(t, []string{"must be at least 2 characters long"}, errs.Get("main_skills.1"))
	assert.Equal(t, []string{"must be at least 2 characters long"}, errs.Get("hard_skills.0"))
}

func TestValidateDirectlyConstructedRecord(t *testing.T) {
	t.Parallel()

	// Records assembled in code skip canonicalization, so the end-date
	// conflict must still be caught by the validators themselves.
	start := utc(2024, 6, 1)
	end := utc(2024, 1, 1)
	rec := candidate.Record{
		Name:         "Ana Clara Silva",
		TaxID:        "529.982.247-25",
		DocumentDate: ptrTime(utc(2024, 3, 20)),
		WorkExperience: []candidate.Experience{{
			Company:     "Tech Corp",
			Position:    "Backend Developer",
			StartDate:   &start,
			EndDate:     &end,
			CurrentJob:  true,
			Description: "Backend services for the billing platform",
		}},
	}

	errs := newTestEngine().Validate(rec)
	assert.Equal(t, []string{
		"date must be after 2024-06-01",
		"end date cannot be set for a current job",
	}, errs.Get("work_experience.0.end_date"))
}

func TestValidateDeterminism(t *testing.T) {
	t.Parallel()

	raw := payload.Payload{
		"name":          "Jo",
		"tax_id":        "12",
		"document_date": "2999-01-01",
		"salary":        -1.0,
		"main_skills":   []any{"X", "Y"},
		"work_experience": []any{
			map[string]any{"position": "Dev", "description": "short"},
			"garbage",
		},
	}
	engine := newTestEngine()
	rec := candidate.Canonicalize(raw)

	first := engine.Validate(rec)
	second := engine.Validate(rec)

	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestValidateTotality(t *testing.T) {
	t.Parallel()

	inputs := map[string]payload.Payload{
		"nil payload":   nil,
		"empty payload": {},
		"all wrong types": {
			"name":            12.0,
			"tax_id":          true,
			"document_date":   []any{},
			"salary":          map[string]any{},
			"main_skills":     "oops",
			"work_experience": 42.0,
		},
		"garbage entries": {
			"work_experience": []any{nil, "x", 1.0, []any{"nested"}},
		},
	}

	engine := newTestEngine()
	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := candidate.Canonicalize(raw)
			assert.NotNil(t, rec.MainSkills)
			assert.NotNil(t, rec.HardSkills)
			assert.NotNil(t, rec.WorkExperience)

			errs := engine.Validate(rec)
			for path, messages := range errs {
				assert.NotEmpty(t, messages, "path %s carries no messages", path)
			}
		})
	}
}

func TestValidateNowIsInjectable(t *testing.T) {
	t.Parallel()

	rec := candidate.Canonicalize(payload.Payload{
		"name":          "Ana Clara Silva",
		"tax_id":        "529.982.247-25",
		"document_date": "2024-03-20",
	})

	past := candidate.NewEngine(candidate.WithNow(func() time.Time {
		return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	assert.Equal(t, []string{"date cannot be in the future"}, past.Validate(rec).Get("document_date"))

	future := candidate.NewEngine(candidate.WithNow(func() time.Time {
		return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	assert.False(t, future.Validate(rec).Has("document_date"))
}

func TestValidateCustomRuleSources(t *testing.T) {
	t.Parallel()

	departmentRequired := func(rec candidate.Record, _ time.Time) []validator.Rule {
		value := ""
		if rec.Department != nil {
			value = *rec.Department
		}
		return []validator.Rule{validator.RequiredString("department", value)}
	}

	engine := candidate.NewEngine(candidate.WithRuleSources(departmentRequired))
	errs := engine.Validate(candidate.Record{})

	assert.Equal(t, []string{"field is required"}, errs.Get("department"))
	assert.Len(t, errs, 1, "replacing the sources must drop the default rules")
}
