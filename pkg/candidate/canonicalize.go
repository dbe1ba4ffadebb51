package candidate

import (
	"time"

	"github.com/dmitrymomot/hrkit/pkg/payload"
	"github.com/dmitrymomot/hrkit/pkg/sanitizer"
)

// Date layouts accepted in extraction payloads, tried in order. Parsed values
// are normalized to UTC so records compare equal regardless of how the source
// spelled the zone.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Canonicalize converts an arbitrary raw payload into a Record. It never
// fails: a field that is missing, wrong-typed, or unparsable simply stays
// absent, and whether that matters is the validation engine's call. Unknown
// keys are ignored.
//
// The one conflict resolved here rather than reported is a work-experience
// entry carrying both current_job=true and an end date: the end date is
// cleared, since a current job has none.
func Canonicalize(raw payload.Payload) Record {
	rec := Record{WorkExperience: []Experience{}}

	if name, ok := raw.String("name"); ok {
		rec.Name = name
	}
	if taxID, ok := raw.String("tax_id"); ok {
		rec.TaxID = taxID
	}
	rec.DocumentDate = dateField(raw, "document_date")
	rec.Position = optionalString(raw, "position")
	rec.Department = optionalString(raw, "department")
	rec.ContractType = optionalString(raw, "contract_type")
	if salary, ok := raw.Float("salary"); ok {
		rec.Salary = &salary
	}
	rec.StartDate = dateField(raw, "start_date")
	rec.MainSkills = listField(raw, "main_skills")
	rec.HardSkills = listField(raw, "hard_skills")

	if entries, ok := raw.Objects("work_experience"); ok {
		rec.WorkExperience = make([]Experience, 0, len(entries))
		for _, entry := range entries {
			rec.WorkExperience = append(rec.WorkExperience, canonicalizeExperience(entry))
		}
	}

	return rec
}

// canonicalizeExperience applies the same tolerant rules to one work-history
// entry. A nil payload (a raw entry that was not an object at all) yields the
// minimal defaulted entry, so the row survives for the validator to report on.
func canonicalizeExperience(entry payload.Payload) Experience {
	var exp Experience

	if company, ok := entry.String("company"); ok {
		exp.Company = company
	}
	if position, ok := entry.String("position"); ok {
		exp.Position = position
	}
	exp.StartDate = dateField(entry, "start_date")
	exp.EndDate = dateField(entry, "end_date")
	if current, ok := entry.Bool("current_job"); ok {
		exp.CurrentJob = current
	}
	if description, ok := entry.String("description"); ok {
		exp.Description = description
	}
	exp.Achievements = listField(entry, "achievements")
	exp.TechnologiesUsed = listField(entry, "technologies_used")

	// Current-job status takes precedence over a stray end date.
	if exp.CurrentJob {
		exp.EndDate = nil
	}

	return exp
}

// optionalString keeps the distinction between an absent optional field (nil)
// and one that was supplied, even as an empty string.
func optionalString(p payload.Payload, key string) *string {
	s, ok := p.String(key)
	if !ok {
		return nil
	}
	return &s
}

// dateField returns the parsed date at key, or nil when the value is missing,
// not a string, or matches none of the accepted layouts.
func dateField(p payload.Payload, key string) *time.Time {
	s, ok := p.String(key)
	if !ok || s == "" {
		return nil
	}
	return parseDate(s)
}

func parseDate(s string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func listField(p payload.Payload, key string) []string {
	values, ok := p.StringSlice(key)
	if !ok {
		return []string{}
	}
	return sanitizer.CleanStringSlice(values)
}
