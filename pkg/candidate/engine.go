package candidate

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/hrkit/pkg/validator"
)

// Business minimums applied by the default rule set.
const (
	minNameLen        = 3
	minPositionLen    = 2
	minDescriptionLen = 10
	minSkillLen       = 2
	minAchievementLen = 5
	minTechnologyLen  = 2
)

// RuleSource derives the validation rules for one concern of a record. The
// reference time is passed in so that date checks stay reproducible.
type RuleSource func(rec Record, now time.Time) []validator.Rule

// Engine validates canonical records against an ordered list of rule sources
// fixed at construction time. It is stateless apart from that configuration
// and safe for concurrent use.
type Engine struct {
	now     func() time.Time
	sources []RuleSource
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithNow injects the clock used as the reference "now" for date rules.
// Production code keeps the default time.Now; tests pin a fixed moment.
func WithNow(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithRuleSources replaces the default rule set with the given sources,
// evaluated in the given order.
func WithRuleSources(sources ...RuleSource) EngineOption {
	return func(e *Engine) {
		e.sources = sources
	}
}

// NewEngine builds an engine with the default rule sources: record field
// rules, then per-entry work-experience rules, then cross-field rules.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		now: time.Now,
		sources: []RuleSource{
			RecordFieldRules,
			ExperienceFieldRules,
			CrossFieldRules,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate runs every rule source over the record and aggregates the failures
// into a fresh ErrorMap. Within one field path, messages appear in rule
// registration order (required checks first, then format and content checks,
// then cross-field checks), so identical input always produces an identical
// map. Validate never fails on business-rule violations; a record is
// acceptable exactly when the returned map is empty.
func (e *Engine) Validate(rec Record) ErrorMap {
	now := e.now()

	var rules []validator.Rule
	for _, source := range e.sources {
		rules = append(rules, source(rec, now)...)
	}

	errMap := ErrorMap{}
	if err := validator.Apply(rules...); err != nil {
		for _, verr := range validator.ExtractValidationErrors(err) {
			errMap.Add(verr.Field, verr.Message)
		}
	}
	return errMap
}

// RecordFieldRules checks the top-level scalar and list fields. Content rules
// for a field are only registered once the field is present, so an absent
// required field reports exactly one "required" violation.
func RecordFieldRules(rec Record, now time.Time) []validator.Rule {
	rules := []validator.Rule{
		validator.RequiredString("name", rec.Name),
	}
	if rec.Name != "" {
		rules = append(rules, validator.MinLenString("name", rec.Name, minNameLen))
	}

	rules = append(rules, validator.RequiredString("tax_id", rec.TaxID))
	if rec.TaxID != "" {
		rules = append(rules,
			validator.ValidCPFPattern("tax_id", rec.TaxID),
			validator.ValidCPFChecksum("tax_id", rec.TaxID),
		)
	}

	rules = append(rules, validator.RequiredDate("document_date", rec.DocumentDate))
	if rec.DocumentDate != nil {
		rules = append(rules, validator.NotInFuture("document_date", *rec.DocumentDate, now))
	}

	if rec.Position != nil {
		rules = append(rules, validator.MinLenString("position", *rec.Position, minPositionLen))
	}
	if rec.Salary != nil {
		rules = append(rules, validator.PositiveNum("salary", *rec.Salary))
	}

	rules = append(rules, eachMinLen("main_skills", rec.MainSkills, minSkillLen)...)
	rules = append(rules, eachMinLen("hard_skills", rec.HardSkills, minSkillLen)...)

	return rules
}

// ExperienceFieldRules checks every work-experience entry independently, so
// one malformed row never hides problems in its siblings.
func ExperienceFieldRules(rec Record, now time.Time) []validator.Rule {
	var rules []validator.Rule
	for i, exp := range rec.WorkExperience {
		path := experiencePath(i)

		rules = append(rules, validator.RequiredString(path+"company", exp.Company))
		rules = append(rules, validator.RequiredString(path+"position", exp.Position))

		rules = append(rules, validator.RequiredDate(path+"start_date", exp.StartDate))
		if exp.StartDate != nil {
			rules = append(rules, validator.NotInFuture(path+"start_date", *exp.StartDate, now))
		}
		if exp.EndDate != nil {
			rules = append(rules, validator.NotInFuture(path+"end_date", *exp.EndDate, now))
		}

		rules = append(rules, validator.RequiredString(path+"description", exp.Description))
		if exp.Description != "" {
			rules = append(rules, validator.MinLenString(path+"description", exp.Description, minDescriptionLen))
		}

		rules = append(rules, eachMinLen(path+"achievements", exp.Achievements, minAchievementLen)...)
		rules = append(rules, eachMinLen(path+"technologies_used", exp.TechnologiesUsed, minTechnologyLen)...)
	}
	return rules
}

// CrossFieldRules checks conditions that span several fields of one entry:
// chronological ordering and the current-job/end-date contradiction. The
// contradiction is checked here independently of the canonicalizer, which
// clears it on records passing through Canonicalize.
func CrossFieldRules(rec Record, _ time.Time) []validator.Rule {
	var rules []validator.Rule
	for i, exp := range rec.WorkExperience {
		path := experiencePath(i)

		if exp.StartDate != nil && exp.EndDate != nil {
			rules = append(rules, validator.DateAfter(path+"end_date", *exp.EndDate, *exp.StartDate))
		}

		if exp.CurrentJob {
			endDate := exp.EndDate
			rules = append(rules, validator.Rule{
				Check: func() bool { return endDate == nil },
				Error: validator.ValidationError{
					Field:   path + "end_date",
					Message: "end date cannot be set for a current job",
				},
			})
		}
	}
	return rules
}

func experiencePath(i int) string {
	return fmt.Sprintf("work_experience.%d.", i)
}

func eachMinLen(path string, values []string, min int) []validator.Rule {
	var rules []validator.Rule
	for i, value := range values {
		rules = append(rules, validator.MinLenString(fmt.Sprintf("%s.%d", path, i), value, min))
	}
	return rules
}
