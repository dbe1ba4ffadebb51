package candidate

import (
	"slices"
	"time"
)

// Record is the canonical, shape-guaranteed form of one candidate document.
// Instances built from untrusted input must come out of Canonicalize; code
// that edits a record copies it first (see Clone) and re-validates from
// scratch rather than patching validation state.
//
// Optional scalar fields use pointers so that "absent" stays distinguishable
// from "present but empty". Sequence fields are non-nil on every record that
// went through Canonicalize, and entry order is always the submission order.
type Record struct {
	Name           string       `json:"name" bson:"name"`
	TaxID          string       `json:"tax_id" bson:"tax_id"`
	DocumentDate   *time.Time   `json:"document_date" bson:"document_date"`
	Position       *string      `json:"position,omitempty" bson:"position,omitempty"`
	Department     *string      `json:"department,omitempty" bson:"department,omitempty"`
	ContractType   *string      `json:"contract_type,omitempty" bson:"contract_type,omitempty"`
	Salary         *float64     `json:"salary,omitempty" bson:"salary,omitempty"`
	StartDate      *time.Time   `json:"start_date,omitempty" bson:"start_date,omitempty"`
	MainSkills     []string     `json:"main_skills" bson:"main_skills"`
	HardSkills     []string     `json:"hard_skills" bson:"hard_skills"`
	WorkExperience []Experience `json:"work_experience" bson:"work_experience"`
}

// Experience is one work-history row of a candidate record.
type Experience struct {
	Company          string     `json:"company" bson:"company"`
	Position         string     `json:"position" bson:"position"`
	StartDate        *time.Time `json:"start_date" bson:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	CurrentJob       bool       `json:"current_job" bson:"current_job"`
	Description      string     `json:"description" bson:"description"`
	Achievements     []string   `json:"achievements" bson:"achievements"`
	TechnologiesUsed []string   `json:"technologies_used" bson:"technologies_used"`
}

// Clone returns a deep copy of the record. Edits are modeled as
// copy-then-change followed by a fresh Validate call, so the original value
// can keep circulating unchanged.
func (r Record) Clone() Record {
	clone := r
	clone.DocumentDate = clonePtr(r.DocumentDate)
	clone.Position = clonePtr(r.Position)
	clone.Department = clonePtr(r.Department)
	clone.ContractType = clonePtr(r.ContractType)
	clone.Salary = clonePtr(r.Salary)
	clone.StartDate = clonePtr(r.StartDate)
	clone.MainSkills = slices.Clone(r.MainSkills)
	clone.HardSkills = slices.Clone(r.HardSkills)

	if r.WorkExperience != nil {
		clone.WorkExperience = make([]Experience, len(r.WorkExperience))
		for i, exp := range r.WorkExperience {
			clone.WorkExperience[i] = exp.clone()
		}
	}
	return clone
}

func (e Experience) clone() Experience {
	clone := e
	clone.StartDate = clonePtr(e.StartDate)
	clone.EndDate = clonePtr(e.EndDate)
	clone.Achievements = slices.Clone(e.Achievements)
	clone.TechnologiesUsed = slices.Clone(e.TechnologiesUsed)
	return clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
