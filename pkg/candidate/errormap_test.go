package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hrkit/pkg/candidate"
)

func TestErrorMap(t *testing.T) {
	t.Parallel()

	t.Run("add appends in call order", func(t *testing.T) {
		t.Parallel()

		errs := candidate.ErrorMap{}
		errs.Add("tax_id", "first")
		errs.Add("tax_id", "second")

		assert.Equal(t, []string{"first", "second"}, errs.Get("tax_id"))
	})

	t.Run("get on an unknown path returns nil", func(t *testing.T) {
		t.Parallel()

		errs := candidate.ErrorMap{}
		assert.Nil(t, errs.Get("name"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("fields are sorted for stable output", func(t *testing.T) {
		t.Parallel()

		errs := candidate.ErrorMap{}
		errs.Add("work_experience.0.company", "x")
		errs.Add("name", "x")
		errs.Add("tax_id", "x")

		assert.Equal(t, []string{"name", "tax_id", "work_experience.0.company"}, errs.Fields())
	})

	t.Run("empty map reports empty", func(t *testing.T) {
		t.Parallel()

		assert.True(t, candidate.ErrorMap{}.IsEmpty())
		assert.True(t, candidate.ErrorMap(nil).IsEmpty())

		errs := candidate.ErrorMap{}
		errs.Add("name", "x")
		assert.False(t, errs.IsEmpty())
	})
}
