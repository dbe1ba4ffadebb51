package intake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrkit/modules/intake"
)

const sampleForm = `Ficha de Cadastro

Nome: Ana Clara Silva
CPF: 529.982.247-25
Data: 15/03/2024
Cargo: Engenheira de Software
Departamento: Tecnologia
Contrato: CLT
Salário: R$ 7.500,00
`

func TestHeuristicExtractReadsLabeledFields(t *testing.T) {
	t.Parallel()

	extracted := intake.HeuristicExtract(sampleForm)

	name, ok := extracted.String("name")
	require.True(t, ok)
	assert.Equal(t, "Ana Clara Silva", name)

	taxID, ok := extracted.String("tax_id")
	require.True(t, ok)
	assert.Equal(t, "529.982.247-25", taxID)

	date, ok := extracted.String("document_date")
	require.True(t, ok)
	assert.Equal(t, "2024-03-15", date)

	position, ok := extracted.String("position")
	require.True(t, ok)
	assert.Equal(t, "Engenheira de Software", position)

	department, ok := extracted.String("department")
	require.True(t, ok)
	assert.Equal(t, "Tecnologia", department)

	contract, ok := extracted.String("contract_type")
	require.True(t, ok)
	assert.Equal(t, "CLT", contract)

	salary, ok := extracted.Float("salary")
	require.True(t, ok)
	assert.Equal(t, 7500.0, salary)
}

func TestHeuristicExtractOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	extracted := intake.HeuristicExtract("Nome: Bruno Costa")

	name, ok := extracted.String("name")
	require.True(t, ok)
	assert.Equal(t, "Bruno Costa", name)

	for _, key := range []string{"tax_id", "document_date", "position", "department", "contract_type", "salary"} {
		assert.False(t, extracted.Has(key), "key %q should be absent", key)
	}
}

func TestHeuristicExtractAlwaysCarriesEmptyLists(t *testing.T) {
	t.Parallel()

	extracted := intake.HeuristicExtract("no labels here at all")

	for _, key := range []string{"main_skills", "hard_skills", "work_experience"} {
		assert.Equal(t, []any{}, extracted[key], "key %q", key)
	}
}

func TestHeuristicExtractFindsTaxIDAnywhere(t *testing.T) {
	t.Parallel()

	extracted := intake.HeuristicExtract("Documento de identificação 529.982.247-25 emitido em São Paulo")

	taxID, ok := extracted.String("tax_id")
	require.True(t, ok)
	assert.Equal(t, "529.982.247-25", taxID)
}

func TestHeuristicExtractDropsImpossibleDates(t *testing.T) {
	t.Parallel()

	extracted := intake.HeuristicExtract("Data: 31/02/2024")

	assert.False(t, extracted.Has("document_date"))
}

func TestHeuristicExtractSalaryNotations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name:     "brazilian thousands and decimal comma",
			text:     "Salário: R$ 7.500,00",
			expected: 7500,
		},
		{
			name:     "decimal comma only",
			text:     "Salário: 3500,50",
			expected: 3500.5,
		},
		{
			name:     "plain decimal point",
			text:     "Salario: 4200.75",
			expected: 4200.75,
		},
		{
			name:     "integer amount",
			text:     "SALÁRIO R$ 6000",
			expected: 6000,
		},
		{
			name:     "no currency marker",
			text:     "salário: 1234,56",
			expected: 1234.56,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			extracted := intake.HeuristicExtract(tt.text)

			salary, ok := extracted.Float("salary")
			require.True(t, ok)
			assert.Equal(t, tt.expected, salary)
		})
	}
}
