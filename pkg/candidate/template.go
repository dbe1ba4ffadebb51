package candidate

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed roles.yaml
var rolesYAML []byte

// roleOverlay is the role-specific slice of a template: the fields a role
// changes relative to the default record.
type roleOverlay struct {
	Key          string   `yaml:"key"`
	Position     string   `yaml:"position"`
	Department   string   `yaml:"department"`
	ContractType string   `yaml:"contract_type"`
	MainSkills   []string `yaml:"main_skills"`
	HardSkills   []string `yaml:"hard_skills"`
}

var loadRoleOverlays = sync.OnceValue(func() []roleOverlay {
	var parsed struct {
		Roles []roleOverlay `yaml:"roles"`
	}
	if err := yaml.Unmarshal(rolesYAML, &parsed); err != nil {
		panic(fmt.Sprintf("candidate: embedded roles.yaml: %v", err))
	}
	return parsed.Roles
})

// DefaultTemplate returns the fully populated example record used to pre-fill
// forms and as a known-good fixture. Templates must validate clean, so the
// sample CPF carries real verification digits.
func DefaultTemplate() Record {
	return Record{
		Name:         "John Doe",
		TaxID:        "123.456.789-09",
		DocumentDate: dateAt(2024, 3, 20),
		Position:     ptr("Software Engineer"),
		Department:   ptr("Engineering"),
		ContractType: ptr("CLT"),
		Salary:       ptr(5000.0),
		StartDate:    dateAt(2024, 3, 20),
		MainSkills:   []string{"Leadership", "Communication", "Problem Solving"},
		HardSkills:   []string{"Python", "React", "MongoDB", "Docker"},
		WorkExperience: []Experience{
			{
				Company:     "Tech Corp",
				Position:    "Senior Developer",
				StartDate:   dateAt(2022, 1, 1),
				EndDate:     dateAt(2023, 12, 31),
				CurrentJob:  false,
				Description: "Desenvolvimento de aplicações web",
				Achievements: []string{
					"Liderou equipe de 5 desenvolvedores",
					"Reduziu tempo de deploy em 50%",
				},
				TechnologiesUsed: []string{"React", "Node.js", "AWS"},
			},
		},
	}
}

// TemplateForRole returns the example record for a role key, matched
// case-insensitively. An unknown role falls back to the default template:
// templates are scaffolding, so there is nothing useful to fail with.
func TemplateForRole(role string) Record {
	key := strings.ToLower(strings.TrimSpace(role))
	for _, overlay := range loadRoleOverlays() {
		if overlay.Key == key {
			return overlay.apply(DefaultTemplate())
		}
	}
	return DefaultTemplate()
}

// AvailableRoles lists the recognized role keys in declaration order.
func AvailableRoles() []string {
	overlays := loadRoleOverlays()
	keys := make([]string, len(overlays))
	for i, overlay := range overlays {
		keys[i] = overlay.Key
	}
	return keys
}

// apply overlays the role-specific fields onto a base record. Slices are
// cloned so callers can edit the returned record without touching the cached
// overlay data.
func (o roleOverlay) apply(base Record) Record {
	if o.Position != "" {
		base.Position = ptr(o.Position)
	}
	if o.Department != "" {
		base.Department = ptr(o.Department)
	}
	if o.ContractType != "" {
		base.ContractType = ptr(o.ContractType)
	}
	if len(o.MainSkills) > 0 {
		base.MainSkills = slices.Clone(o.MainSkills)
	}
	if len(o.HardSkills) > 0 {
		base.HardSkills = slices.Clone(o.HardSkills)
	}
	return base
}

func ptr[T any](v T) *T {
	return &v
}

func dateAt(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
