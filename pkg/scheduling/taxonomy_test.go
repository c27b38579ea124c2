package scheduling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomyOrder(t *testing.T) {
	tax := DefaultTaxonomy()

	assert.Equal(t, []string{"Floor Manager", "RA", "Technician", "Volunteer"}, tax.PositionNames())
	ids := []string{}
	for _, s := range tax.Shifts() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"morning", "evening", "night", "day", "overnight"}, ids)
	assert.Equal(t, []string{"Third_floor", "Sixth_floor"}, tax.Locations())

	night, ok := tax.Shift("night")
	require.True(t, ok)
	assert.Equal(t, "22:00", night.Start)
	assert.Equal(t, "06:00", night.End)
}

func TestPositionOfUsesCanonicalMapping(t *testing.T) {
	tax := DefaultTaxonomy()

	cases := map[string]string{
		"MANAGER":          "Floor Manager",
		"Floor Manager":    "Floor Manager",
		"ra":               "RA",
		"IT_TECHNICIAN":    "Technician",
		"Neuro-Technician": "Technician",
		"technician":       "Technician",
		" volunteer ":      "Volunteer",
	}
	for raw, want := range cases {
		got, ok := tax.PositionOf(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"EMPLOYEE", "INTERN", "Manager Assistant", "RA2", ""} {
		_, ok := tax.PositionOf(raw)
		assert.False(t, ok, raw)
	}
	assert.True(t, tax.Matches("Technician", "NEURO_TECHNICIAN"))
	assert.False(t, tax.Matches("RA", "NEURO_TECHNICIAN"))
}

func TestNewTaxonomyRejectsBadInput(t *testing.T) {
	_, err := NewTaxonomy(nil, DefaultPositions, nil)
	assert.Error(t, err)

	_, err = NewTaxonomy([]Shift{{ID: "a"}, {ID: "a"}}, DefaultPositions, nil)
	assert.ErrorContains(t, err, "duplicate shift")

	_, err = NewTaxonomy(DefaultShifts, []Position{
		{Name: "Lead", Roles: []Role{RoleManager}},
		{Name: "Boss", Roles: []Role{RoleManager}},
	}, nil)
	assert.ErrorContains(t, err, "maps to both")
}

func TestLoadTaxonomy(t *testing.T) {
	doc := `
shifts:
  - {id: early, name: Early, start: "05:00", end: "13:00"}
  - {id: late, name: Late, start: "13:00", end: "21:00"}
positions:
  - {name: Nurse, roles: [RA, INTERN]}
locations: [Ward_A]
`
	tax, err := LoadTaxonomy(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"Nurse"}, tax.PositionNames())
	assert.Equal(t, []string{"Ward_A"}, tax.Locations())
	p, ok := tax.PositionOf("intern")
	assert.True(t, ok)
	assert.Equal(t, "Nurse", p)

	empty, err := LoadTaxonomy(strings.NewReader(""))
	require.NoError(t, err)
	assert.Len(t, empty.Shifts(), 5)

	_, err = LoadTaxonomy(strings.NewReader("shifts: [oops"))
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("it technician")
	assert.True(t, ok)
	assert.Equal(t, RoleITTechnician, r)

	_, ok = ParseRole("janitor")
	assert.False(t, ok)
}
