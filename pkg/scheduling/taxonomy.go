package scheduling

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Role 員工資料上的詳細職位
type Role string

const (
	RoleEmployee        Role = "EMPLOYEE"
	RoleManager         Role = "MANAGER"
	RoleAdmin           Role = "ADMIN"
	RoleRA              Role = "RA"
	RoleVolunteer       Role = "VOLUNTEER"
	RoleITTechnician    Role = "IT_TECHNICIAN"
	RoleNeuroTechnician Role = "NEURO_TECHNICIAN"
	RoleIntern          Role = "INTERN"
	RoleContractor      Role = "CONTRACTOR"
)

var Roles = []Role{
	RoleEmployee, RoleManager, RoleAdmin, RoleRA, RoleVolunteer,
	RoleITTechnician, RoleNeuroTechnician, RoleIntern, RoleContractor,
}

// ParseRole 不分大小寫，空白與連字號視同底線
func ParseRole(s string) (Role, bool) {
	r := Role(normalize(s))
	for _, known := range Roles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

type Shift struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// Position grid 的一列；Roles 為對應到這一列的員工職位
type Position struct {
	Name  string `json:"name" yaml:"name"`
	Roles []Role `json:"roles" yaml:"roles"`
}

var DefaultShifts = []Shift{
	{ID: "morning", Name: "Morning (6AM - 2PM)", Start: "06:00", End: "14:00"},
	{ID: "evening", Name: "Evening (2PM - 10PM)", Start: "14:00", End: "22:00"},
	{ID: "night", Name: "Night (10PM - 6AM)", Start: "22:00", End: "06:00"},
	{ID: "day", Name: "Day (6AM - 6PM)", Start: "06:00", End: "18:00"},
	{ID: "overnight", Name: "Overnight (6PM - 6AM)", Start: "18:00", End: "06:00"},
}

var DefaultPositions = []Position{
	{Name: "Floor Manager", Roles: []Role{RoleManager}},
	{Name: "RA", Roles: []Role{RoleRA}},
	{Name: "Technician", Roles: []Role{RoleITTechnician, RoleNeuroTechnician}},
	{Name: "Volunteer", Roles: []Role{RoleVolunteer}},
}

var DefaultLocations = []string{"Third_floor", "Sixth_floor"}

// Taxonomy 看板使用的班別、position 與地點（有順序），建立後不可變
type Taxonomy struct {
	shifts    []Shift
	positions []Position
	locations []string

	shiftIndex    map[string]int
	positionIndex map[string]string
}

func DefaultTaxonomy() *Taxonomy {
	t, err := NewTaxonomy(DefaultShifts, DefaultPositions, DefaultLocations)
	if err != nil {
		panic(err)
	}
	return t
}

func NewTaxonomy(shifts []Shift, positions []Position, locations []string) (*Taxonomy, error) {
	if len(shifts) == 0 {
		return nil, fmt.Errorf("taxonomy: at least one shift is required")
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("taxonomy: at least one position is required")
	}
	t := &Taxonomy{
		shifts:        append([]Shift(nil), shifts...),
		locations:     append([]string(nil), locations...),
		shiftIndex:    make(map[string]int, len(shifts)),
		positionIndex: make(map[string]string),
	}
	for i, s := range shifts {
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("taxonomy: shift %d has no id", i)
		}
		if _, dup := t.shiftIndex[s.ID]; dup {
			return nil, fmt.Errorf("taxonomy: duplicate shift %q", s.ID)
		}
		if s.Name == "" {
			t.shifts[i].Name = s.ID
		}
		t.shiftIndex[s.ID] = i
	}
	for _, p := range positions {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("taxonomy: position without a name")
		}
		keys := []string{normalize(p.Name)}
		for _, r := range p.Roles {
			keys = append(keys, normalize(string(r)))
		}
		for _, k := range keys {
			if owner, dup := t.positionIndex[k]; dup && owner != p.Name {
				return nil, fmt.Errorf("taxonomy: %q maps to both %q and %q", k, owner, p.Name)
			}
			t.positionIndex[k] = p.Name
		}
		t.positions = append(t.positions, Position{Name: p.Name, Roles: append([]Role(nil), p.Roles...)})
	}
	return t, nil
}

type taxonomyFile struct {
	Shifts    []Shift    `yaml:"shifts"`
	Positions []Position `yaml:"positions"`
	Locations []string   `yaml:"locations"`
}

// LoadTaxonomy 從 YAML 讀取，缺少的區段使用預設值
func LoadTaxonomy(r io.Reader) (*Taxonomy, error) {
	var f taxonomyFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("taxonomy: decode: %w", err)
	}
	if len(f.Shifts) == 0 {
		f.Shifts = DefaultShifts
	}
	if len(f.Positions) == 0 {
		f.Positions = DefaultPositions
	}
	if f.Locations == nil {
		f.Locations = DefaultLocations
	}
	return NewTaxonomy(f.Shifts, f.Positions, f.Locations)
}

func (t *Taxonomy) Shifts() []Shift { return append([]Shift(nil), t.shifts...) }

func (t *Taxonomy) Positions() []Position {
	out := make([]Position, len(t.positions))
	for i, p := range t.positions {
		out[i] = Position{Name: p.Name, Roles: append([]Role(nil), p.Roles...)}
	}
	return out
}

func (t *Taxonomy) PositionNames() []string {
	names := make([]string, len(t.positions))
	for i, p := range t.positions {
		names[i] = p.Name
	}
	return names
}

func (t *Taxonomy) Locations() []string { return append([]string(nil), t.locations...) }

func (t *Taxonomy) Shift(id string) (Shift, bool) {
	i, ok := t.shiftIndex[id]
	if !ok {
		return Shift{}, false
	}
	return t.shifts[i], true
}

// PositionOf 把 position 或職位字串對應到 grid 列名；正規化後完全比對，不做子字串比對
func (t *Taxonomy) PositionOf(raw string) (string, bool) {
	name, ok := t.positionIndex[normalize(raw)]
	return name, ok
}

// Matches raw 是否屬於指定的 grid 列
func (t *Taxonomy) Matches(position, raw string) bool {
	name, ok := t.PositionOf(raw)
	return ok && name == position
}

func normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
