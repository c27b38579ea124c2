package scheduling

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func cellIDs(g Grid) map[CellKey][]string {
	out := map[CellKey][]string{}
	for _, p := range g.Positions {
		for _, s := range g.Shifts {
			for _, a := range g.Cell(p, s) {
				k := CellKey{Position: p, Shift: s}
				out[k] = append(out[k], a.ID)
			}
		}
	}
	return out
}

func TestBuildGridPlacesAssignmentInItsCell(t *testing.T) {
	tax := DefaultTaxonomy()
	g := BuildGrid([]Assignment{aliceMorning()}, []Employee{alice(false)}, tax, Filters{Date: may1})

	want := map[CellKey][]string{{Position: "RA", Shift: "morning"}: {"a1"}}
	if diff := cmp.Diff(want, cellIDs(g)); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildGridExcludesOtherDays(t *testing.T) {
	tax := DefaultTaxonomy()
	list := []Assignment{aliceMorning()}
	for i, d := range []time.Time{may1.Add(-time.Millisecond), may1.Add(24 * time.Hour), may1.AddDate(0, 0, 7)} {
		a := aliceMorning()
		a.ID = string(rune('b' + i))
		a.Date = d
		list = append(list, a)
	}

	for _, day := range []time.Time{may1, may1.Add(24 * time.Hour), may1.AddDate(0, 0, -1)} {
		g := BuildGrid(list, nil, tax, Filters{Date: day})
		for _, p := range g.Positions {
			for _, s := range g.Shifts {
				for _, a := range g.Cell(p, s) {
					assert.True(t, SameDay(a.Date, day), "assignment %s leaked into %s", a.ID, DayKey(day))
				}
			}
		}
	}
	assert.Equal(t, 1, BuildGrid(list, nil, tax, Filters{Date: may1}).Len())
}

func TestBuildGridFilters(t *testing.T) {
	tax := DefaultTaxonomy()
	bob := Employee{ID: "e2", Name: "Bob", Position: RoleITTechnician}
	bobEvening := Assignment{ID: "a2", EmployeeID: "e2", EmployeeName: "Bob", Position: "IT_TECHNICIAN", Shift: "evening", Date: may1, Location: "Sixth_floor"}
	ghost := Assignment{ID: "a3", EmployeeID: "gone", EmployeeName: "Ghost", Position: "Volunteer", Shift: "night", Date: may1, Location: "Third_floor"}
	list := []Assignment{aliceMorning(), bobEvening, ghost}
	staff := []Employee{alice(true), bob}

	sixth := BuildGrid(list, staff, tax, Filters{Date: may1, Location: "Sixth_floor"})
	assert.Equal(t, map[CellKey][]string{{Position: "Technician", Shift: "evening"}: {"a2"}}, cellIDs(sixth))

	all := BuildGrid(list, staff, tax, Filters{Date: may1, Location: LocationAll, Leave: LeaveAll})
	assert.Equal(t, 3, all.Len())

	onLeave := BuildGrid(list, staff, tax, Filters{Date: may1, Leave: LeaveOnLeave})
	assert.Equal(t, map[CellKey][]string{{Position: "RA", Shift: "morning"}: {"a1"}}, cellIDs(onLeave))

	// 找不到員工時視為未請假
	notOnLeave := BuildGrid(list, staff, tax, Filters{Date: may1, Leave: LeaveNotOnLeave})
	assert.Equal(t, map[CellKey][]string{
		{Position: "Technician", Shift: "evening"}: {"a2"},
		{Position: "Volunteer", Shift: "night"}:    {"a3"},
	}, cellIDs(notOnLeave))
}

func TestBuildGridSkipsUnknownShiftAndPosition(t *testing.T) {
	tax := DefaultTaxonomy()
	odd := aliceMorning()
	odd.Shift = "brunch"
	intern := aliceMorning()
	intern.ID = "a9"
	intern.Position = "INTERN"

	g := BuildGrid([]Assignment{odd, intern}, nil, tax, Filters{Date: may1})
	assert.Zero(t, g.Len())
}

func TestOnLeaveEmployeeStaysOnGrid(t *testing.T) {
	tax := DefaultTaxonomy()
	g := BuildGrid([]Assignment{aliceMorning()}, []Employee{alice(true)}, tax, Filters{Date: may1})
	assert.Len(t, g.Cell("RA", "morning"), 1)
}

func TestAvailableEmployees(t *testing.T) {
	tax := DefaultTaxonomy()
	staff := []Employee{
		alice(false),
		{ID: "e2", Name: "Bea", Position: RoleRA, OnLeave: true},
		{ID: "e3", Name: "Cal", Position: RoleRA},
		{ID: "e4", Name: "Dan", Position: RoleVolunteer},
	}
	day := []Assignment{aliceMorning()}

	names := func(list []Employee) []string {
		out := []string{}
		for _, e := range list {
			out = append(out, e.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Alice", "Cal"}, names(AvailableEmployees(staff, day, tax, "RA", "")))
	assert.Equal(t, []string{"Cal"}, names(AvailableEmployees(staff, day, tax, "RA", "morning")))
	assert.Equal(t, []string{"Alice", "Cal", "Dan"}, names(AvailableEmployees(staff, day, tax, "", "evening")))
	assert.Empty(t, AvailableEmployees(staff, day, tax, "Floor Manager", ""))
}

func TestSummarize(t *testing.T) {
	tax := DefaultTaxonomy()
	bob := Employee{ID: "e2", Name: "Bob", Position: RoleVolunteer, OnLeave: true}
	bobNight := Assignment{ID: "a2", EmployeeID: "e2", EmployeeName: "Bob", Position: "VOLUNTEER", Shift: "night", Date: may1, Location: "Third_floor"}
	g := BuildGrid([]Assignment{aliceMorning(), bobNight}, []Employee{alice(false), bob}, tax, Filters{Date: may1})

	c := Summarize(g, []Employee{alice(false), bob})
	assert.Equal(t, 2, c.Total)
	assert.Equal(t, 1, c.OnLeave)
	assert.Equal(t, map[string]int{"Floor Manager": 0, "RA": 1, "Technician": 0, "Volunteer": 1}, c.ByPosition)
	assert.Equal(t, 1, c.ByShift["morning"])
	assert.Equal(t, 1, c.ByShift["night"])
	assert.Equal(t, 0, c.ByShift["day"])
}

func TestGridRowsCoverEveryCell(t *testing.T) {
	g := BuildGrid([]Assignment{aliceMorning()}, nil, DefaultTaxonomy(), Filters{Date: may1})
	rows := g.Rows()
	assert.Len(t, rows, 4)
	for _, r := range rows {
		assert.Len(t, r.Cells, 5)
	}
	assert.Len(t, rows[1].Cells["morning"], 1)
	assert.NotNil(t, rows[0].Cells["night"])
}
