package scheduling

import (
	"sort"
	"time"
)

type LeaveFilter string

const (
	LeaveAll        LeaveFilter = "all"
	LeaveOnLeave    LeaveFilter = "onLeave"
	LeaveNotOnLeave LeaveFilter = "notOnLeave"
)

func (f LeaveFilter) Valid() bool {
	switch f {
	case "", LeaveAll, LeaveOnLeave, LeaveNotOnLeave:
		return true
	}
	return false
}

const LocationAll = "all"

// Filters 零值 Date 不限日期；Location 空白或 LocationAll 不限地點；Leave 空白等同 LeaveAll
type Filters struct {
	Date     time.Time
	Location string
	Leave    LeaveFilter
}

type CellKey struct {
	Position string
	Shift    string
}

// Grid 當天排班依 position x shift 切分
type Grid struct {
	Positions []string
	Shifts    []string
	cells     map[CellKey][]Assignment
}

func (g Grid) Cell(position, shift string) []Assignment {
	return g.cells[CellKey{Position: position, Shift: shift}]
}

// Len 所有格子內的排班數
func (g Grid) Len() int {
	n := 0
	for _, c := range g.cells {
		n += len(c)
	}
	return n
}

type GridRow struct {
	Position string                  `json:"position"`
	Cells    map[string][]Assignment `json:"cells"`
}

// Rows 依 position 順序攤平，每個班別都有一欄
func (g Grid) Rows() []GridRow {
	rows := make([]GridRow, 0, len(g.Positions))
	for _, p := range g.Positions {
		row := GridRow{Position: p, Cells: make(map[string][]Assignment, len(g.Shifts))}
		for _, s := range g.Shifts {
			cell := g.Cell(p, s)
			if cell == nil {
				cell = []Assignment{}
			}
			row.Cells[s] = cell
		}
		rows = append(rows, row)
	}
	return rows
}

func BuildGrid(assignments []Assignment, employees []Employee, tax *Taxonomy, f Filters) Grid {
	g := Grid{
		Positions: tax.PositionNames(),
		cells:     make(map[CellKey][]Assignment),
	}
	for _, s := range tax.shifts {
		g.Shifts = append(g.Shifts, s.ID)
	}
	onLeave := leaveIndex(employees)

	for _, a := range assignments {
		if !f.Date.IsZero() && !SameDay(a.Date, f.Date) {
			continue
		}
		if f.Location != "" && f.Location != LocationAll && a.Location != f.Location {
			continue
		}
		switch f.Leave {
		case LeaveOnLeave:
			if !onLeave[a.EmployeeID] {
				continue
			}
		case LeaveNotOnLeave:
			if onLeave[a.EmployeeID] {
				continue
			}
		}
		if _, ok := tax.shiftIndex[a.Shift]; !ok {
			continue
		}
		position, ok := tax.PositionOf(a.Position)
		if !ok {
			continue
		}
		key := CellKey{Position: position, Shift: a.Shift}
		g.cells[key] = append(g.cells[key], a)
	}
	return g
}

// AvailableEmployees 未請假且職位對應到 position 的員工；
// 指定 shiftID 時排除當天已排該班別的人
func AvailableEmployees(employees []Employee, assignmentsForDate []Assignment, tax *Taxonomy, position, shiftID string) []Employee {
	taken := make(map[string]bool)
	if shiftID != "" {
		for _, a := range assignmentsForDate {
			if a.Shift == shiftID {
				taken[a.EmployeeID] = true
			}
		}
	}
	out := []Employee{}
	for _, e := range employees {
		if e.OnLeave || taken[e.ID] {
			continue
		}
		if position != "" && !tax.Matches(position, string(e.Position)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

type Counts struct {
	Total      int            `json:"total"`
	ByPosition map[string]int `json:"byPosition"`
	ByShift    map[string]int `json:"byShift"`
	OnLeave    int            `json:"onLeave"`
}

func PositionCounts(g Grid) map[string]int {
	out := make(map[string]int, len(g.Positions))
	for _, p := range g.Positions {
		out[p] = 0
		for _, s := range g.Shifts {
			out[p] += len(g.Cell(p, s))
		}
	}
	return out
}

func OnLeaveCount(employees []Employee) int {
	n := 0
	for _, e := range employees {
		if e.OnLeave {
			n++
		}
	}
	return n
}

// Summarize 篩選後 grid 的看板計數
func Summarize(g Grid, employees []Employee) Counts {
	c := Counts{
		Total:      g.Len(),
		ByPosition: PositionCounts(g),
		ByShift:    make(map[string]int, len(g.Shifts)),
		OnLeave:    OnLeaveCount(employees),
	}
	for _, s := range g.Shifts {
		c.ByShift[s] = 0
		for _, p := range g.Positions {
			c.ByShift[s] += len(g.Cell(p, s))
		}
	}
	return c
}

func leaveIndex(employees []Employee) map[string]bool {
	idx := make(map[string]bool, len(employees))
	for _, e := range employees {
		idx[e.ID] = e.OnLeave
	}
	return idx
}

func sortAssignments(list []Assignment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].EmployeeID != list[j].EmployeeID {
			return list[i].EmployeeID < list[j].EmployeeID
		}
		return list[i].ID < list[j].ID
	})
}
