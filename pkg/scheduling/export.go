package scheduling

import (
	"encoding/csv"
	"io"
	"sort"
	"strings"
	"time"
)

const nameSeparator = ", "

type Table struct {
	Header []string
	Rows   [][]string
}

// BuildSummary 每個 position 一列、每個班別一欄，最後一欄為 On Leave；不套用 UI 篩選
func BuildSummary(assignments []Assignment, employees []Employee, tax *Taxonomy, date time.Time) Table {
	grid := BuildGrid(assignments, employees, tax, Filters{Date: date})

	header := []string{"Position"}
	for _, s := range tax.shifts {
		header = append(header, s.Name)
	}
	header = append(header, "On Leave")

	onLeave := make(map[string][]Employee)
	for _, e := range employees {
		if !e.OnLeave {
			continue
		}
		if p, ok := tax.PositionOf(string(e.Position)); ok {
			onLeave[p] = append(onLeave[p], e)
		}
	}

	t := Table{Header: header}
	for _, p := range grid.Positions {
		row := []string{p}
		for _, s := range grid.Shifts {
			cell := append([]Assignment(nil), grid.Cell(p, s)...)
			sortAssignments(cell)
			names := make([]string, len(cell))
			for i, a := range cell {
				names[i] = a.EmployeeName
			}
			row = append(row, strings.Join(names, nameSeparator))
		}
		leave := onLeave[p]
		sort.SliceStable(leave, func(i, j int) bool { return leave[i].ID < leave[j].ID })
		names := make([]string, len(leave))
		for i, e := range leave {
			names[i] = e.Name
		}
		row = append(row, strings.Join(names, nameSeparator))
		t.Rows = append(t.Rows, row)
	}
	return t
}

// WriteCSV 依 RFC 4180 加引號
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// FileName 下載檔名，例如 schedule_20240501.csv
func FileName(date time.Time) string {
	return "schedule_" + date.UTC().Format("20060102") + ".csv"
}
