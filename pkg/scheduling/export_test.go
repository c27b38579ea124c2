package scheduling

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowFor(t *testing.T, table Table, position string) map[string]string {
	t.Helper()
	for _, r := range table.Rows {
		if r[0] == position {
			out := map[string]string{}
			for i, h := range table.Header {
				out[h] = r[i]
			}
			return out
		}
	}
	t.Fatalf("no row for %s", position)
	return nil
}

func TestBuildSummaryHeader(t *testing.T) {
	table := BuildSummary(nil, nil, DefaultTaxonomy(), may1)
	want := []string{
		"Position", "Morning (6AM - 2PM)", "Evening (2PM - 10PM)", "Night (10PM - 6AM)",
		"Day (6AM - 6PM)", "Overnight (6PM - 6AM)", "On Leave",
	}
	if diff := cmp.Diff(want, table.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, table.Rows, 4)
}

func TestBuildSummaryAliceWorking(t *testing.T) {
	table := BuildSummary([]Assignment{aliceMorning()}, []Employee{alice(false)}, DefaultTaxonomy(), may1)
	ra := rowFor(t, table, "RA")
	assert.Equal(t, "Alice", ra["Morning (6AM - 2PM)"])
	assert.Equal(t, "", ra["On Leave"])
}

func TestBuildSummaryAliceOnLeave(t *testing.T) {
	table := BuildSummary([]Assignment{aliceMorning()}, []Employee{alice(true)}, DefaultTaxonomy(), may1)
	ra := rowFor(t, table, "RA")
	assert.Equal(t, "Alice", ra["Morning (6AM - 2PM)"])
	assert.Equal(t, "Alice", ra["On Leave"])
}

func TestBuildSummaryMatchesGrid(t *testing.T) {
	tax := DefaultTaxonomy()
	list := []Assignment{
		{ID: "x2", EmployeeID: "e9", EmployeeName: "Zed", Position: "RA", Shift: "night", Date: may1, Location: "Third_floor"},
		{ID: "x1", EmployeeID: "e3", EmployeeName: "Cho", Position: "RA", Shift: "night", Date: may1, Location: "Sixth_floor"},
		{ID: "x3", EmployeeID: "e4", EmployeeName: "Ida", Position: "NEURO_TECHNICIAN", Shift: "day", Date: may1, Location: "Sixth_floor"},
		{ID: "x4", EmployeeID: "e5", EmployeeName: "Old", Position: "RA", Shift: "night", Date: may1.AddDate(0, 0, 1)},
	}
	table := BuildSummary(list, nil, tax, may1)
	grid := BuildGrid(list, nil, tax, Filters{Date: may1})

	for i, p := range grid.Positions {
		for j, s := range grid.Shifts {
			names := []string{}
			for _, a := range grid.Cell(p, s) {
				names = append(names, a.EmployeeName)
			}
			cell := table.Rows[i][j+1]
			var got []string
			if cell != "" {
				got = strings.Split(cell, ", ")
			}
			assert.ElementsMatch(t, names, got, "%s/%s", p, s)
		}
	}
	// 依員工 id 排序
	assert.Equal(t, "Cho, Zed", rowFor(t, table, "RA")["Night (10PM - 6AM)"])
}

func TestWriteCSVQuotesFields(t *testing.T) {
	list := []Assignment{
		{ID: "a1", EmployeeID: "e1", EmployeeName: `Doe, "JJ"`, Position: "RA", Shift: "morning", Date: may1},
		{ID: "a2", EmployeeID: "e2", EmployeeName: "Kim", Position: "RA", Shift: "morning", Date: may1},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, BuildSummary(list, nil, DefaultTaxonomy(), may1)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, `Doe, "JJ", Kim`, records[2][1])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "schedule_20240501.csv", FileName(may1.Add(23*3600e9)))
}
