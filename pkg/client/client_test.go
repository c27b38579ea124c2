package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"talentsync/pkg/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, data any, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"requestID":   "req-1",
		"code":        0,
		"data":        data,
		"message":     "OK",
		"description": description,
	})
}

func TestListByDateSendsQueryAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/schedules", r.URL.Path)
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("date"))
		assert.Equal(t, "org-1", r.URL.Query().Get("orgId"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, []map[string]any{{
			"id": "s1", "employee_id": "e1", "employee_name": "Alice", "position": "RA",
			"date": "2024-05-01T00:00:00Z", "shift": "morning", "location": "Third_floor",
		}}, "Request Success")
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("secret"))
	got, err := c.ListByDate(context.Background(), "org-1", time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].EmployeeName)
	assert.Equal(t, "morning", got[0].Shift)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   scheduling.Kind
	}{
		{http.StatusBadRequest, scheduling.KindValidation},
		{http.StatusNotFound, scheduling.KindNotFound},
		{http.StatusConflict, scheduling.KindConflict},
		{http.StatusInternalServerError, scheduling.KindTransient},
		{http.StatusServiceUnavailable, scheduling.KindTransient},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, tc.status, nil, "Schedule conflict: employee already has a shift at this time")
		}))
		_, err := New(srv.URL).CreateAssignment(context.Background(), scheduling.Assignment{EmployeeID: "e1"})
		srv.Close()

		require.Error(t, err)
		assert.Equal(t, tc.kind, scheduling.KindOf(err), "status %d", tc.status)
	}
}

func TestValidationMessageSurvives(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, nil, "shift is required")
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateAssignment(context.Background(), scheduling.Assignment{})
	var se *scheduling.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "shift is required", se.UserMessage())
}

func TestNetworkFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := New(srv.URL).DeleteAssignment(context.Background(), "s1")
	assert.Equal(t, scheduling.KindTransient, scheduling.KindOf(err))
}

func TestUpdateAssignmentPutsIDInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "s1", body["id"])
		assert.Equal(t, "night", body["shift"])
		assert.NotContains(t, body, "location")
		writeEnvelope(w, http.StatusOK, map[string]any{"id": "s1", "shift": "night"}, "")
	}))
	defer srv.Close()

	night := "night"
	got, err := New(srv.URL).UpdateAssignment(context.Background(), "s1", scheduling.AssignmentPatch{Shift: &night})
	require.NoError(t, err)
	assert.Equal(t, "night", got.Shift)
}

// fakeAPI 記憶體版的排班與員工端點
type fakeAPI struct {
	mu          sync.Mutex
	employees   []scheduling.Employee
	assignments map[string]scheduling.Assignment
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/organizations/org/employees":
		writeEnvelope(w, http.StatusOK, f.employees, "")
	case r.Method == http.MethodGet && r.URL.Path == "/api/schedules":
		list := []scheduling.Assignment{}
		for _, a := range f.assignments {
			list = append(list, a)
		}
		writeEnvelope(w, http.StatusOK, list, "")
	case r.Method == http.MethodPost && r.URL.Path == "/api/schedules":
		var a scheduling.Assignment
		_ = json.NewDecoder(r.Body).Decode(&a)
		for _, existing := range f.assignments {
			if existing.EmployeeID == a.EmployeeID && existing.Shift == a.Shift {
				writeEnvelope(w, http.StatusConflict, nil, "Schedule conflict: employee already has a shift at this time")
				return
			}
		}
		a.ID = "s" + a.EmployeeID + a.Shift
		f.assignments[a.ID] = a
		writeEnvelope(w, http.StatusCreated, a, "")
	case r.Method == http.MethodDelete && r.URL.Path == "/api/schedules":
		id := r.URL.Query().Get("id")
		if _, ok := f.assignments[id]; !ok {
			writeEnvelope(w, http.StatusNotFound, nil, "Schedule not found")
			return
		}
		delete(f.assignments, id)
		writeEnvelope(w, http.StatusOK, nil, "")
	default:
		writeEnvelope(w, http.StatusNotFound, nil, "no route")
	}
}

func TestBoardOverClient(t *testing.T) {
	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	api := &fakeAPI{
		employees:   []scheduling.Employee{{ID: "e1", Name: "Alice", Position: scheduling.RoleRA}},
		assignments: map[string]scheduling.Assignment{},
	}
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := New(srv.URL)
	board := scheduling.NewBoard("org", scheduling.DefaultTaxonomy(), c, c)
	require.NoError(t, board.Load(context.Background(), may1))

	created, err := board.Add(context.Background(), scheduling.AddRequest{EmployeeID: "e1", Shift: "morning", Location: "Third_floor"})
	require.NoError(t, err)
	assert.Len(t, board.Grid(scheduling.LocationAll, scheduling.LeaveAll).Cell("RA", "morning"), 1)

	// 其他地方已刪除：board 靜默處理 404
	api.mu.Lock()
	delete(api.assignments, created.ID)
	api.mu.Unlock()
	require.NoError(t, board.Remove(context.Background(), created.ID))
	assert.Empty(t, board.Snapshot().Assignments)
}
