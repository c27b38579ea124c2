package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"talentsync/config"
	fluentdModel "talentsync/internal/database/fluentd/model"
	"talentsync/internal/database/mongodb/model"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"
	"talentsync/pkg/scheduling"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type stubOrganizations struct {
	service.OrganizationStore
	org model.Organization
}

func (s *stubOrganizations) GetByID(_ context.Context, id primitive.ObjectID) (*model.Organization, error) {
	if id != s.org.ID {
		return nil, mongo.ErrNoDocuments
	}
	org := s.org
	return &org, nil
}

type stubEmployees struct {
	service.EmployeeStore
	list []*model.Employee
}

func (s *stubEmployees) ListByOrg(_ context.Context, _ primitive.ObjectID) ([]*model.Employee, error) {
	return s.list, nil
}

type stubSchedules struct {
	service.ScheduleStore
	list []*model.Schedule
}

func (s *stubSchedules) ListRange(_ context.Context, _ primitive.ObjectID, from, to time.Time) ([]*model.Schedule, error) {
	out := []*model.Schedule{}
	for _, sc := range s.list {
		if !sc.Date.Before(from) && sc.Date.Before(to) {
			out = append(out, sc)
		}
	}
	return out, nil
}

type noCache struct{}

func (noCache) Get(context.Context, string, string) ([]*model.Schedule, bool, error) {
	return nil, false, nil
}
func (noCache) Generation(context.Context, string, string) (int64, error)           { return 0, nil }
func (noCache) Set(context.Context, string, string, int64, []*model.Schedule) error { return nil }
func (noCache) Invalidate(context.Context, string, ...string) error                 { return nil }

type noAudit struct{}

func (noAudit) LogAudit(context.Context, fluentdModel.AuditLog) error { return nil }

func newExportHandler(t *testing.T, exportDir string) (*ExportHandler, primitive.ObjectID) {
	t.Helper()
	conf := &config.Configuration{App: config.App{Name: "talentsync", Version: "test"}}
	conf.Schedule.ExportDir = exportDir
	tax := scheduling.DefaultTaxonomy()
	trace := &telemetry.Trace{}
	logger := zap.NewNop()
	metric := telemetry.NewMetricWithRegistry(conf, prometheus.NewRegistry())

	orgID, alice := primitive.NewObjectID(), primitive.NewObjectID()
	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	organizations := &stubOrganizations{org: model.Organization{ID: orgID, Name: "Clinic"}}
	employees := &stubEmployees{list: []*model.Employee{
		{ID: alice, OrgID: orgID, EmployeeID: "E1", Name: "Alice", Position: scheduling.RoleRA},
	}}
	schedules := &stubSchedules{list: []*model.Schedule{
		{ID: primitive.NewObjectID(), OrgID: orgID, EmployeeID: alice, EmployeeName: "Alice", Position: "RA", Date: may1, Day: "2024-05-01", Shift: "morning", Location: "Third_floor"},
	}}

	organizationService := service.NewOrganizationService(trace, tax, organizations)
	employeeService := service.NewEmployeeService(trace, employees, organizationService)
	scheduleService := service.NewScheduleService(logger, trace, metric, conf, tax, schedules, employees, organizationService, noCache{}, noAudit{})
	boardService := service.NewBoardService(logger, trace, tax, employeeService, scheduleService, organizationService)

	return NewExportHandler(logger, conf, boardService), orgID
}

func TestExportWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "exports")
	handler, orgID := newExportHandler(t, out)

	var printed bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&printed)

	err := handler.Export(cmd, &ExportOptions{OrgID: orgID.Hex(), Date: "2024-05-01"})
	require.NoError(t, err)

	path := filepath.Join(out, "schedule_20240501.csv")
	assert.Equal(t, path, strings.TrimSpace(printed.String()))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Alice")
	assert.True(t, strings.HasPrefix(string(body), "Position,"))
}

func TestExportOutFlagOverridesConfig(t *testing.T) {
	handler, orgID := newExportHandler(t, filepath.Join(t.TempDir(), "unused"))
	out := t.TempDir()

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, handler.Export(cmd, &ExportOptions{OrgID: orgID.Hex(), Date: "2024-05-01", Out: out}))
	assert.FileExists(t, filepath.Join(out, "schedule_20240501.csv"))
}

func TestExportRejectsBadInput(t *testing.T) {
	handler, orgID := newExportHandler(t, t.TempDir())
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.Error(t, handler.Export(cmd, &ExportOptions{OrgID: "not-an-id", Date: "2024-05-01"}))
	assert.Error(t, handler.Export(cmd, &ExportOptions{OrgID: orgID.Hex(), Date: "05/01/2024"}))
	assert.Error(t, handler.Export(cmd, &ExportOptions{OrgID: primitive.NewObjectID().Hex(), Date: "2024-05-01"}))
}
