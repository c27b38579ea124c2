package job

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"talentsync/config"
	fluentdModel "talentsync/internal/database/fluentd/model"
	"talentsync/internal/database/mongodb/model"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"
	"talentsync/pkg/scheduling"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memOrganizations struct {
	service.OrganizationStore
	orgs []*model.Organization
}

func (m *memOrganizations) List(context.Context) ([]*model.Organization, error) {
	return m.orgs, nil
}

type memEmployees struct {
	service.EmployeeStore
	byOrg map[primitive.ObjectID][]*model.Employee
}

func (m *memEmployees) ListByOrg(_ context.Context, orgID primitive.ObjectID) ([]*model.Employee, error) {
	return m.byOrg[orgID], nil
}

type memSchedules struct {
	service.ScheduleStore
	mu      sync.Mutex
	byOrg   map[primitive.ObjectID][]*model.Schedule
	broken  primitive.ObjectID
	updates map[primitive.ObjectID]bson.M
	ranges  []string
}

func (m *memSchedules) ListRange(_ context.Context, orgID primitive.ObjectID, from, to time.Time) ([]*model.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if orgID == m.broken {
		return nil, errors.New("connection reset")
	}
	m.ranges = append(m.ranges, scheduling.DayKey(from)+".."+scheduling.DayKey(to))
	return m.byOrg[orgID], nil
}

func (m *memSchedules) UpdateByID(_ context.Context, id primitive.ObjectID, update bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates[id] = update
	return 1, nil
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

func TestReconcileJobRunOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	healthy, broken := primitive.NewObjectID(), primitive.NewObjectID()
	alice := primitive.NewObjectID()
	stale, fresh := primitive.NewObjectID(), primitive.NewObjectID()
	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	organizations := &memOrganizations{orgs: []*model.Organization{{ID: healthy, Name: "Clinic"}, {ID: broken, Name: "Down"}}}
	employees := &memEmployees{byOrg: map[primitive.ObjectID][]*model.Employee{
		healthy: {{ID: alice, OrgID: healthy, Name: "Alice Chen", Position: scheduling.RoleRA}},
	}}
	schedules := &memSchedules{
		broken:  broken,
		updates: map[primitive.ObjectID]bson.M{},
		byOrg: map[primitive.ObjectID][]*model.Schedule{
			healthy: {
				{ID: stale, OrgID: healthy, EmployeeID: alice, EmployeeName: "Alice", Position: "RA", Date: may1, Day: "2024-05-01", Shift: "morning"},
				{ID: fresh, OrgID: healthy, EmployeeID: alice, EmployeeName: "Alice Chen", Position: "RA", Date: may1.AddDate(0, 0, 1), Day: "2024-05-02", Shift: "morning"},
			},
		},
	}

	conf := &config.Configuration{Schedule: config.Schedule{ReconcileDays: 3}}
	tax := scheduling.DefaultTaxonomy()
	trace := &telemetry.Trace{}
	observed, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(observed)
	metric := telemetry.NewMetricWithRegistry(conf, prometheus.NewRegistry())

	organizationService := service.NewOrganizationService(trace, tax, organizations)
	scheduleService := service.NewScheduleService(logger, trace, metric, conf, tax, schedules, employees, organizationService, noCache{}, noAudit{})
	job := NewReconcileJob(logger, trace, conf, organizationService, scheduleService)
	job.now = func() time.Time { return may1.Add(15 * time.Hour) }

	require.NoError(t, job.RunOnce(context.Background()))

	require.Len(t, schedules.updates, 1)
	assert.Equal(t, bson.M{"$set": bson.M{"employeeName": "Alice Chen", "position": "RA"}}, schedules.updates[stale])
	assert.Equal(t, []string{"2024-05-01..2024-05-04"}, schedules.ranges)

	warned := logs.FilterMessage("reconcile organization failed").All()
	require.Len(t, warned, 1)
	assert.Equal(t, broken.Hex(), warned[0].ContextMap()["orgID"])

	infos := logs.FilterMessage("reconciled schedules").All()
	require.Len(t, infos, 1)
	assert.EqualValues(t, 1, infos[0].ContextMap()["updated"])
}

func TestReconcileJobDefaultsToOneDay(t *testing.T) {
	orgID := primitive.NewObjectID()
	schedules := &memSchedules{updates: map[primitive.ObjectID]bson.M{}, byOrg: map[primitive.ObjectID][]*model.Schedule{}}
	conf := &config.Configuration{}
	tax := scheduling.DefaultTaxonomy()
	trace := &telemetry.Trace{}
	organizationService := service.NewOrganizationService(trace, tax, &memOrganizations{orgs: []*model.Organization{{ID: orgID}}})
	scheduleService := service.NewScheduleService(zap.NewNop(), trace, nil, conf, tax, schedules, &memEmployees{}, organizationService, noCache{}, noAudit{})

	job := NewReconcileJob(zap.NewNop(), trace, conf, organizationService, scheduleService)
	job.now = func() time.Time { return time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC) }
	job.Run()

	sort.Strings(schedules.ranges)
	assert.Equal(t, []string{"2024-05-01..2024-05-02"}, schedules.ranges)
}
