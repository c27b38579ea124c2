package service

import (
	"context"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"talentsync/config"
	"talentsync/internal/core"
	fluentdModel "talentsync/internal/database/fluentd/model"
	"talentsync/internal/database/mongodb/model"
	"talentsync/internal/telemetry"
	"talentsync/pkg/scheduling"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var duplicateKey = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}

type fakeOrganizationStore struct {
	mu   sync.Mutex
	orgs map[primitive.ObjectID]model.Organization
}

func (f *fakeOrganizationStore) Create(ctx context.Context, o *model.Organization) (*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	f.orgs[o.ID] = *o
	return o, nil
}

func (f *fakeOrganizationStore) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orgs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &o, nil
}

func (f *fakeOrganizationStore) List(ctx context.Context) ([]*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Organization{}
	for _, o := range f.orgs {
		o := o
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (f *fakeOrganizationStore) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orgs[id]
	if !ok {
		return 0, mongo.ErrNoDocuments
	}
	set, _ := update["$set"].(bson.M)
	if v, ok := set["name"].(string); ok {
		o.Name = v
	}
	if v, ok := set["locations"].([]string); ok {
		o.Locations = v
	}
	f.orgs[id] = o
	return 1, nil
}

type fakeEmployeeStore struct {
	mu        sync.Mutex
	employees map[primitive.ObjectID]model.Employee
}

func (f *fakeEmployeeStore) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	created, err := f.CreateMany(ctx, []*model.Employee{e})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (f *fakeEmployeeStore) CreateMany(ctx context.Context, employees []*model.Employee) ([]*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range employees {
		for _, existing := range f.employees {
			if existing.OrgID == e.OrgID && existing.EmployeeID == e.EmployeeID {
				return nil, duplicateKey
			}
		}
		if e.ID.IsZero() {
			e.ID = primitive.NewObjectID()
		}
		f.employees[e.ID] = *e
	}
	return employees, nil
}

func (f *fakeEmployeeStore) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &e, nil
}

func (f *fakeEmployeeStore) ListByOrg(ctx context.Context, orgID primitive.ObjectID) ([]*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Employee{}
	for _, e := range f.employees {
		if e.OrgID == orgID {
			e := e
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeEmployeeStore) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return 0, mongo.ErrNoDocuments
	}
	set, _ := update["$set"].(bson.M)
	if v, ok := set["name"].(string); ok {
		e.Name = v
	}
	if v, ok := set["position"].(scheduling.Role); ok {
		e.Position = v
	}
	if v, ok := set["onLeave"].(bool); ok {
		e.OnLeave = v
	}
	if v, ok := set["status"].(core.EmployeeStatus); ok {
		e.Status = v
	}
	f.employees[id] = e
	return 1, nil
}

func (f *fakeEmployeeStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.employees[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.employees, id)
	return nil
}

// fakeScheduleStore 模擬 (orgId, employeeId, day, shift) 唯一索引
type fakeScheduleStore struct {
	mu        sync.Mutex
	schedules map[primitive.ObjectID]model.Schedule
	seq       time.Time
}

func (f *fakeScheduleStore) taken(s model.Schedule) bool {
	for _, existing := range f.schedules {
		if existing.ID != s.ID && existing.OrgID == s.OrgID && existing.EmployeeID == s.EmployeeID &&
			existing.Day == s.Day && existing.Shift == s.Shift {
			return true
		}
	}
	return false
}

func (f *fakeScheduleStore) Create(ctx context.Context, s *model.Schedule) (*model.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.taken(*s) {
		return nil, duplicateKey
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	f.seq = f.seq.Add(time.Second)
	s.CreatedAt, s.UpdatedAt = f.seq, f.seq
	f.schedules[s.ID] = *s
	return s, nil
}

func (f *fakeScheduleStore) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.schedules[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (f *fakeScheduleStore) ListRange(ctx context.Context, orgID primitive.ObjectID, from, to time.Time) ([]*model.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Schedule{}
	for _, s := range f.schedules {
		if s.OrgID == orgID && !s.Date.Before(from) && s.Date.Before(to) {
			s := s
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeScheduleStore) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.schedules[id]
	if !ok {
		return 0, mongo.ErrNoDocuments
	}
	set, _ := update["$set"].(bson.M)
	for k, v := range set {
		switch k {
		case "shift":
			s.Shift = v.(string)
		case "location":
			s.Location = v.(string)
		case "date":
			s.Date = v.(time.Time)
		case "day":
			s.Day = v.(string)
		case "employeeName":
			s.EmployeeName = v.(string)
		case "position":
			s.Position = v.(string)
		case "onLeave":
			s.OnLeave = v.(bool)
		}
	}
	if f.taken(s) {
		return 0, duplicateKey
	}
	f.schedules[id] = s
	return 1, nil
}

func (f *fakeScheduleStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.schedules[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.schedules, id)
	return nil
}

type fakeScheduleCache struct {
	mu          sync.Mutex
	entries     map[string][]*model.Schedule
	generations map[string]int64
	invalidated []string
}

func (f *fakeScheduleCache) Get(ctx context.Context, orgID, day string) ([]*model.Schedule, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list, ok := f.entries[orgID+":"+day]
	return list, ok, nil
}

func (f *fakeScheduleCache) Generation(ctx context.Context, orgID, day string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generations[orgID+":"+day], nil
}

func (f *fakeScheduleCache) Set(ctx context.Context, orgID, day string, generation int64, schedules []*model.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generations[orgID+":"+day] != generation {
		return nil
	}
	f.entries[orgID+":"+day] = schedules
	return nil
}

func (f *fakeScheduleCache) Invalidate(ctx context.Context, orgID string, days ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, day := range days {
		f.generations[orgID+":"+day]++
		delete(f.entries, orgID+":"+day)
		if !slices.Contains(f.invalidated, day) {
			f.invalidated = append(f.invalidated, day)
		}
	}
	return nil
}

// gatedScheduleStore 第一次 ListRange 讀完後停住，直到 release 關閉
type gatedScheduleStore struct {
	*fakeScheduleStore
	armed   atomic.Bool
	read    chan struct{}
	release chan struct{}
}

func newGatedScheduleStore(inner *fakeScheduleStore) *gatedScheduleStore {
	g := &gatedScheduleStore{fakeScheduleStore: inner, read: make(chan struct{}), release: make(chan struct{})}
	g.armed.Store(true)
	return g
}

func (g *gatedScheduleStore) ListRange(ctx context.Context, orgID primitive.ObjectID, from, to time.Time) ([]*model.Schedule, error) {
	list, err := g.fakeScheduleStore.ListRange(ctx, orgID, from, to)
	if g.armed.CompareAndSwap(true, false) {
		close(g.read)
		<-g.release
	}
	return list, err
}

type fakeAuditLogger struct {
	mu   sync.Mutex
	logs []fluentdModel.AuditLog
}

func (f *fakeAuditLogger) LogAudit(ctx context.Context, audit fluentdModel.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, audit)
	return nil
}

func (f *fakeAuditLogger) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.logs))
	for i, l := range f.logs {
		out[i] = l.Action
	}
	return out
}

// fixture 一個組織、兩位員工，所有 store 都在記憶體
type fixture struct {
	conf          *config.Configuration
	metric        *telemetry.Metric
	organizations *fakeOrganizationStore
	employees     *fakeEmployeeStore
	schedules     *fakeScheduleStore
	cache         *fakeScheduleCache
	audit         *fakeAuditLogger

	organizationService *OrganizationService
	employeeService     *EmployeeService
	scheduleService     *ScheduleService
	boardService        *BoardService

	orgID   primitive.ObjectID
	alice   primitive.ObjectID
	bob     primitive.ObjectID
	other   primitive.ObjectID
	outside primitive.ObjectID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conf := &config.Configuration{App: config.App{Name: "talentsync"}}
	tax := scheduling.DefaultTaxonomy()
	trace := &telemetry.Trace{}
	logger := zap.NewNop()

	f := &fixture{
		conf:          conf,
		metric:        telemetry.NewMetricWithRegistry(conf, prometheus.NewRegistry()),
		organizations: &fakeOrganizationStore{orgs: map[primitive.ObjectID]model.Organization{}},
		employees:     &fakeEmployeeStore{employees: map[primitive.ObjectID]model.Employee{}},
		schedules:     &fakeScheduleStore{schedules: map[primitive.ObjectID]model.Schedule{}, seq: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		cache:         &fakeScheduleCache{entries: map[string][]*model.Schedule{}, generations: map[string]int64{}},
		audit:         &fakeAuditLogger{},
		orgID:         primitive.NewObjectID(),
		alice:         primitive.NewObjectID(),
		bob:           primitive.NewObjectID(),
		other:         primitive.NewObjectID(),
		outside:       primitive.NewObjectID(),
	}
	f.organizations.orgs[f.orgID] = model.Organization{ID: f.orgID, Name: "Clinic", Locations: []string{"Third_floor", "Sixth_floor"}}
	f.organizations.orgs[f.other] = model.Organization{ID: f.other, Name: "Other"}
	f.employees.employees[f.alice] = model.Employee{ID: f.alice, OrgID: f.orgID, EmployeeID: "E1", Name: "Alice", Position: scheduling.RoleRA, Status: core.EmployeeStatusActive}
	f.employees.employees[f.bob] = model.Employee{ID: f.bob, OrgID: f.orgID, EmployeeID: "E2", Name: "Bob", Position: scheduling.RoleManager, Status: core.EmployeeStatusActive}
	f.employees.employees[f.outside] = model.Employee{ID: f.outside, OrgID: f.other, EmployeeID: "E1", Name: "Olga", Position: scheduling.RoleRA}

	f.organizationService = NewOrganizationService(trace, tax, f.organizations)
	f.employeeService = NewEmployeeService(trace, f.employees, f.organizationService)
	f.scheduleService = NewScheduleService(logger, trace, f.metric, conf, tax, f.schedules, f.employees, f.organizationService, f.cache, f.audit)
	f.boardService = NewBoardService(logger, trace, tax, f.employeeService, f.scheduleService, f.organizationService)
	return f
}

func asUser(ctx context.Context, orgID primitive.ObjectID, role core.AccessRole) context.Context {
	return core.WithClaims(ctx, &core.Claims{Email: "tester@example.com", OrgID: orgID.Hex(), Role: role})
}

func mustID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("invalid object id %q: %v", hex, err)
	}
	return id
}
