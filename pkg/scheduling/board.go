package scheduling

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Directory Board 讀寫員工資料的後端
type Directory interface {
	ListEmployees(ctx context.Context, orgID string) ([]Employee, error)
	UpdateEmployee(ctx context.Context, id string, patch EmployeePatch) (Employee, error)
}

// Schedules Board 讀寫排班的後端
type Schedules interface {
	ListByDate(ctx context.Context, orgID string, date time.Time) ([]Assignment, error)
	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	UpdateAssignment(ctx context.Context, id string, patch AssignmentPatch) (Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}

type BoardOption func(*Board)

// WithLocations 以組織自己的地點取代 taxonomy 預設值
func WithLocations(locations []string) BoardOption {
	return func(b *Board) {
		if len(locations) > 0 {
			b.locations = append([]string(nil), locations...)
		}
	}
}

func WithIDGenerator(fn func() string) BoardOption {
	return func(b *Board) { b.newID = fn }
}

type collection struct {
	seq      uint64
	loading  bool
	mutating bool
}

func (c *collection) busy() bool { return c.loading || c.mutating }

// Board 一個組織當天的狀態容器，所有異動都經過它的指令；呼叫後端時不持鎖。
// 每個集合同時只允許一個寫入者，fetch 帶序號，舊回應不會蓋掉新的
type Board struct {
	mu sync.RWMutex

	orgID     string
	tax       *Taxonomy
	directory Directory
	schedules Schedules
	locations []string
	newID     func() string

	date        time.Time
	employees   []Employee
	assignments []Assignment

	employeeState collection
	scheduleState collection
}

func NewBoard(orgID string, tax *Taxonomy, directory Directory, schedules Schedules, opts ...BoardOption) *Board {
	b := &Board{
		orgID:     orgID,
		tax:       tax,
		directory: directory,
		schedules: schedules,
		locations: tax.Locations(),
		newID:     func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type Snapshot struct {
	OrgID            string       `json:"orgId"`
	Date             time.Time    `json:"date"`
	Employees        []Employee   `json:"employees"`
	Assignments      []Assignment `json:"assignments"`
	EmployeesLoading bool         `json:"employeesLoading"`
	SchedulesLoading bool         `json:"schedulesLoading"`
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		OrgID:            b.orgID,
		Date:             b.date,
		Employees:        append([]Employee(nil), b.employees...),
		Assignments:      append([]Assignment(nil), b.assignments...),
		EmployeesLoading: b.employeeState.loading,
		SchedulesLoading: b.scheduleState.loading,
	}
}

func (b *Board) Taxonomy() *Taxonomy { return b.tax }

func (b *Board) Locations() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.locations...)
}

// Load 同時抓員工與當天排班
func (b *Board) Load(ctx context.Context, date time.Time) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.LoadEmployees(gctx) })
	g.Go(func() error { return b.LoadSchedules(gctx, date) })
	return g.Wait()
}

func (b *Board) LoadEmployees(ctx context.Context) error {
	b.mu.Lock()
	if b.employeeState.mutating {
		b.mu.Unlock()
		return ErrBusy
	}
	b.employeeState.seq++
	seq := b.employeeState.seq
	b.employeeState.loading = true
	b.mu.Unlock()

	list, err := b.directory.ListEmployees(ctx, b.orgID)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.employeeState.seq {
		return ErrStale
	}
	b.employeeState.loading = false
	if err != nil {
		return classify("load employees", err)
	}
	b.employees = append([]Employee(nil), list...)
	return nil
}

func (b *Board) LoadSchedules(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		return validationError("load schedules", "date is required")
	}
	b.mu.Lock()
	if b.scheduleState.mutating {
		b.mu.Unlock()
		return ErrBusy
	}
	b.scheduleState.seq++
	seq := b.scheduleState.seq
	b.scheduleState.loading = true
	b.mu.Unlock()

	list, err := b.schedules.ListByDate(ctx, b.orgID, date)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.scheduleState.seq {
		return ErrStale
	}
	b.scheduleState.loading = false
	if err != nil {
		return classify("load schedules", err)
	}
	day := Day(date)
	kept := make([]Assignment, 0, len(list))
	for _, a := range list {
		if !SameDay(a.Date, day) {
			continue
		}
		a.State = StateConfirmed
		kept = append(kept, a)
	}
	b.date = day
	b.assignments = kept
	return nil
}

// Grid 以 UI 篩選條件切分已載入的當天排班
func (b *Board) Grid(location string, leave LeaveFilter) Grid {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return BuildGrid(b.assignments, b.employees, b.tax, Filters{Date: b.date, Location: location, Leave: leave})
}

func (b *Board) Available(position, shiftID string) []Employee {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return AvailableEmployees(b.employees, b.assignments, b.tax, position, shiftID)
}

func (b *Board) Summary() Table {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return BuildSummary(b.assignments, b.employees, b.tax, b.date)
}

type AddRequest struct {
	EmployeeID string
	Shift      string
	Location   string
	// 空白時取員工職位對應的列；無論如何都必須對應到 grid 的某一列，存列名
	Position string
	// 空白時為已載入的那天，且必須同一天
	Date time.Time
}

// Add 後端回應前先放一筆 pending，成功後換成 confirmed；
// 看板上已有同員工同班別時直接拒絕，不呼叫後端
func (b *Board) Add(ctx context.Context, req AddRequest) (Assignment, error) {
	const op = "add assignment"
	b.mu.Lock()
	if b.date.IsZero() {
		b.mu.Unlock()
		return Assignment{}, validationError(op, "no day loaded")
	}
	date := req.Date
	if date.IsZero() {
		date = b.date
	}
	if !SameDay(date, b.date) {
		b.mu.Unlock()
		return Assignment{}, validationError(op, "date is outside the loaded day")
	}
	if _, ok := b.tax.Shift(req.Shift); !ok {
		b.mu.Unlock()
		return Assignment{}, validationError(op, "unknown shift "+req.Shift)
	}
	location := strings.TrimSpace(req.Location)
	if !b.allowedLocation(location) {
		b.mu.Unlock()
		return Assignment{}, validationError(op, "unknown location "+req.Location)
	}
	emp, ok := b.employee(req.EmployeeID)
	if !ok {
		b.mu.Unlock()
		return Assignment{}, validationError(op, "unknown employee "+req.EmployeeID)
	}
	raw := strings.TrimSpace(req.Position)
	if raw == "" {
		raw = string(emp.Position)
	}
	position, ok := b.tax.PositionOf(raw)
	if !ok {
		b.mu.Unlock()
		return Assignment{}, validationError(op, "unknown position "+raw)
	}
	if b.holds(emp.ID, req.Shift, "") {
		b.mu.Unlock()
		return Assignment{}, conflictError(op, emp.Name+" already has the "+req.Shift+" shift")
	}
	if b.scheduleState.busy() {
		b.mu.Unlock()
		return Assignment{}, ErrBusy
	}
	b.scheduleState.mutating = true

	record := Assignment{
		OrgID:        b.orgID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Position:     position,
		Date:         Day(date),
		Shift:        req.Shift,
		Location:     location,
		OnLeave:      emp.OnLeave,
	}
	pending := record
	pending.ID = "pending-" + b.newID()
	pending.State = StatePending
	b.assignments = append(b.assignments, pending)
	b.mu.Unlock()

	created, err := b.schedules.CreateAssignment(ctx, record)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.scheduleState.mutating = false
	b.removeAssignment(pending.ID)
	if err != nil {
		return Assignment{}, classify(op, err)
	}
	created.State = StateConfirmed
	if SameDay(created.Date, b.date) {
		b.assignments = append(b.assignments, created)
	}
	return created, nil
}

// Move 只改班別；移到原班別不呼叫後端
func (b *Board) Move(ctx context.Context, id, shiftID string) (Assignment, error) {
	const op = "move assignment"
	b.mu.Lock()
	if _, ok := b.tax.Shift(shiftID); !ok {
		b.mu.Unlock()
		return Assignment{}, validationError(op, "unknown shift "+shiftID)
	}
	i := b.assignmentIndex(id)
	if i < 0 {
		b.mu.Unlock()
		return Assignment{}, notFoundError(op, "assignment "+id)
	}
	current := b.assignments[i]
	if current.Shift == shiftID {
		b.mu.Unlock()
		return current, nil
	}
	if current.State == StatePending || b.scheduleState.busy() {
		b.mu.Unlock()
		return Assignment{}, ErrBusy
	}
	if b.holds(current.EmployeeID, shiftID, current.ID) {
		b.mu.Unlock()
		return Assignment{}, conflictError(op, current.EmployeeName+" already has the "+shiftID+" shift")
	}
	b.scheduleState.mutating = true
	b.mu.Unlock()

	updated, err := b.schedules.UpdateAssignment(ctx, id, AssignmentPatch{Shift: &shiftID})

	b.mu.Lock()
	defer b.mu.Unlock()
	b.scheduleState.mutating = false
	if err != nil {
		if IsNotFound(err) {
			b.removeAssignment(id)
		}
		return Assignment{}, classify(op, err)
	}
	updated.State = StateConfirmed
	if j := b.assignmentIndex(id); j >= 0 {
		b.assignments[j] = updated
	}
	return updated, nil
}

// Remove 刪除排班；本地或後端找不到的 id 視為成功
func (b *Board) Remove(ctx context.Context, id string) error {
	const op = "remove assignment"
	b.mu.Lock()
	i := b.assignmentIndex(id)
	if i < 0 {
		b.mu.Unlock()
		return nil
	}
	if b.assignments[i].State == StatePending || b.scheduleState.busy() {
		b.mu.Unlock()
		return ErrBusy
	}
	b.scheduleState.mutating = true
	b.mu.Unlock()

	err := b.schedules.DeleteAssignment(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.scheduleState.mutating = false
	if err != nil && !IsNotFound(err) {
		return classify(op, err)
	}
	b.removeAssignment(id)
	return nil
}

// ToggleLeave 切換請假旗標，不動既有排班；請假只是 grid 上的標記
func (b *Board) ToggleLeave(ctx context.Context, employeeID string) (Employee, error) {
	const op = "toggle leave"
	b.mu.Lock()
	emp, ok := b.employee(employeeID)
	if !ok {
		b.mu.Unlock()
		return Employee{}, notFoundError(op, "employee "+employeeID)
	}
	if b.employeeState.busy() {
		b.mu.Unlock()
		return Employee{}, ErrBusy
	}
	b.employeeState.mutating = true
	next := !emp.OnLeave
	b.mu.Unlock()

	updated, err := b.directory.UpdateEmployee(ctx, employeeID, EmployeePatch{OnLeave: &next})

	b.mu.Lock()
	defer b.mu.Unlock()
	b.employeeState.mutating = false
	if err != nil {
		if IsNotFound(err) {
			b.removeEmployee(employeeID)
		}
		return Employee{}, classify(op, err)
	}
	for i := range b.employees {
		if b.employees[i].ID == employeeID {
			b.employees[i] = updated
		}
	}
	return updated, nil
}

// 呼叫端持有 b.mu

func (b *Board) employee(id string) (Employee, bool) {
	for _, e := range b.employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

func (b *Board) assignmentIndex(id string) int {
	for i, a := range b.assignments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) holds(employeeID, shiftID, exceptID string) bool {
	for _, a := range b.assignments {
		if a.EmployeeID == employeeID && a.Shift == shiftID && a.ID != exceptID && SameDay(a.Date, b.date) {
			return true
		}
	}
	return false
}

func (b *Board) allowedLocation(location string) bool {
	if location == "" {
		return false
	}
	if len(b.locations) == 0 {
		return true
	}
	for _, l := range b.locations {
		if l == location {
			return true
		}
	}
	return false
}

func (b *Board) removeAssignment(id string) {
	if i := b.assignmentIndex(id); i >= 0 {
		b.assignments = append(b.assignments[:i], b.assignments[i+1:]...)
	}
}

func (b *Board) removeEmployee(id string) {
	for i, e := range b.employees {
		if e.ID == id {
			b.employees = append(b.employees[:i], b.employees[i+1:]...)
			return
		}
	}
}
