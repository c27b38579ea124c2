package service

import (
	"bytes"
	"context"
	"time"

	"talentsync/internal/core"
	"talentsync/internal/dto"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/telemetry"
	"talentsync/pkg/scheduling"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BoardService 每個 request 建一個 scheduling.Board，透過 in-process adapter 讀寫資料
type BoardService struct {
	logger        *zap.Logger
	trace         *telemetry.Trace
	taxonomy      *scheduling.Taxonomy
	employees     *EmployeeService
	schedules     *ScheduleService
	organizations *OrganizationService
}

func NewBoardService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	taxonomy *scheduling.Taxonomy,
	employees *EmployeeService,
	schedules *ScheduleService,
	organizations *OrganizationService,
) *BoardService {
	return &BoardService{
		logger:        logger,
		trace:         trace,
		taxonomy:      taxonomy,
		employees:     employees,
		schedules:     schedules,
		organizations: organizations,
	}
}

func (s *BoardService) View(ctx context.Context, orgID primitive.ObjectID, q *dto.BoardQueryDto) (*dto.BoardViewDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	date, err := scheduling.ParseDate(q.Date)
	if err != nil {
		return nil, cErr.InvalidDate(err.Error())
	}
	board, err := s.open(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if err := board.Load(ctx, date); err != nil {
		return nil, cErr.FromDomain(err)
	}

	location := q.Location
	if location == "" {
		location = scheduling.LocationAll
	}
	leave := scheduling.LeaveFilter(q.Leave)
	if leave == "" {
		leave = scheduling.LeaveAll
	}
	snapshot := board.Snapshot()
	grid := board.Grid(location, leave)
	counts := scheduling.Summarize(grid, snapshot.Employees)

	s.trace.ApplyTraceAttributes(span, core.TraceBoardMeta{
		OrgID:    orgID.Hex(),
		Day:      scheduling.DayKey(date),
		Location: location,
		Leave:    string(leave),
		Total:    counts.Total,
		OnLeave:  counts.OnLeave,
	})

	return &dto.BoardViewDto{
		OrgID:     orgID.Hex(),
		Date:      scheduling.Day(date),
		Location:  location,
		Leave:     string(leave),
		Shifts:    s.taxonomy.Shifts(),
		Locations: board.Locations(),
		Rows:      grid.Rows(),
		Counts:    counts,
		Employees: snapshot.Employees,
	}, nil
}

// Available 可排入指定職位（與班別）的員工，排除請假中的人
func (s *BoardService) Available(ctx context.Context, orgID primitive.ObjectID, q *dto.AvailableQueryDto) ([]scheduling.Employee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	board, err := s.openDay(ctx, orgID, q.Date)
	if err != nil {
		return nil, err
	}
	return board.Available(q.Position, q.Shift), nil
}

// Export 回傳檔名與 CSV 內容；不套用任何 UI 篩選
func (s *BoardService) Export(ctx context.Context, orgID primitive.ObjectID, day string) (string, []byte, error) {
	ctx, _, end := s.trace.WithSpan(ctx, string(core.SpanExportCommand))
	defer end(nil)

	date, err := scheduling.ParseDate(day)
	if err != nil {
		return "", nil, cErr.InvalidDate(err.Error())
	}
	board, err := s.open(ctx, orgID)
	if err != nil {
		return "", nil, err
	}
	if err := board.Load(ctx, date); err != nil {
		return "", nil, cErr.FromDomain(err)
	}

	var buf bytes.Buffer
	if err := scheduling.WriteCSV(&buf, board.Summary()); err != nil {
		return "", nil, cErr.InternalServer("write csv: " + err.Error())
	}
	return scheduling.FileName(date), buf.Bytes(), nil
}

func (s *BoardService) Add(ctx context.Context, orgID primitive.ObjectID, req *dto.BoardAddDto) (scheduling.Assignment, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	date, err := scheduling.ParseDate(req.Date)
	if err != nil {
		return scheduling.Assignment{}, cErr.InvalidDate(err.Error())
	}
	board, err := s.open(ctx, orgID)
	if err != nil {
		return scheduling.Assignment{}, err
	}
	if err := board.Load(ctx, date); err != nil {
		return scheduling.Assignment{}, cErr.FromDomain(err)
	}
	created, err := board.Add(ctx, scheduling.AddRequest{
		EmployeeID: req.EmployeeID,
		Shift:      req.Shift,
		Location:   req.Location,
		Position:   req.Position,
		Date:       date,
	})
	if err != nil {
		return scheduling.Assignment{}, cErr.FromDomain(err)
	}
	return created, nil
}

// Move 只改班別；目標班別已有同一員工時回傳 409
func (s *BoardService) Move(ctx context.Context, orgID primitive.ObjectID, id string, req *dto.BoardMoveDto) (scheduling.Assignment, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	board, err := s.openDay(ctx, orgID, req.Date)
	if err != nil {
		return scheduling.Assignment{}, err
	}
	moved, err := board.Move(ctx, id, req.Shift)
	if err != nil {
		return scheduling.Assignment{}, cErr.FromDomain(err)
	}
	return moved, nil
}

// Remove 不存在的 id 視為成功
func (s *BoardService) Remove(ctx context.Context, orgID primitive.ObjectID, id, day string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	board, err := s.openDay(ctx, orgID, day)
	if err != nil {
		return err
	}
	if err := board.Remove(ctx, id); err != nil {
		return cErr.FromDomain(err)
	}
	return nil
}

// ToggleLeave 翻轉員工請假旗標，排班不受影響
func (s *BoardService) ToggleLeave(ctx context.Context, orgID primitive.ObjectID, employeeID string) (scheduling.Employee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	board, err := s.open(ctx, orgID)
	if err != nil {
		return scheduling.Employee{}, err
	}
	if err := board.LoadEmployees(ctx); err != nil {
		return scheduling.Employee{}, cErr.FromDomain(err)
	}
	updated, err := board.ToggleLeave(ctx, employeeID)
	if err != nil {
		return scheduling.Employee{}, cErr.FromDomain(err)
	}
	return updated, nil
}

func (s *BoardService) openDay(ctx context.Context, orgID primitive.ObjectID, day string) (*scheduling.Board, error) {
	date, err := scheduling.ParseDate(day)
	if err != nil {
		return nil, cErr.InvalidDate(err.Error())
	}
	board, err := s.open(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if err := board.Load(ctx, date); err != nil {
		return nil, cErr.FromDomain(err)
	}
	return board, nil
}

func (s *BoardService) open(ctx context.Context, orgID primitive.ObjectID) (*scheduling.Board, error) {
	if err := authorizeOrg(ctx, orgID); err != nil {
		return nil, err
	}
	locations, err := s.organizations.Locations(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return scheduling.NewBoard(
		orgID.Hex(),
		s.taxonomy,
		&boardDirectory{employees: s.employees},
		&boardSchedules{schedules: s.schedules},
		scheduling.WithLocations(locations),
	), nil
}

var (
	_ scheduling.Directory = (*boardDirectory)(nil)
	_ scheduling.Schedules = (*boardSchedules)(nil)
)

// boardDirectory 讓 Board 直接呼叫 EmployeeService；錯誤轉成 scheduling 的分類
type boardDirectory struct {
	employees *EmployeeService
}

func (d *boardDirectory) ListEmployees(ctx context.Context, orgHex string) ([]scheduling.Employee, error) {
	const op = "list employees"
	orgID, err := primitive.ObjectIDFromHex(orgHex)
	if err != nil {
		return nil, cErr.ToDomain(op, cErr.BadRequestParams("Invalid organization ID"))
	}
	employees, err := d.employees.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, cErr.ToDomain(op, err)
	}
	out := make([]scheduling.Employee, len(employees))
	for i, e := range employees {
		out[i] = e.Scheduling()
	}
	return out, nil
}

func (d *boardDirectory) UpdateEmployee(ctx context.Context, idHex string, patch scheduling.EmployeePatch) (scheduling.Employee, error) {
	const op = "update employee"
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return scheduling.Employee{}, cErr.ToDomain(op, cErr.NotFound("Employee not found"))
	}
	req := &dto.UpdateEmployeeDto{
		Name:     patch.Name,
		Position: patch.Position,
		OnLeave:  patch.OnLeave,
	}
	if patch.Status != nil {
		status := core.EmployeeStatus(*patch.Status)
		req.Status = &status
	}
	updated, err := d.employees.Update(ctx, id, req)
	if err != nil {
		return scheduling.Employee{}, cErr.ToDomain(op, err)
	}
	return updated.Scheduling(), nil
}

type boardSchedules struct {
	schedules *ScheduleService
}

func (b *boardSchedules) ListByDate(ctx context.Context, orgHex string, date time.Time) ([]scheduling.Assignment, error) {
	schedules, err := b.schedules.ListByDate(ctx, orgHex, date)
	if err != nil {
		return nil, cErr.ToDomain("list schedules", err)
	}
	out := make([]scheduling.Assignment, len(schedules))
	for i, sc := range schedules {
		out[i] = sc.Scheduling()
	}
	return out, nil
}

func (b *boardSchedules) CreateAssignment(ctx context.Context, a scheduling.Assignment) (scheduling.Assignment, error) {
	created, err := b.schedules.Create(ctx, &dto.CreateScheduleDto{
		OrgID:        a.OrgID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Position:     a.Position,
		Date:         scheduling.DayKey(a.Date),
		Shift:        a.Shift,
		Location:     a.Location,
		OnLeave:      a.OnLeave,
	})
	if err != nil {
		return scheduling.Assignment{}, cErr.ToDomain("create schedule", err)
	}
	return created.Scheduling(), nil
}

func (b *boardSchedules) UpdateAssignment(ctx context.Context, id string, patch scheduling.AssignmentPatch) (scheduling.Assignment, error) {
	req := &dto.UpdateScheduleDto{
		ID:           id,
		EmployeeName: patch.EmployeeName,
		Position:     patch.Position,
		Shift:        patch.Shift,
		Location:     patch.Location,
		OnLeave:      patch.OnLeave,
	}
	if patch.Date != nil {
		day := scheduling.DayKey(*patch.Date)
		req.Date = &day
	}
	updated, err := b.schedules.Update(ctx, req)
	if err != nil {
		return scheduling.Assignment{}, cErr.ToDomain("update schedule", err)
	}
	return updated.Scheduling(), nil
}

func (b *boardSchedules) DeleteAssignment(ctx context.Context, id string) error {
	return cErr.ToDomain("delete schedule", b.schedules.Delete(ctx, id))
}
