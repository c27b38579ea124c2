package service

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"talentsync/config"
	"talentsync/internal/core"
	fluentdModel "talentsync/internal/database/fluentd/model"
	"talentsync/internal/database/mongodb/model"
	"talentsync/internal/dto"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/telemetry"
	"talentsync/pkg/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	scheduleConflictMessage = "Schedule conflict: employee already has a shift at this time"
	scheduleNotFoundMessage = "Schedule not found"
	defaultMaxRecurrence    = 31
)

type ScheduleService struct {
	logger        *zap.Logger
	trace         *telemetry.Trace
	metric        *telemetry.Metric
	config        *config.Configuration
	taxonomy      *scheduling.Taxonomy
	schedules     ScheduleStore
	employees     EmployeeStore
	organizations *OrganizationService
	cache         ScheduleCache
	audit         AuditLogger
}

func NewScheduleService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	taxonomy *scheduling.Taxonomy,
	schedules ScheduleStore,
	employees EmployeeStore,
	organizations *OrganizationService,
	cache ScheduleCache,
	audit AuditLogger,
) *ScheduleService {
	return &ScheduleService{
		logger:        logger,
		trace:         trace,
		metric:        metric,
		config:        config,
		taxonomy:      taxonomy,
		schedules:     schedules,
		employees:     employees,
		organizations: organizations,
		cache:         cache,
		audit:         audit,
	}
}

// ListByDate 回傳 UTC 當天 [00:00, 24:00) 的排班，依 date、建立時間排序
func (s *ScheduleService) ListByDate(ctx context.Context, orgHex string, date time.Time) ([]*dto.ScheduleResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	orgID, err := primitive.ObjectIDFromHex(orgHex)
	if err != nil {
		return nil, cErr.BadRequestParams("Invalid organization ID")
	}
	if err := authorizeOrg(ctx, orgID); err != nil {
		return nil, err
	}

	day := scheduling.DayKey(date)
	meta := core.TraceScheduleMeta{Op: "list", OrgID: orgHex, Day: day}

	schedules, hit, cacheErr := s.cache.Get(ctx, orgHex, day)
	if cacheErr != nil {
		s.logger.Warn("schedule cache lookup failed", zap.String("orgId", orgHex), zap.String("day", day), zap.Error(cacheErr))
	}
	s.metric.CacheLookup(hit)
	if !hit {
		// 版本號須在讀 DB 前取得，讀取期間的寫入才會讓這次 Set 失效
		generation, genErr := s.cache.Generation(ctx, orgHex, day)
		if genErr != nil {
			s.logger.Warn("schedule cache generation lookup failed", zap.String("orgId", orgHex), zap.String("day", day), zap.Error(genErr))
		}
		from := scheduling.Day(date)
		schedules, err = s.schedules.ListRange(ctx, orgID, from, from.Add(24*time.Hour))
		if err != nil {
			return nil, cErr.DatabaseError("database ListSchedules error")
		}
		if genErr == nil {
			if err := s.cache.Set(ctx, orgHex, day, generation, schedules); err != nil {
				s.logger.Warn("schedule cache refresh failed", zap.String("orgId", orgHex), zap.String("day", day), zap.Error(err))
			}
		}
	}

	meta.Count, meta.CacheHit = len(schedules), hit
	s.trace.ApplyTraceAttributes(span, meta)

	resp := make([]*dto.ScheduleResponseDto, len(schedules))
	for i, sc := range schedules {
		resp[i] = modelToScheduleResponseDto(sc)
	}
	return resp, nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id primitive.ObjectID) (*dto.ScheduleResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	schedule, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOrg(ctx, schedule.OrgID); err != nil {
		return nil, err
	}
	return modelToScheduleResponseDto(schedule), nil
}

// Create 同一員工同一天同班別只能有一筆，重覆時回傳 409
func (s *ScheduleService) Create(ctx context.Context, req *dto.CreateScheduleDto) (_ *dto.ScheduleResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() {
		s.metric.AssignmentOp("create", outcomeOf(returnedError))
		end(returnedError)
	}()

	date, err := scheduling.ParseDate(req.Date)
	if err != nil {
		return nil, cErr.InvalidDate(err.Error())
	}
	schedule, err := s.newSchedule(ctx, scheduleDraft{
		orgHex:       req.OrgID,
		employeeHex:  req.EmployeeID,
		employeeName: req.EmployeeName,
		position:     req.Position,
		shift:        req.Shift,
		location:     req.Location,
		onLeave:      req.OnLeave,
	})
	if err != nil {
		return nil, err
	}
	schedule.Date = scheduling.Day(date)
	schedule.Day = scheduling.DayKey(date)

	s.trace.ApplyTraceAttributes(span, core.TraceScheduleMeta{
		Op:         "create",
		OrgID:      req.OrgID,
		EmployeeID: req.EmployeeID,
		Day:        schedule.Day,
		Shift:      schedule.Shift,
	})

	created, err := s.insert(ctx, schedule, "create")
	if err != nil {
		return nil, err
	}
	return modelToScheduleResponseDto(created), nil
}

// Update 部分更新；id 不存在回傳 404
func (s *ScheduleService) Update(ctx context.Context, req *dto.UpdateScheduleDto) (_ *dto.ScheduleResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() {
		s.metric.AssignmentOp("update", outcomeOf(returnedError))
		end(returnedError)
	}()

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return nil, cErr.NotFound(scheduleNotFoundMessage)
	}
	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOrg(ctx, existing.OrgID); err != nil {
		return nil, err
	}

	set := bson.M{}
	days := []string{existing.Day}
	if req.Shift != nil {
		if _, ok := s.taxonomy.Shift(*req.Shift); !ok {
			return nil, cErr.ValidateErr("unknown shift " + *req.Shift)
		}
		set["shift"] = *req.Shift
	}
	if req.Location != nil {
		if err := s.checkLocation(ctx, existing.OrgID, *req.Location); err != nil {
			return nil, err
		}
		set["location"] = *req.Location
	}
	if req.Date != nil {
		date, err := scheduling.ParseDate(*req.Date)
		if err != nil {
			return nil, cErr.InvalidDate(err.Error())
		}
		set["date"] = scheduling.Day(date)
		set["day"] = scheduling.DayKey(date)
		days = append(days, scheduling.DayKey(date))
	}
	if req.EmployeeName != nil {
		set["employeeName"] = *req.EmployeeName
	}
	if req.Position != nil {
		position, err := s.canonicalPosition(*req.Position)
		if err != nil {
			return nil, err
		}
		set["position"] = position
	}
	if req.OnLeave != nil {
		set["onLeave"] = *req.OnLeave
	}

	s.trace.ApplyTraceAttributes(span, core.TraceScheduleMeta{
		Op:         "update",
		OrgID:      existing.OrgID.Hex(),
		ScheduleID: req.ID,
		EmployeeID: existing.EmployeeID.Hex(),
		Day:        existing.Day,
		Shift:      existing.Shift,
	})

	if len(set) > 0 {
		if _, err := s.schedules.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
			switch {
			case mongo.IsDuplicateKeyError(err):
				return nil, cErr.Conflict(scheduleConflictMessage)
			case errors.Is(err, mongo.ErrNoDocuments):
				return nil, cErr.NotFound(scheduleNotFoundMessage)
			default:
				return nil, cErr.DatabaseError("database UpdateSchedule error")
			}
		}
		s.invalidate(ctx, existing.OrgID.Hex(), days...)
	}

	updated, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, fluentdModel.AuditLog{
		OrgID:      updated.OrgID.Hex(),
		Action:     "update",
		ScheduleID: updated.ID.Hex(),
		EmployeeID: updated.EmployeeID.Hex(),
		Day:        updated.Day,
		Shift:      updated.Shift,
	})
	return modelToScheduleResponseDto(updated), nil
}

func (s *ScheduleService) Delete(ctx context.Context, idHex string) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() {
		s.metric.AssignmentOp("delete", outcomeOf(returnedError))
		end(returnedError)
	}()

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return cErr.NotFound(scheduleNotFoundMessage)
	}
	existing, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOrg(ctx, existing.OrgID); err != nil {
		return err
	}
	s.trace.ApplyTraceAttributes(span, core.TraceScheduleMeta{
		Op:         "delete",
		OrgID:      existing.OrgID.Hex(),
		ScheduleID: idHex,
		Day:        existing.Day,
	})

	if err := s.schedules.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(scheduleNotFoundMessage)
		}
		return cErr.DatabaseError("database DeleteSchedule error")
	}
	s.invalidate(ctx, existing.OrgID.Hex(), existing.Day)
	s.logAudit(ctx, fluentdModel.AuditLog{
		OrgID:      existing.OrgID.Hex(),
		Action:     "delete",
		ScheduleID: idHex,
		EmployeeID: existing.EmployeeID.Hex(),
		Day:        existing.Day,
		Shift:      existing.Shift,
	})
	return nil
}

// CreateRecurring 依 RRULE 逐日建立；已存在的日期記在 Conflicts，不中斷其餘日期
func (s *ScheduleService) CreateRecurring(ctx context.Context, req *dto.CreateRecurringScheduleDto) (*dto.RecurringScheduleResultDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	start, err := scheduling.ParseDate(req.Start)
	if err != nil {
		return nil, cErr.InvalidDate(err.Error())
	}
	limit := s.config.Schedule.MaxRecurrence
	if limit <= 0 {
		limit = defaultMaxRecurrence
	}
	days, err := scheduling.ExpandRecurrence(req.RRule, start, limit)
	if err != nil {
		var domainErr *scheduling.Error
		if errors.As(err, &domainErr) {
			return nil, cErr.InvalidRecurrence(domainErr.UserMessage())
		}
		return nil, cErr.InvalidRecurrence(err.Error())
	}

	template, err := s.newSchedule(ctx, scheduleDraft{
		orgHex:      req.OrgID,
		employeeHex: req.EmployeeID,
		position:    req.Position,
		shift:       req.Shift,
		location:    req.Location,
	})
	if err != nil {
		return nil, err
	}

	result := &dto.RecurringScheduleResultDto{
		Created:   []*dto.ScheduleResponseDto{},
		Conflicts: []string{},
	}
	for _, day := range days {
		schedule := *template
		schedule.Date = day
		schedule.Day = scheduling.DayKey(day)
		created, err := s.insert(ctx, &schedule, "recurring")
		s.metric.AssignmentOp("recurring", outcomeOf(err))
		if err != nil {
			if isConflict(err) {
				result.Conflicts = append(result.Conflicts, schedule.Day)
				continue
			}
			return nil, err
		}
		result.Created = append(result.Created, modelToScheduleResponseDto(created))
	}

	s.trace.ApplyTraceAttributes(span, core.TraceScheduleMeta{
		Op:         "recurring",
		OrgID:      req.OrgID,
		EmployeeID: req.EmployeeID,
		Shift:      req.Shift,
		Count:      len(result.Created),
	})
	return result, nil
}

// Reconcile 以目前的員工資料改寫 [from, from+days) 內排班的 employee_name 與 position
func (s *ScheduleService) Reconcile(ctx context.Context, orgID primitive.ObjectID, from time.Time, days int) (*dto.ReconcileResultDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanReconcileJob))
	defer end(nil)

	if days <= 0 {
		days = 1
	}
	if limit := s.reconcileLimit(); days > limit {
		return nil, cErr.BadRequestParams("days must be at most " + strconv.Itoa(limit))
	}
	from = scheduling.Day(from)
	to := from.AddDate(0, 0, days)

	employees, err := s.employees.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListEmployees error")
	}
	byID := make(map[primitive.ObjectID]*model.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	schedules, err := s.schedules.ListRange(ctx, orgID, from, to)
	if err != nil {
		return nil, cErr.DatabaseError("database ListSchedules error")
	}

	result := &dto.ReconcileResultDto{
		OrgID:   orgID.Hex(),
		From:    scheduling.DayKey(from),
		To:      scheduling.DayKey(to),
		Scanned: len(schedules),
	}
	touched := []string{}
	for _, schedule := range schedules {
		employee, ok := byID[schedule.EmployeeID]
		if !ok {
			continue
		}
		position := s.positionOf(employee)
		if schedule.EmployeeName == employee.Name && schedule.Position == position {
			continue
		}
		update := bson.M{"$set": bson.M{"employeeName": employee.Name, "position": position}}
		if _, err := s.schedules.UpdateByID(ctx, schedule.ID, update); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue
			}
			return nil, cErr.DatabaseError("database ReconcileSchedule error")
		}
		result.Updated++
		if !slices.Contains(touched, schedule.Day) {
			touched = append(touched, schedule.Day)
		}
	}
	s.invalidate(ctx, orgID.Hex(), touched...)
	s.metric.Reconciled(result.Updated)

	s.trace.ApplyTraceAttributes(span, core.TraceReconcileMeta{
		OrgID:   result.OrgID,
		From:    result.From,
		To:      result.To,
		Scanned: result.Scanned,
		Updated: result.Updated,
	})
	if result.Updated > 0 {
		s.logAudit(ctx, fluentdModel.AuditLog{OrgID: result.OrgID, Action: "reconcile", Count: result.Updated})
	}
	return result, nil
}

type scheduleDraft struct {
	orgHex       string
	employeeHex  string
	employeeName string
	position     string
	shift        string
	location     string
	onLeave      bool
}

// newSchedule 驗證組織、員工、班別與地點，並補上員工姓名與職位快照；日期由呼叫端填入
func (s *ScheduleService) newSchedule(ctx context.Context, draft scheduleDraft) (*model.Schedule, error) {
	orgID, err := primitive.ObjectIDFromHex(draft.orgHex)
	if err != nil {
		return nil, cErr.BadRequestParams("Invalid organization ID")
	}
	if err := authorizeOrg(ctx, orgID); err != nil {
		return nil, err
	}
	if _, ok := s.taxonomy.Shift(draft.shift); !ok {
		return nil, cErr.ValidateErr("unknown shift " + draft.shift)
	}
	if err := s.checkLocation(ctx, orgID, draft.location); err != nil {
		return nil, err
	}

	employeeID, err := primitive.ObjectIDFromHex(draft.employeeHex)
	if err != nil {
		return nil, cErr.ValidateErr("invalid employee_id")
	}
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.ValidateErr("Employee not found in organization")
		}
		return nil, cErr.DatabaseError("database GetEmployee error")
	}
	if employee.OrgID != orgID {
		return nil, cErr.ValidateErr("Employee not found in organization")
	}

	position := ""
	if strings.TrimSpace(draft.position) != "" {
		if position, err = s.canonicalPosition(draft.position); err != nil {
			return nil, err
		}
	}

	schedule := &model.Schedule{
		OrgID:        orgID,
		EmployeeID:   employeeID,
		EmployeeName: draft.employeeName,
		Position:     position,
		Shift:        draft.shift,
		Location:     draft.location,
		OnLeave:      draft.onLeave,
	}
	if schedule.EmployeeName == "" {
		schedule.EmployeeName = employee.Name
	}
	if schedule.Position == "" {
		schedule.Position = s.positionOf(employee)
	}
	return schedule, nil
}

func (s *ScheduleService) insert(ctx context.Context, schedule *model.Schedule, action string) (*model.Schedule, error) {
	created, err := s.schedules.Create(ctx, schedule)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict(scheduleConflictMessage)
		}
		return nil, cErr.DatabaseError("database CreateSchedule error")
	}
	s.invalidate(ctx, created.OrgID.Hex(), created.Day)
	s.logAudit(ctx, fluentdModel.AuditLog{
		OrgID:      created.OrgID.Hex(),
		Action:     action,
		ScheduleID: created.ID.Hex(),
		EmployeeID: created.EmployeeID.Hex(),
		Day:        created.Day,
		Shift:      created.Shift,
	})
	return created, nil
}

func (s *ScheduleService) checkLocation(ctx context.Context, orgID primitive.ObjectID, location string) error {
	if location == "" {
		return cErr.ValidateErr("location is required")
	}
	locations, err := s.organizations.Locations(ctx, orgID)
	if err != nil {
		var appErr *cErr.Error
		if errors.As(err, &appErr) && appErr.HttpCode() == http.StatusNotFound {
			return cErr.BadRequestParams("Invalid organization ID")
		}
		return err
	}
	if len(locations) > 0 && !slices.Contains(locations, location) {
		return cErr.ValidateErr("unknown location " + location)
	}
	return nil
}

// reconcileLimit 單次 reconcile 最多掃描的天數，不小於排程設定的 RECONCILE_DAYS
func (s *ScheduleService) reconcileLimit() int {
	limit := s.config.Schedule.MaxRecurrence
	if limit <= 0 {
		limit = defaultMaxRecurrence
	}
	return max(limit, s.config.Schedule.ReconcileDays)
}

// canonicalPosition 指定的 position 必須對應到 grid 的某一列，存列名
func (s *ScheduleService) canonicalPosition(raw string) (string, error) {
	position, ok := s.taxonomy.PositionOf(raw)
	if !ok {
		return "", cErr.ValidateErr("unknown position " + raw)
	}
	return position, nil
}

func (s *ScheduleService) positionOf(employee *model.Employee) string {
	if position, ok := s.taxonomy.PositionOf(string(employee.Position)); ok {
		return position
	}
	return string(employee.Position)
}

func (s *ScheduleService) get(ctx context.Context, id primitive.ObjectID) (*model.Schedule, error) {
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound(scheduleNotFoundMessage)
		}
		return nil, cErr.DatabaseError("database GetSchedule error")
	}
	return schedule, nil
}

func (s *ScheduleService) invalidate(ctx context.Context, orgHex string, days ...string) {
	if err := s.cache.Invalidate(ctx, orgHex, days...); err != nil {
		s.logger.Warn("schedule cache invalidation failed", zap.String("orgId", orgHex), zap.Strings("days", days), zap.Error(err))
	}
}

// audit log 失敗不影響寫入結果
func (s *ScheduleService) logAudit(ctx context.Context, audit fluentdModel.AuditLog) {
	if spanContext := trace.SpanContextFromContext(ctx); spanContext.HasTraceID() {
		audit.RequestID = spanContext.TraceID().String()
	}
	audit.Actor = core.ClaimsFrom(ctx).Actor()
	if err := s.audit.LogAudit(ctx, audit); err != nil {
		s.logger.Warn("audit log failed", zap.String("action", audit.Action), zap.Error(err))
	}
}

func isConflict(err error) bool {
	var appErr *cErr.Error
	return errors.As(err, &appErr) && appErr.HttpCode() == http.StatusConflict
}

// outcomeOf metric label
func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var appErr *cErr.Error
	if !errors.As(err, &appErr) {
		return "error"
	}
	switch appErr.HttpCode() {
	case http.StatusConflict:
		return "conflict"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "validation"
	case http.StatusForbidden:
		return "forbidden"
	default:
		return "error"
	}
}

func modelToScheduleResponseDto(s *model.Schedule) *dto.ScheduleResponseDto {
	return &dto.ScheduleResponseDto{
		ID:           s.ID.Hex(),
		OrgID:        s.OrgID.Hex(),
		EmployeeID:   s.EmployeeID.Hex(),
		EmployeeName: s.EmployeeName,
		Position:     s.Position,
		Date:         s.Date,
		Shift:        s.Shift,
		Location:     s.Location,
		OnLeave:      s.OnLeave,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
