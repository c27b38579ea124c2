package service

import (
	"context"
	"errors"

	"talentsync/internal/core"
	"talentsync/internal/database/mongodb/model"
	"talentsync/internal/dto"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/telemetry"
	"talentsync/pkg/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeService struct {
	trace         *telemetry.Trace
	employees     EmployeeStore
	organizations *OrganizationService
}

func NewEmployeeService(trace *telemetry.Trace, employees EmployeeStore, organizations *OrganizationService) *EmployeeService {
	return &EmployeeService{trace: trace, employees: employees, organizations: organizations}
}

func (s *EmployeeService) ListByOrg(ctx context.Context, orgID primitive.ObjectID) ([]*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := authorizeOrg(ctx, orgID); err != nil {
		return nil, err
	}
	employees, err := s.employees.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListEmployees error")
	}
	resp := make([]*dto.EmployeeResponseDto, len(employees))
	for i, e := range employees {
		resp[i] = modelToEmployeeResponseDto(e)
	}
	return resp, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id primitive.ObjectID) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return modelToEmployeeResponseDto(employee), nil
}

// Create 單筆或批次新增；每一筆的組織都必須存在
func (s *EmployeeService) Create(ctx context.Context, reqs []*dto.CreateEmployeeDto) ([]*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if len(reqs) == 0 {
		return nil, cErr.ValidateErr("At least one employee is required")
	}

	checked := make(map[primitive.ObjectID]bool)
	employees := make([]*model.Employee, 0, len(reqs))
	for _, req := range reqs {
		orgID, err := primitive.ObjectIDFromHex(req.OrgID)
		if err != nil {
			return nil, cErr.BadRequestParams("Invalid organization ID")
		}
		if !checked[orgID] {
			if err := authorizeOrg(ctx, orgID); err != nil {
				return nil, err
			}
			if err := s.organizations.Exists(ctx, orgID); err != nil {
				return nil, err
			}
			checked[orgID] = true
		}
		employees = append(employees, createDtoToModel(orgID, req))
	}

	created, err := s.employees.CreateMany(ctx, employees)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("Employee ID already exists in this organization")
		}
		return nil, cErr.DatabaseError("database CreateEmployees error")
	}
	resp := make([]*dto.EmployeeResponseDto, len(created))
	for i, e := range created {
		resp[i] = modelToEmployeeResponseDto(e)
	}
	return resp, nil
}

// Update 部分更新；onLeave 只翻轉請假旗標，不動排班
func (s *EmployeeService) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateEmployeeDto) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Position != nil {
		role, ok := scheduling.ParseRole(string(*req.Position))
		if !ok {
			return nil, cErr.ValidateErr("invalid position " + string(*req.Position))
		}
		set["position"] = role
	}
	if req.JoinDate != nil {
		set["joinDate"] = req.JoinDate.UTC()
	}
	if req.LastWorkingDay != nil {
		set["lastWorkingDay"] = req.LastWorkingDay.UTC()
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.OnLeave != nil {
		set["onLeave"] = *req.OnLeave
	}
	if req.CustomData != nil {
		set["customData"] = req.CustomData
	}

	if len(set) > 0 {
		if _, err := s.employees.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, cErr.NotFound("Employee not found")
			}
			return nil, cErr.DatabaseError("database UpdateEmployee error")
		}
	}
	return s.GetByID(ctx, id)
}

func (s *EmployeeService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.employees.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("Employee not found")
		}
		return cErr.DatabaseError("database DeleteEmployee error")
	}
	return nil
}

// get 同時檢查呼叫者能否存取該員工所屬組織
func (s *EmployeeService) get(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("Employee not found")
		}
		return nil, cErr.DatabaseError("database GetEmployee error")
	}
	if err := authorizeOrg(ctx, employee.OrgID); err != nil {
		return nil, err
	}
	return employee, nil
}

func createDtoToModel(orgID primitive.ObjectID, req *dto.CreateEmployeeDto) *model.Employee {
	position := scheduling.RoleEmployee
	if req.Position != "" {
		if role, ok := scheduling.ParseRole(string(req.Position)); ok {
			position = role
		}
	}
	status := req.Status
	if status == "" {
		status = core.EmployeeStatusActive
	}
	role := req.Role
	if role == "" {
		role = core.AccessRoleUser
	}
	employee := &model.Employee{
		OrgID:      orgID,
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   position,
		Status:     status,
		Role:       role,
		OnLeave:    req.OnLeave,
		CustomData: req.CustomData,
	}
	if req.JoinDate != nil {
		t := req.JoinDate.UTC()
		employee.JoinDate = &t
	}
	if req.LastWorkingDay != nil {
		t := req.LastWorkingDay.UTC()
		employee.LastWorkingDay = &t
	}
	return employee
}

func modelToEmployeeResponseDto(e *model.Employee) *dto.EmployeeResponseDto {
	return &dto.EmployeeResponseDto{
		ID:             e.ID.Hex(),
		OrgID:          e.OrgID.Hex(),
		EmployeeID:     e.EmployeeID,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		Position:       e.Position,
		JoinDate:       e.JoinDate,
		LastWorkingDay: e.LastWorkingDay,
		Status:         e.Status,
		Role:           e.Role,
		OnLeave:        e.OnLeave,
		CustomData:     e.CustomData,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
