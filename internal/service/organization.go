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

type OrganizationService struct {
	trace         *telemetry.Trace
	taxonomy      *scheduling.Taxonomy
	organizations OrganizationStore
}

func NewOrganizationService(trace *telemetry.Trace, taxonomy *scheduling.Taxonomy, organizations OrganizationStore) *OrganizationService {
	return &OrganizationService{trace: trace, taxonomy: taxonomy, organizations: organizations}
}

// Create 只有 SUPERADMIN 可以建立組織
func (s *OrganizationService) Create(ctx context.Context, req *dto.CreateOrganizationDto) (*dto.OrganizationResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if claims := core.ClaimsFrom(ctx); claims != nil && claims.Role != core.AccessRoleSuperAdmin {
		return nil, cErr.Forbidden("only SUPERADMIN can create organizations")
	}

	organization := &model.Organization{
		Name:                 req.Name,
		Timezone:             req.Timezone,
		DateFormat:           req.DateFormat,
		Locations:            req.Locations,
		CustomEmployeeFields: toCustomFields(req.CustomEmployeeFields),
	}
	if organization.DateFormat == "" {
		organization.DateFormat = core.DefaultDateFormat
	}
	if organization.Timezone == "" {
		organization.Timezone = "UTC"
	}
	if organization.Locations == nil {
		organization.Locations = []string{}
	}
	created, err := s.organizations.Create(ctx, organization)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateOrganization error")
	}
	return modelToOrganizationResponseDto(created), nil
}

func (s *OrganizationService) GetByID(ctx context.Context, id primitive.ObjectID) (*dto.OrganizationResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := authorizeOrg(ctx, id); err != nil {
		return nil, err
	}
	organization, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return modelToOrganizationResponseDto(organization), nil
}

func (s *OrganizationService) List(ctx context.Context) ([]*dto.OrganizationResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	organizations, err := s.organizations.List(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database ListOrganizations error")
	}
	claims := core.ClaimsFrom(ctx)
	resp := make([]*dto.OrganizationResponseDto, 0, len(organizations))
	for _, o := range organizations {
		if claims != nil && !claims.CanAccessOrg(o.ID.Hex()) {
			continue
		}
		resp = append(resp, modelToOrganizationResponseDto(o))
	}
	return resp, nil
}

func (s *OrganizationService) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateOrganizationDto) (*dto.OrganizationResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := authorizeOrg(ctx, id); err != nil {
		return nil, err
	}
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Timezone != nil {
		set["timezone"] = *req.Timezone
	}
	if req.DateFormat != nil {
		set["dateFormat"] = *req.DateFormat
	}
	if req.Locations != nil {
		set["locations"] = req.Locations
	}
	if req.CustomEmployeeFields != nil {
		set["customEmployeeFields"] = toCustomFields(req.CustomEmployeeFields)
	}
	if len(set) > 0 {
		if _, err := s.organizations.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, cErr.NotFound("Organization not found")
			}
			return nil, cErr.DatabaseError("database UpdateOrganization error")
		}
	}
	return s.GetByID(ctx, id)
}

// Locations 組織自訂地點；未設定時回傳 taxonomy 預設地點
func (s *OrganizationService) Locations(ctx context.Context, id primitive.ObjectID) ([]string, error) {
	organization, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(organization.Locations) > 0 {
		return organization.Locations, nil
	}
	return s.taxonomy.Locations(), nil
}

// Exists 建立員工與排班前檢查組織，不存在時回傳 400
func (s *OrganizationService) Exists(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.organizations.GetByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.BadRequestParams("Invalid organization ID")
		}
		return cErr.DatabaseError("database GetOrganization error")
	}
	return nil
}

func (s *OrganizationService) get(ctx context.Context, id primitive.ObjectID) (*model.Organization, error) {
	organization, err := s.organizations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("Organization not found")
		}
		return nil, cErr.DatabaseError("database GetOrganization error")
	}
	return organization, nil
}

func toCustomFields(in []dto.CustomEmployeeFieldDto) []model.CustomEmployeeField {
	out := make([]model.CustomEmployeeField, len(in))
	for i, f := range in {
		out[i] = model.CustomEmployeeField{Name: f.Name, Type: f.Type, Required: f.Required}
	}
	return out
}

func modelToOrganizationResponseDto(o *model.Organization) *dto.OrganizationResponseDto {
	fields := make([]dto.CustomEmployeeFieldDto, len(o.CustomEmployeeFields))
	for i, f := range o.CustomEmployeeFields {
		fields[i] = dto.CustomEmployeeFieldDto{Name: f.Name, Type: f.Type, Required: f.Required}
	}
	locations := o.Locations
	if locations == nil {
		locations = []string{}
	}
	return &dto.OrganizationResponseDto{
		ID:                   o.ID.Hex(),
		Name:                 o.Name,
		Timezone:             o.Timezone,
		DateFormat:           o.DateFormat,
		Locations:            locations,
		CustomEmployeeFields: fields,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
