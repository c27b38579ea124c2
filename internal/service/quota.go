package service

import (
	"context"

	"talentsync/config"
	"talentsync/internal/core"
	"talentsync/internal/dto"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MutationQuotaStore 與 middleware 共用同一組 redis key
type MutationQuotaStore interface {
	Enabled() bool
	GetCurrent(ctx context.Context, orgID string, period core.LimitPeriod, limit int) (int, int64, error)
	Reset(ctx context.Context, orgID string, period core.LimitPeriod, limit int) error
}

type QuotaService struct {
	logger        *zap.Logger
	trace         *telemetry.Trace
	config        *config.Configuration
	quota         MutationQuotaStore
	organizations *OrganizationService
}

func NewQuotaService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	quota MutationQuotaStore,
	organizations *OrganizationService,
) *QuotaService {
	return &QuotaService{logger: logger, trace: trace, config: config, quota: quota, organizations: organizations}
}

// Status 查詢剩餘次數，不消耗配額
func (s *QuotaService) Status(ctx context.Context, orgID primitive.ObjectID) (*dto.QuotaStatusDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.checkOrg(ctx, orgID); err != nil {
		return nil, err
	}
	status, period, ok := s.status(orgID)
	if !ok {
		return status, nil
	}
	remaining, ttl, err := s.quota.GetCurrent(ctx, status.OrgID, period, status.Limit)
	if err != nil {
		s.logger.Error("mutation quota lookup failed", zap.String("orgId", status.OrgID), zap.Error(err))
		return nil, cErr.ServiceUnavailable("mutation quota is unavailable")
	}
	status.Remaining, status.ResetSeconds = remaining, ttl
	return status, nil
}

// Reset 把組織的配額補滿；只有 SUPERADMIN（或 auth 停用時）可以執行
func (s *QuotaService) Reset(ctx context.Context, orgID primitive.ObjectID) (*dto.QuotaStatusDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if claims := core.ClaimsFrom(ctx); claims != nil && claims.Role != core.AccessRoleSuperAdmin {
		return nil, cErr.Forbidden("only a superadmin can reset a mutation quota")
	}
	if err := s.checkOrg(ctx, orgID); err != nil {
		return nil, err
	}
	status, period, ok := s.status(orgID)
	if !ok {
		return status, nil
	}
	if err := s.quota.Reset(ctx, status.OrgID, period, status.Limit); err != nil {
		s.logger.Error("mutation quota reset failed", zap.String("orgId", status.OrgID), zap.Error(err))
		return nil, cErr.ServiceUnavailable("mutation quota is unavailable")
	}
	status.Remaining, status.ResetSeconds = status.Limit, int64(period.Window().Seconds())
	return status, nil
}

func (s *QuotaService) checkOrg(ctx context.Context, orgID primitive.ObjectID) error {
	if err := authorizeOrg(ctx, orgID); err != nil {
		return err
	}
	_, err := s.organizations.get(ctx, orgID)
	return err
}

// status 未設定上限或 redis 停用時回傳 ok=false
func (s *QuotaService) status(orgID primitive.ObjectID) (*dto.QuotaStatusDto, core.LimitPeriod, bool) {
	limit := s.config.Schedule.MutationLimit
	period := core.LimitPeriod(s.config.Schedule.MutationLimitPeriod)
	status := &dto.QuotaStatusDto{OrgID: orgID.Hex(), Limit: max(limit, 0), Remaining: max(limit, 0)}
	if limit <= 0 || period.Window() == 0 || !s.quota.Enabled() {
		return status, period, false
	}
	status.Enabled, status.Period = true, string(period)
	return status, period, true
}
