package job

import (
	"context"
	"time"

	"talentsync/config"
	"talentsync/internal/core"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 同時處理的組織數
const reconcileConcurrency = 4

// ReconcileJob 定期把員工改名、改職位同步回未來幾天的排班
type ReconcileJob struct {
	logger        *zap.Logger
	trace         *telemetry.Trace
	config        *config.Configuration
	organizations *service.OrganizationService
	schedules     *service.ScheduleService
	now           func() time.Time
}

func NewReconcileJob(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	organizations *service.OrganizationService,
	schedules *service.ScheduleService,
) *ReconcileJob {
	return &ReconcileJob{
		logger:        logger,
		trace:         trace,
		config:        config,
		organizations: organizations,
		schedules:     schedules,
		now:           time.Now,
	}
}

// Run 給 cron 呼叫；錯誤只記 log
func (j *ReconcileJob) Run() {
	if err := j.RunOnce(context.Background()); err != nil {
		j.logger.Error("reconcile job failed", zap.Error(err))
	}
}

func (j *ReconcileJob) RunOnce(ctx context.Context) (returnedError error) {
	ctx, _, end := j.trace.WithSpan(ctx, string(core.SpanReconcileJob))
	defer func() { end(returnedError) }()

	organizations, err := j.organizations.List(ctx)
	if err != nil {
		return err
	}
	days := j.config.Schedule.ReconcileDays
	if days <= 0 {
		days = 1
	}
	from := j.now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reconcileConcurrency)
	for _, org := range organizations {
		orgID, err := primitive.ObjectIDFromHex(org.ID)
		if err != nil {
			continue
		}
		g.Go(func() error {
			result, err := j.schedules.Reconcile(gctx, orgID, from, days)
			if err != nil {
				// 單一組織失敗不影響其他組織
				j.logger.Warn("reconcile organization failed", zap.String("orgID", org.ID), zap.Error(err))
				return nil
			}
			if result.Updated > 0 {
				j.logger.Info("reconciled schedules",
					zap.String("orgID", result.OrgID),
					zap.String("from", result.From),
					zap.String("to", result.To),
					zap.Int("updated", result.Updated),
				)
			}
			return nil
		})
	}
	return g.Wait()
}
