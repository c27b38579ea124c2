package command

import (
	"context"
	"time"

	"talentsync/internal/cron/job"
	"talentsync/internal/service"
	"talentsync/pkg/scheduling"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReconcileHandler struct {
	scheduleService *service.ScheduleService
	reconcileJob    *job.ReconcileJob
}

func NewReconcileHandler(scheduleService *service.ScheduleService, reconcileJob *job.ReconcileJob) *ReconcileHandler {
	return &ReconcileHandler{
		scheduleService: scheduleService,
		reconcileJob:    reconcileJob,
	}
}

type ReconcileOptions struct {
	OrgID string
	From  string
	Days  int
}

func ReconcileFlags(cmd *cobra.Command, opts *ReconcileOptions) {
	cmd.Flags().StringVar(&opts.OrgID, "org", "", "organization id (default all organizations)")
	cmd.Flags().StringVar(&opts.From, "from", "", "first day, YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&opts.Days, "days", 1, "number of days to reconcile")
}

// Reconcile 沒給 --org 時等同跑一次排程 job
func (handler *ReconcileHandler) Reconcile(cmd *cobra.Command, opts *ReconcileOptions) error {
	ctx := context.Background()
	if opts.OrgID == "" {
		return handler.reconcileJob.RunOnce(ctx)
	}

	orgID, err := primitive.ObjectIDFromHex(opts.OrgID)
	if err != nil {
		return err
	}
	from := time.Now()
	if opts.From != "" {
		if from, err = scheduling.ParseDate(opts.From); err != nil {
			return err
		}
	}
	result, err := handler.scheduleService.Reconcile(ctx, orgID, from, opts.Days)
	if err != nil {
		return err
	}
	cmd.Printf("%s %s..%s scanned=%d updated=%d\n", result.OrgID, result.From, result.To, result.Scanned, result.Updated)
	return nil
}
