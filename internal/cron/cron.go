package cron

import (
	"context"

	"talentsync/config"
	"talentsync/internal/cron/job"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, job.NewReconcileJob)

type Cron struct {
	logger       *zap.Logger
	config       *config.Configuration
	server       *cron.Cron
	reconcileJob *job.ReconcileJob
}

// NewCron .
func NewCron(logger *zap.Logger, config *config.Configuration, reconcileJob *job.ReconcileJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	return &Cron{
		logger:       logger,
		config:       config,
		server:       server,
		reconcileJob: reconcileJob,
	}
}

func (c *Cron) Run() error {
	if spec := c.config.Schedule.ReconcileCron; spec != "" {
		if _, err := c.server.AddFunc(spec, c.reconcileJob.Run); err != nil {
			return err
		}
		c.logger.Info("reconcile job scheduled", zap.String("cron", spec))
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	// 等待執行中的 job 結束或 ctx 逾時
	select {
	case <-c.server.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
