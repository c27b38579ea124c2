package middleware

import (
	"context"
	"errors"
	"strconv"

	"talentsync/config"
	"talentsync/internal/core"
	"talentsync/internal/database/redis/repository"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"
	"talentsync/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type quotaConsumer interface {
	Enabled() bool
	Consume(ctx context.Context, orgID string, period core.LimitPeriod, limit int) (int, int64, error)
}

// MutationQuota 每個組織在一個週期內的寫入次數上限；redis 出錯時放行
type MutationQuota struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	metric *telemetry.Metric
	config *config.Configuration
	quota  quotaConsumer
}

func NewMutationQuota(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	quota *repository.MutationQuotaRepository,
) *MutationQuota {
	return &MutationQuota{logger: logger, trace: trace, metric: metric, config: config, quota: quota}
}

func (middleware *MutationQuota) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := middleware.config.Schedule.MutationLimit
		period := core.LimitPeriod(middleware.config.Schedule.MutationLimitPeriod)
		if readOnlyMethod(c.Request.Method) || limit <= 0 || period.Window() == 0 || !middleware.quota.Enabled() {
			c.Next()
			return
		}
		orgID := orgIDOf(c)
		if orgID == "" {
			if claims := ClaimsFrom(c); claims != nil {
				orgID = claims.OrgID
			}
		}
		if orgID == "" {
			c.Next()
			return
		}

		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanMutationQuota))
		meta := core.TraceRateLimitMiddlewareMeta{
			OrgID:       orgID,
			Period:      string(period),
			ConfigLimit: limit,
		}

		remaining, ttlSec, err := middleware.quota.Consume(ctx, orgID, period, limit)
		switch {
		case errors.Is(err, repository.ErrQuotaExceeded):
			meta.Blocked, meta.TTLSeconds = true, ttlSec
			middleware.trace.ApplyTraceAttributes(span, meta)
			middleware.metric.RateLimited("quota_exceeded")
			c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Header("X-RateLimit-Remaining", "0")
			if ttlSec > 0 {
				c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
			}
			cause := cErr.RateLimitExceeded("mutation quota exceeded for organization " + orgID)
			response.AbortWithError(c, cause)
			end(cause)
			return
		case err != nil:
			meta.FailOpen = true
			middleware.trace.ApplyTraceAttributes(span, meta)
			middleware.logger.Warn("mutation quota unavailable, allowing request", zap.String("orgId", orgID), zap.Error(err))
			end(err)
			c.Next()
			return
		}

		meta.Remaining, meta.TTLSeconds = remaining, ttlSec
		middleware.trace.ApplyTraceAttributes(span, meta)
		end(nil)
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}
		c.Next()
	}
}
