package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"talentsync/config"
	"talentsync/internal/core"
	"talentsync/internal/database/redis/repository"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"
	"talentsync/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeQuota struct {
	enabled bool
	err     error
	ttl     int64
	calls   []string
}

func (f *fakeQuota) Enabled() bool { return f.enabled }

func (f *fakeQuota) Consume(_ context.Context, orgID string, period core.LimitPeriod, limit int) (int, int64, error) {
	f.calls = append(f.calls, orgID+"/"+string(period))
	if f.err != nil {
		return 0, f.ttl, f.err
	}
	return limit - len(f.calls), f.ttl, nil
}

func newQuotaEngine(quota *fakeQuota) (*gin.Engine, *telemetry.Metric) {
	conf := testConfig()
	conf.Schedule = config.Schedule{MutationLimit: 5, MutationLimitPeriod: string(core.LimitPeriodMinutely)}
	metric := newTestMetric(conf)
	guard := &MutationQuota{logger: zap.NewNop(), trace: &telemetry.Trace{}, metric: metric, config: conf, quota: quota}

	engine := newEngine(conf, metric, guard.Guard())
	ok := func(c *gin.Context) { response.Success(c, gin.H{"ok": true}) }
	engine.GET("/api/organizations/:orgID/board", ok)
	engine.POST("/api/organizations/:orgID/board/assignments", ok)
	engine.POST("/api/schedules", ok)
	return engine, metric
}

func TestQuotaAllowsAndSetsHeaders(t *testing.T) {
	quota := &fakeQuota{enabled: true, ttl: 42}
	engine, _ := newQuotaEngine(quota)

	w := serve(engine, http.MethodPost, "/api/organizations/org-1/board/assignments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "42", w.Header().Get("X-RateLimit-Reset"))
	assert.Equal(t, []string{"org-1/minutely"}, quota.calls)
}

func TestQuotaExceeded(t *testing.T) {
	quota := &fakeQuota{enabled: true, ttl: 30, err: repository.ErrQuotaExceeded}
	engine, metric := newQuotaEngine(quota)

	w := serve(engine, http.MethodPost, "/api/schedules?orgId=org-1", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, cErr.RATE_LIMIT_EXCEEDED, decode(t, w).Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(metric.RateLimitedTotal.WithLabelValues("quota_exceeded")))
}

func TestQuotaFailsOpen(t *testing.T) {
	quota := &fakeQuota{enabled: true, err: errors.New("redis: connection refused")}
	engine, _ := newQuotaEngine(quota)

	w := serve(engine, http.MethodPost, "/api/organizations/org-1/board/assignments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestQuotaSkips(t *testing.T) {
	t.Run("reads", func(t *testing.T) {
		quota := &fakeQuota{enabled: true, err: repository.ErrQuotaExceeded}
		engine, _ := newQuotaEngine(quota)

		w := serve(engine, http.MethodGet, "/api/organizations/org-1/board", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, quota.calls)
	})
	t.Run("disabled", func(t *testing.T) {
		quota := &fakeQuota{err: repository.ErrQuotaExceeded}
		engine, _ := newQuotaEngine(quota)

		w := serve(engine, http.MethodPost, "/api/organizations/org-1/board/assignments", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, quota.calls)
	})
	t.Run("no organization", func(t *testing.T) {
		quota := &fakeQuota{enabled: true, err: repository.ErrQuotaExceeded}
		engine, _ := newQuotaEngine(quota)

		w := serve(engine, http.MethodPost, "/api/schedules", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, quota.calls)
	})
}
