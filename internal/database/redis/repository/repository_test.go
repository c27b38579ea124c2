package repository

import (
	"context"
	"testing"

	"talentsync/config"
	"talentsync/internal/core"
	client "talentsync/internal/database/client"
	"talentsync/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func disabledRedis() *client.RedisClient {
	return client.NewRedisClientFrom(zap.NewNop(), nil)
}

func TestMutationQuotaDisabledAllowsEverything(t *testing.T) {
	repo := NewMutationQuotaRepository(&telemetry.Trace{}, disabledRedis())
	assert.False(t, repo.Enabled())

	remaining, ttl, err := repo.Consume(context.Background(), "org", core.LimitPeriodMinutely, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
	assert.Zero(t, ttl)

	remaining, _, err = repo.GetCurrent(context.Background(), "org", core.LimitPeriodMinutely, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
	assert.NoError(t, repo.Reset(context.Background(), "org", core.LimitPeriodMinutely, 5))
}

func TestMutationQuotaKey(t *testing.T) {
	repo := &MutationQuotaRepository{}
	assert.Equal(t, "talentsync:mutation_quota:org-1:hourly", repo.buildKey("org-1", core.LimitPeriodHourly))
}

func TestScheduleCacheDisabledIsMiss(t *testing.T) {
	conf := &config.Configuration{}
	conf.Schedule.CacheTTLSeconds = 60
	repo := NewScheduleCacheRepository(&telemetry.Trace{}, disabledRedis(), conf)

	got, hit, err := repo.Get(context.Background(), "org", "2024-05-01")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, got)
	generation, err := repo.Generation(context.Background(), "org", "2024-05-01")
	require.NoError(t, err)
	assert.Zero(t, generation)
	assert.NoError(t, repo.Set(context.Background(), "org", "2024-05-01", generation, nil))
	assert.NoError(t, repo.Invalidate(context.Background(), "org", "2024-05-01"))
}

func TestScheduleCacheKey(t *testing.T) {
	repo := &ScheduleCacheRepository{}
	assert.Equal(t, "talentsync:schedule_day:org-1:2024-05-01", repo.buildKey("org-1", "2024-05-01"))
	assert.Equal(t, "talentsync:schedule_gen:org-1:2024-05-01", repo.buildGenerationKey("org-1", "2024-05-01"))
}
