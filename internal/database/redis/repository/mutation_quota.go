package repository

import (
	"context"
	"errors"
	"fmt"

	"talentsync/internal/core"
	client "talentsync/internal/database/client"
	"talentsync/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// MutationQuotaRepository 以倒數計數的方式記錄每個組織的寫入配額
type MutationQuotaRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewMutationQuotaRepository(trace *telemetry.Trace, client *client.RedisClient) *MutationQuotaRepository {
	return &MutationQuotaRepository{trace: trace, client: client.Client()}
}

var ErrQuotaExceeded = errors.New("mutation quota exceeded")

// Enabled redis 停用時回傳 false，middleware 直接放行
func (repository *MutationQuotaRepository) Enabled() bool {
	return repository != nil && repository.client != nil
}

// Consume 消耗一次配額；自動處理新週期初始化與剩餘 TTL。
// 回傳：remaining（剩餘次數）、ttlSec（剩餘秒數）、err（若超限為 ErrQuotaExceeded）
func (repository *MutationQuotaRepository) Consume(
	contextValue context.Context,
	orgID string,
	period core.LimitPeriod,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {
	if !repository.Enabled() {
		return limitCount, 0, nil
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		endSpan(returnedError)
	}()

	windowSeconds := int64(period.Window().Seconds())
	traceMetadata := core.TraceRateLimitMeta{
		OrgID:     orgID,
		Period:    string(period),
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(orgID, period)

	// 嘗試初始化：SETNX key value EX expiration
	wasSet, setError := repository.client.SetNX(
		contextValue,
		redisKey,
		limitCount-1, // 本次消耗一次，所以初始值 = 總額-1
		period.Window(),
	).Result()
	if setError != nil {
		returnedError = setError
		return 0, 0, returnedError
	}
	if wasSet {
		remainingCount = limitCount - 1
		if remainingCount < 0 {
			remainingCount = 0
			returnedError = ErrQuotaExceeded
		}
		timeToLiveSeconds = windowSeconds
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, returnedError
	}

	// Key 已存在 → 執行 DECR 扣一次
	newValue, decrError := repository.client.Decr(contextValue, redisKey).Result()
	if decrError != nil {
		returnedError = decrError
		return 0, 0, returnedError
	}

	ttlDuration, _ := repository.client.TTL(contextValue, redisKey).Result()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}

	if newValue < 0 {
		traceMetadata.TTL = timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		returnedError = ErrQuotaExceeded
		return 0, timeToLiveSeconds, returnedError
	}

	remainingCount = int(newValue)
	traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, nil
}

// GetCurrent 查詢目前剩餘次數與 TTL；尚未初始化時回傳 limitCount, 0
func (repository *MutationQuotaRepository) GetCurrent(
	contextValue context.Context,
	orgID string,
	period core.LimitPeriod,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {
	if !repository.Enabled() {
		return limitCount, 0, nil
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceRateLimitMeta{
		OrgID:  orgID,
		Period: string(period),
		Limit:  limitCount,
		Op:     "get",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(orgID, period)

	// 用 pipeline 併發 GET + TTL 減少往返
	pipeline := repository.client.Pipeline()
	getCommand := pipeline.Get(contextValue, redisKey)
	ttlCommand := pipeline.TTL(contextValue, redisKey)
	if _, execError := pipeline.Exec(contextValue); execError != nil && !errors.Is(execError, redis.Nil) {
		returnedError = execError
		return 0, 0, returnedError
	}

	value, getError := getCommand.Int()
	if errors.Is(getError, redis.Nil) {
		return limitCount, 0, nil
	}
	if getError != nil {
		returnedError = getError
		return 0, 0, returnedError
	}

	if ttlDuration := ttlCommand.Val(); ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}
	remainingCount = max(value, 0)

	traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, nil
}

// Reset 強制把剩餘次數設為 limitCount，TTL 為一個週期
func (repository *MutationQuotaRepository) Reset(
	contextValue context.Context,
	orgID string,
	period core.LimitPeriod,
	limitCount int,
) (returnedError error) {
	if !repository.Enabled() {
		return nil
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	valueToSet := max(limitCount, 0)
	repository.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
		OrgID:     orgID,
		Period:    string(period),
		Limit:     valueToSet,
		WindowSec: int64(period.Window().Seconds()),
		Remaining: valueToSet,
		Op:        "reset",
	})

	returnedError = repository.client.Set(contextValue, repository.buildKey(orgID, period), valueToSet, period.Window()).Err()
	return returnedError
}

func (repository *MutationQuotaRepository) buildKey(orgID string, period core.LimitPeriod) string {
	return fmt.Sprintf("%s:%s:%s:%s", core.RedisKeyServerName, core.RedisKeyMutationQuota, orgID, period)
}
