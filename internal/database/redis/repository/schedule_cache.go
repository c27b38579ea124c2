package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talentsync/config"
	"talentsync/internal/core"
	client "talentsync/internal/database/client"
	"talentsync/internal/database/mongodb/model"
	"talentsync/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// 版本號存活時間需遠大於列表 TTL
const generationTTL = 24 * time.Hour

var errStaleGeneration = errors.New("schedule cache generation changed")

// ScheduleCacheRepository 快取「某組織某天」的排班列表，寫入時整天失效
type ScheduleCacheRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
	ttl    time.Duration
}

func NewScheduleCacheRepository(trace *telemetry.Trace, client *client.RedisClient, config *config.Configuration) *ScheduleCacheRepository {
	return &ScheduleCacheRepository{
		trace:  trace,
		client: client.Client(),
		ttl:    time.Duration(config.Schedule.CacheTTLSeconds) * time.Second,
	}
}

func (repository *ScheduleCacheRepository) enabled() bool {
	return repository != nil && repository.client != nil && repository.ttl > 0
}

// Get 命中時回傳 (list, true)；未啟用或未命中回傳 (nil, false)
func (repository *ScheduleCacheRepository) Get(contextValue context.Context, orgID, day string) (_ []*model.Schedule, hit bool, returnedError error) {
	if !repository.enabled() {
		return nil, false, nil
	}
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue, string(core.SpanScheduleCacheLookup))
	defer func() { endSpan(returnedError) }()

	raw, getError := repository.client.Get(contextValue, repository.buildKey(orgID, day)).Bytes()
	if errors.Is(getError, redis.Nil) {
		repository.trace.ApplyTraceAttributes(span, core.TraceScheduleMeta{Op: "cache_get", OrgID: orgID, Day: day})
		return nil, false, nil
	}
	if getError != nil {
		returnedError = getError
		return nil, false, returnedError
	}

	schedules := []*model.Schedule{}
	if returnedError = json.Unmarshal(raw, &schedules); returnedError != nil {
		return nil, false, returnedError
	}
	repository.trace.ApplyTraceAttributes(span, core.TraceScheduleMeta{Op: "cache_get", OrgID: orgID, Day: day, Count: len(schedules), CacheHit: true})
	return schedules, true, nil
}

// Generation 讀取當天的版本號；key 不存在視為 0
func (repository *ScheduleCacheRepository) Generation(contextValue context.Context, orgID, day string) (int64, error) {
	if !repository.enabled() {
		return 0, nil
	}
	return readGeneration(contextValue, repository.client, repository.buildGenerationKey(orgID, day))
}

// Set 只有在版本號仍等於 generation 時才寫入；期間若有 Invalidate，WATCH 會讓交易失敗並放棄寫入
func (repository *ScheduleCacheRepository) Set(contextValue context.Context, orgID, day string, generation int64, schedules []*model.Schedule) (returnedError error) {
	if !repository.enabled() {
		return nil
	}
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue, string(core.SpanScheduleCacheRefresh))
	defer func() { endSpan(returnedError) }()
	repository.trace.ApplyTraceAttributes(span, core.TraceScheduleMeta{Op: "cache_set", OrgID: orgID, Day: day, Count: len(schedules)})

	raw, marshalError := json.Marshal(schedules)
	if marshalError != nil {
		returnedError = marshalError
		return returnedError
	}

	generationKey := repository.buildGenerationKey(orgID, day)
	returnedError = repository.client.Watch(contextValue, func(tx *redis.Tx) error {
		current, err := readGeneration(contextValue, tx, generationKey)
		if err != nil {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(contextValue, func(pipe redis.Pipeliner) error {
			pipe.Set(contextValue, repository.buildKey(orgID, day), raw, repository.ttl)
			return nil
		})
		return err
	}, generationKey)
	if errors.Is(returnedError, errStaleGeneration) || errors.Is(returnedError, redis.TxFailedErr) {
		// 讀取期間已有寫入，這份列表可能過期
		repository.trace.ApplyTraceAttributes(span, core.TraceScheduleMeta{Op: "cache_set_skipped", OrgID: orgID, Day: day})
		returnedError = nil
	}
	return returnedError
}

// Invalidate 遞增多個日期的版本號並刪除快取
func (repository *ScheduleCacheRepository) Invalidate(contextValue context.Context, orgID string, days ...string) error {
	if !repository.enabled() || len(days) == 0 {
		return nil
	}
	_, err := repository.client.TxPipelined(contextValue, func(pipe redis.Pipeliner) error {
		for _, day := range days {
			generationKey := repository.buildGenerationKey(orgID, day)
			pipe.Incr(contextValue, generationKey)
			pipe.Expire(contextValue, generationKey, generationTTL)
			pipe.Del(contextValue, repository.buildKey(orgID, day))
		}
		return nil
	})
	return err
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(contextValue context.Context, reader stringGetter, key string) (int64, error) {
	generation, err := reader.Get(contextValue, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func (repository *ScheduleCacheRepository) buildGenerationKey(orgID, day string) string {
	return fmt.Sprintf("%s:%s:%s:%s", core.RedisKeyServerName, core.RedisKeyScheduleGen, orgID, day)
}

func (repository *ScheduleCacheRepository) buildKey(orgID, day string) string {
	return fmt.Sprintf("%s:%s:%s:%s", core.RedisKeyServerName, core.RedisKeyScheduleDay, orgID, day)
}
