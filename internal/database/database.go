package database

import (
	client "talentsync/internal/database/client"
	fluentdRepo "talentsync/internal/database/fluentd/repository"
	mongoRepo "talentsync/internal/database/mongodb/repository"
	redisRepo "talentsync/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
