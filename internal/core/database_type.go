package core

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────

// 未設定 MONGODB__DATABASE 時使用
const (
	MongoDBTalentSync MongoDatabaseName = "talentsync"
)

const (
	MongoCollectionEmployees     MongoCollection = "employees"
	MongoCollectionSchedules     MongoCollection = "schedules"
	MongoCollectionOrganizations MongoCollection = "organizations"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName    RedisKey = "talentsync"     // key 前綴
	RedisKeyScheduleDay   RedisKey = "schedule_day"   // 當天排班列表快取
	RedisKeyScheduleGen   RedisKey = "schedule_gen"   // 當天排班的版本號，寫入時遞增
	RedisKeyMutationQuota RedisKey = "mutation_quota" // 組織寫入配額
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdAudit    FluentdSubTag = "schedule_audit_log"
)
