package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest          TraceSpanName = "http_request"
	SpanLoggerMiddleware     TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware   TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware       TraceSpanName = "cors_middleware"
	SpanResponseMiddleware   TraceSpanName = "response_middleware"
	SpanAuthMiddleware       TraceSpanName = "auth_middleware"
	SpanMutationQuota        TraceSpanName = "mutation_quota_middleware"
	SpanReconcileJob         TraceSpanName = "reconcile_job"
	SpanExportCommand        TraceSpanName = "export_command"
	SpanScheduleCacheLookup  TraceSpanName = "schedule_cache_lookup"
	SpanScheduleCacheRefresh TraceSpanName = "schedule_cache_refresh"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal    MetricName = "requests_total"
	MetricHttpRequestDuration  MetricName = "request_duration_seconds"
	MetricResponseSuccessTotal MetricName = "response_success_total"
	MetricResponseFailTotal    MetricName = "response_fail_total"
	MetricAssignmentOpsTotal   MetricName = "assignment_ops_total"
	MetricCacheLookupsTotal    MetricName = "schedule_cache_lookups_total"
	MetricRateLimitTotal       MetricName = "rate_limited_total"
	MetricReconciledTotal      MetricName = "reconciled_assignments_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelOp       MetricLabelName = "op"
	MetricLabelOutcome  MetricLabelName = "outcome"
	MetricLabelResult   MetricLabelName = "result"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}
type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 供 Redis 寫入配額 Consume / Get / Reset 使用
type TraceRateLimitMeta struct {
	OrgID     string `trace:"rl.org_id"`
	Period    string `trace:"rl.period"`
	Limit     int    `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int    `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"` // "consume" / "reset" / "get" / "delete"
}

type TraceRateLimitMiddlewareMeta struct {
	OrgID       string `trace:"ratelimit.org_id"`
	Period      string `trace:"ratelimit.period"`
	ConfigLimit int    `trace:"ratelimit.config.limit"`
	Remaining   int    `trace:"ratelimit.remaining"`
	TTLSeconds  int64  `trace:"ratelimit.ttl_sec"`
	Blocked     bool   `trace:"ratelimit.blocked"`
	FailOpen    bool   `trace:"ratelimit.fail_open"`
}

type TraceAuthMiddlewareMeta struct {
	Subject string `trace:"auth.subject,omitempty"`
	OrgID   string `trace:"auth.org_id,omitempty"`
	Role    string `trace:"auth.role,omitempty"`
	Status  string `trace:"auth.status,omitempty"`
}

type TraceScheduleMeta struct {
	Op         string `trace:"schedule.op"`
	OrgID      string `trace:"schedule.org_id,omitempty"`
	ScheduleID string `trace:"schedule.id,omitempty"`
	EmployeeID string `trace:"schedule.employee_id,omitempty"`
	Day        string `trace:"schedule.day,omitempty"`
	Shift      string `trace:"schedule.shift,omitempty"`
	Count      int    `trace:"result.count,omitempty"`
	CacheHit   bool   `trace:"cache.hit"`
}

type TraceBoardMeta struct {
	OrgID    string `trace:"board.org_id"`
	Day      string `trace:"board.day"`
	Location string `trace:"board.filter.location,omitempty"`
	Leave    string `trace:"board.filter.leave,omitempty"`
	Total    int    `trace:"board.total"`
	OnLeave  int    `trace:"board.on_leave"`
}

type TraceReconcileMeta struct {
	OrgID   string `trace:"reconcile.org_id,omitempty"`
	From    string `trace:"reconcile.from"`
	To      string `trace:"reconcile.to"`
	Scanned int    `trace:"reconcile.scanned"`
	Updated int    `trace:"reconcile.updated"`
}

type TraceAuditLogMeta struct {
	RequestID  string `trace:"audit.request_id,omitempty"`
	OrgID      string `trace:"audit.org_id"`
	Action     string `trace:"audit.action"`
	ScheduleID string `trace:"audit.schedule_id,omitempty"`
	Actor      string `trace:"audit.actor,omitempty"`
}
