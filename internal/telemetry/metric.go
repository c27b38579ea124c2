package telemetry

import (
	"talentsync/config"
	"talentsync/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct；停用時所有欄位為 nil，呼叫端透過下方 helper 操作
type Metric struct {
	HttpRequestsTotal    *prometheus.CounterVec
	HttpRequestDuration  *prometheus.HistogramVec
	ResponseSuccessTotal *prometheus.CounterVec
	ResponseFailTotal    *prometheus.CounterVec
	AssignmentOpsTotal   *prometheus.CounterVec
	CacheLookupsTotal    *prometheus.CounterVec
	RateLimitedTotal     *prometheus.CounterVec
	ReconciledTotal      prometheus.Counter
	config               *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	return newMetric(config, promauto.With(prometheus.DefaultRegisterer))
}

// NewMetricWithRegistry 測試用，避免重覆註冊到 default registry
func NewMetricWithRegistry(config *config.Configuration, registry prometheus.Registerer) *Metric {
	return newMetric(config, promauto.With(registry))
}

func newMetric(config *config.Configuration, factory promauto.Factory) *Metric {
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	prefix := config.App.Name + "_"
	return &Metric{
		config: config,
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		ResponseSuccessTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricResponseSuccessTotal),
				Help: "Successful wrapped responses",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		ResponseFailTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricResponseFailTotal),
				Help: "Failed responses rendered by recovery",
			},
			labelNames(core.MetricLabelReason),
		),
		AssignmentOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricAssignmentOpsTotal),
				Help: "Assignment mutations by operation and outcome",
			},
			labelNames(core.MetricLabelOp, core.MetricLabelOutcome),
		),
		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricCacheLookupsTotal),
				Help: "Day listing cache lookups",
			},
			labelNames(core.MetricLabelResult),
		),
		RateLimitedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricRateLimitTotal),
				Help: "Mutations rejected by the per-organization quota",
			},
			labelNames(core.MetricLabelReason),
		),
		ReconciledTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricReconciledTotal),
				Help: "Assignments rewritten by reconciliation",
			},
		),
	}
}

// AssignmentOp 記錄一次排班寫入結果；outcome 例如 ok / conflict / not_found / validation / error
func (m *Metric) AssignmentOp(op, outcome string) {
	if m == nil || m.AssignmentOpsTotal == nil {
		return
	}
	m.AssignmentOpsTotal.WithLabelValues(op, outcome).Inc()
}

func (m *Metric) CacheLookup(hit bool) {
	if m == nil || m.CacheLookupsTotal == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookupsTotal.WithLabelValues(result).Inc()
}

// ResponseFail reason 為 cErr 的 message，例如 not-found / conflict / panic
func (m *Metric) ResponseFail(reason string) {
	if m == nil || m.ResponseFailTotal == nil {
		return
	}
	m.ResponseFailTotal.WithLabelValues(reason).Inc()
}

func (m *Metric) RateLimited(reason string) {
	if m == nil || m.RateLimitedTotal == nil {
		return
	}
	m.RateLimitedTotal.WithLabelValues(reason).Inc()
}

func (m *Metric) Reconciled(n int) {
	if m == nil || m.ReconciledTotal == nil || n <= 0 {
		return
	}
	m.ReconciledTotal.Add(float64(n))
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
