package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentsync/config"
	"talentsync/internal/database/client"
	fluentdRepository "talentsync/internal/database/fluentd/repository"
	"talentsync/internal/pkg/response"
	"talentsync/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Configuration {
	return &config.Configuration{
		App: config.App{Version: "test"},
	}
}

// newEngine 掛上 Recovery 與 Response，錯誤會以正式格式輸出
func newEngine(conf *config.Configuration, metric *telemetry.Metric, handlers ...gin.HandlerFunc) *gin.Engine {
	trace := &telemetry.Trace{}
	logRepo := fluentdRepository.NewLogRepository(conf, &client.NoopClient{})
	engine := gin.New()
	engine.Use(
		NewRecovery(zap.NewNop(), trace, metric, conf, logRepo).ErrorHandler(),
		NewResponse(zap.NewNop(), trace, metric, conf, logRepo).FormatHandler(),
	)
	engine.Use(handlers...)
	return engine
}

func newTestMetric(conf *config.Configuration) *telemetry.Metric {
	return telemetry.NewMetricWithRegistry(conf, prometheus.NewRegistry())
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func serve(engine *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
