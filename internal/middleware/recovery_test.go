package middleware

import (
	"errors"
	"net/http"
	"testing"

	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryAndResponse(t *testing.T) {
	conf := testConfig()
	metric := newTestMetric(conf)
	engine := newEngine(conf, metric)
	engine.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	engine.GET("/not-found", func(c *gin.Context) {
		response.AbortWithError(c, cErr.NotFound("Schedule not found"))
	})
	engine.GET("/plain", func(c *gin.Context) {
		response.AbortWithError(c, errors.New("driver exploded"))
	})
	engine.POST("/created", func(c *gin.Context) {
		response.Create(c, gin.H{"id": "s1"})
	})
	engine.GET("/csv", func(c *gin.Context) {
		response.Raw(c, "text/csv; charset=utf-8", []byte("a,b\n"))
	})

	w := serve(engine, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, cErr.INTERNAL_ERROR, decode(t, w).Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(metric.ResponseFailTotal.WithLabelValues("panic")))

	w = serve(engine, http.MethodGet, "/not-found", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	res := decode(t, w)
	assert.Equal(t, cErr.NOT_FOUND, res.Code)
	assert.Equal(t, "Schedule not found", res.Description)
	assert.NotEmpty(t, res.RequestID)

	w = serve(engine, http.MethodGet, "/plain", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "unknown-error", decode(t, w).Message)

	w = serve(engine, http.MethodPost, "/created", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	res = decode(t, w)
	assert.Equal(t, "Create Success", res.Description)
	assert.Equal(t, map[string]any{"id": "s1"}, res.Data)

	w = serve(engine, http.MethodGet, "/csv", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a,b\n", w.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
}
