package router

import (
	"talentsync/internal/handler"

	"github.com/gin-gonic/gin"
)

type HealthRouter struct {
	healthHandler *handler.HealthHandler
}

func NewHealthRouter(
	healthHandler *handler.HealthHandler,
) *HealthRouter {
	return &HealthRouter{
		healthHandler: healthHandler,
	}
}

// RegisterHealthRoutes 探針同時接受 HEAD，不經過 auth 與 response 包裝
func (healthRouter *HealthRouter) RegisterHealthRoutes(r *gin.Engine) {
	h := healthRouter.healthHandler
	r.GET("/health-check", h.Check)
	r.GET("/version", h.Version)
	g := r.Group("/health")
	for path, handle := range map[string]gin.HandlerFunc{
		"/liveness":  h.Liveness,
		"/readiness": h.Readiness,
	} {
		g.GET(path, handle)
		g.HEAD(path, handle)
	}
}
