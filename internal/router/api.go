package router

import (
	"talentsync/internal/handler"
	"talentsync/internal/middleware"

	"github.com/gin-gonic/gin"
)

// APIRouter /api 底下的業務路由，全部經過 Auth；除配額路由外也經過 MutationQuota
type APIRouter struct {
	organizationHandler *handler.OrganizationHandler
	employeeHandler     *handler.EmployeeHandler
	scheduleHandler     *handler.ScheduleHandler
	boardHandler        *handler.BoardHandler
	quotaHandler        *handler.QuotaHandler
	authMiddleware      *middleware.Auth
	quotaMiddleware     *middleware.MutationQuota
}

func NewAPIRouter(
	organizationHandler *handler.OrganizationHandler,
	employeeHandler *handler.EmployeeHandler,
	scheduleHandler *handler.ScheduleHandler,
	boardHandler *handler.BoardHandler,
	quotaHandler *handler.QuotaHandler,
	authMiddleware *middleware.Auth,
	quotaMiddleware *middleware.MutationQuota,
) *APIRouter {
	return &APIRouter{
		organizationHandler: organizationHandler,
		employeeHandler:     employeeHandler,
		scheduleHandler:     scheduleHandler,
		boardHandler:        boardHandler,
		quotaHandler:        quotaHandler,
		authMiddleware:      authMiddleware,
		quotaMiddleware:     quotaMiddleware,
	}
}

func (apiRouter *APIRouter) RegisterRoutes(engine *gin.Engine) {
	// 配額查詢與重設不經過 MutationQuota，配額用完時仍能重設
	quota := engine.Group("/api/organizations/:orgID/quota")
	quota.Use(apiRouter.authMiddleware.Handler())
	{
		quota.GET("", apiRouter.quotaHandler.Status)
		quota.DELETE("", apiRouter.quotaHandler.Reset)
	}

	api := engine.Group("/api")
	api.Use(apiRouter.authMiddleware.Handler())
	api.Use(apiRouter.quotaMiddleware.Guard())

	schedules := api.Group("/schedules")
	{
		schedules.GET("", apiRouter.scheduleHandler.ListByDate)
		schedules.POST("", apiRouter.scheduleHandler.Create)
		schedules.POST("/recurring", apiRouter.scheduleHandler.CreateRecurring)
		schedules.PUT("", apiRouter.scheduleHandler.Update)
		schedules.DELETE("", apiRouter.scheduleHandler.Delete)
	}

	employees := api.Group("/employees")
	{
		employees.POST("", apiRouter.employeeHandler.Create)
		employees.GET("/:employeeID", apiRouter.employeeHandler.Get)
		employees.PUT("/:employeeID", apiRouter.employeeHandler.Update)
		employees.DELETE("/:employeeID", apiRouter.employeeHandler.Delete)
	}

	organizations := api.Group("/organizations")
	{
		organizations.GET("", apiRouter.organizationHandler.List)
		organizations.POST("", apiRouter.organizationHandler.Create)
		organizations.GET("/:orgID", apiRouter.organizationHandler.Get)
		organizations.PUT("/:orgID", apiRouter.organizationHandler.Update)
		organizations.POST("/:orgID/reconcile", apiRouter.organizationHandler.Reconcile)
		organizations.GET("/:orgID/employees", apiRouter.employeeHandler.ListByOrg)

		board := organizations.Group("/:orgID/board")
		{
			board.GET("", apiRouter.boardHandler.View)
			board.GET("/available", apiRouter.boardHandler.Available)
			board.GET("/export", apiRouter.boardHandler.Export)
			board.POST("/assignments", apiRouter.boardHandler.Add)
			board.PATCH("/assignments/:scheduleID", apiRouter.boardHandler.Move)
			board.DELETE("/assignments/:scheduleID", apiRouter.boardHandler.Remove)
			board.PATCH("/employees/:employeeID/leave", apiRouter.boardHandler.ToggleLeave)
		}
	}
}
