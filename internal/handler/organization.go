package handler

import (
	"time"

	"talentsync/internal/dto"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"
	"talentsync/pkg/scheduling"
	"talentsync/utils/validate"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	trace               *telemetry.Trace
	organizationService *service.OrganizationService
	scheduleService     *service.ScheduleService
}

func NewOrganizationHandler(
	trace *telemetry.Trace,
	organizationService *service.OrganizationService,
	scheduleService *service.ScheduleService,
) *OrganizationHandler {
	return &OrganizationHandler{trace: trace, organizationService: organizationService, scheduleService: scheduleService}
}

// List 列出呼叫者可存取的組織
// @Summary 組織列表
// @Tags Organization
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.OrganizationResponseDto
// @Router /api/organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	organizations, err := h.organizationService.List(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, organizations)
}

// Create 新增組織
// @Summary 新增組織
// @Tags Organization
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateOrganizationDto true "組織資訊"
// @Success 201 {object} dto.OrganizationResponseDto
// @Failure 400 {object} response.Response
// @Router /api/organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateOrganizationDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	created, err := h.organizationService.Create(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// Get 取得組織
// @Summary 取得組織
// @Tags Organization
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponseDto
// @Failure 404 {object} response.Response
// @Router /api/organizations/{orgID} [get]
func (h *OrganizationHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	organization, err := h.organizationService.GetByID(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, organization)
}

// Update 部分更新組織
// @Summary 更新組織
// @Tags Organization
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param body body dto.UpdateOrganizationDto true "更新欄位"
// @Success 200 {object} dto.OrganizationResponseDto
// @Failure 404 {object} response.Response
// @Router /api/organizations/{orgID} [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateOrganizationDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	updated, err := h.organizationService.Update(ctx, orgID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, updated)
}

// Reconcile 以目前員工資料改寫排班上的姓名與職位
// @Summary 重新同步排班快照
// @Tags Organization
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param from query string false "起始日 YYYY-MM-DD，預設今天"
// @Param days query int false "天數，預設 1"
// @Success 200 {object} dto.ReconcileResultDto
// @Router /api/organizations/{orgID}/reconcile [post]
func (h *OrganizationHandler) Reconcile(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	from := time.Now().UTC()
	if raw := c.Query("from"); raw != "" {
		parsed, err := scheduling.ParseDate(raw)
		if err != nil {
			response.AbortWithError(c, cErr.InvalidDate(err.Error()))
			return
		}
		from = parsed
	}
	days, err := validate.GetIntQuery(c, "days", 1)
	if err != nil || days <= 0 {
		response.AbortWithError(c, cErr.BadRequestParams("days must be a positive integer"))
		return
	}
	if _, err := h.organizationService.GetByID(ctx, orgID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	result, err := h.scheduleService.Reconcile(ctx, orgID, from, days)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}
