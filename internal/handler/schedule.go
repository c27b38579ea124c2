package handler

import (
	"talentsync/internal/dto"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"
	"talentsync/pkg/scheduling"
	"talentsync/utils/validate"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	trace           *telemetry.Trace
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(trace *telemetry.Trace, scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{trace: trace, scheduleService: scheduleService}
}

// ListByDate 取得某組織某日的排班
// @Summary 依日期查詢排班
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param orgId query string true "Organization ID"
// @Success 200 {array} dto.ScheduleResponseDto
// @Failure 400 {object} response.Response
// @Router /api/schedules [get]
func (h *ScheduleHandler) ListByDate(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	day, orgID := c.Query("date"), c.Query("orgId")
	if day == "" || orgID == "" {
		response.AbortWithError(c, cErr.BadRequestParams("Date and orgId are required"))
		return
	}
	date, err := scheduling.ParseDate(day)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.InvalidDate(err.Error()))
		return
	}
	schedules, err := h.scheduleService.ListByDate(ctx, orgID, date)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, schedules)
}

// Create 新增排班；同員工同日同班別會回 409
// @Summary 新增排班
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateScheduleDto true "排班資訊"
// @Success 201 {object} dto.ScheduleResponseDto
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	created, err := h.scheduleService.Create(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// CreateRecurring 依 RRULE 批次建立排班，衝突的日期列在 conflicts
// @Summary 週期排班
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateRecurringScheduleDto true "週期規則"
// @Success 201 {object} dto.RecurringScheduleResultDto
// @Failure 400 {object} response.Response
// @Router /api/schedules/recurring [post]
func (h *ScheduleHandler) CreateRecurring(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateRecurringScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	result, err := h.scheduleService.CreateRecurring(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, result)
}

// Update 更新排班，id 放在 body
// @Summary 更新排班
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpdateScheduleDto true "更新欄位"
// @Success 200 {object} dto.ScheduleResponseDto
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/schedules [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.UpdateScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	updated, err := h.scheduleService.Update(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, updated)
}

// Delete 刪除排班
// @Summary 刪除排班
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param id query string true "Schedule ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} response.Response
// @Router /api/schedules [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id := c.Query("id")
	if id == "" {
		response.AbortWithError(c, cErr.BadRequestParams("Schedule ID is required"))
		return
	}
	if err := h.scheduleService.Delete(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}
