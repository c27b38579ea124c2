package handler

import (
	"fmt"

	"talentsync/internal/dto"
	"talentsync/internal/pkg/compress"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"
	"talentsync/utils/validate"

	"github.com/gin-gonic/gin"
)

// BoardHandler 排班看板：格狀檢視、可排人員、指派與匯出
type BoardHandler struct {
	trace        *telemetry.Trace
	boardService *service.BoardService
}

func NewBoardHandler(trace *telemetry.Trace, boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{trace: trace, boardService: boardService}
}

// View
// @Summary 排班看板
// @Tags Board
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param date query string true "YYYY-MM-DD"
// @Param location query string false "地點，all 表示全部"
// @Param leave query string false "all | onLeave | notOnLeave"
// @Success 200 {object} dto.BoardViewDto
// @Failure 400 {object} response.Response
// @Router /api/organizations/{orgID}/board [get]
func (h *BoardHandler) View(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var q dto.BoardQueryDto
	if cause, respErr := validate.BindQuery(c, &q); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	view, err := h.boardService.View(ctx, orgID, &q)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, view)
}

// Available
// @Summary 可排入的員工
// @Tags Board
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param date query string true "YYYY-MM-DD"
// @Param position query string true "職位"
// @Param shift query string false "班別"
// @Success 200 {array} scheduling.Employee
// @Router /api/organizations/{orgID}/board/available [get]
func (h *BoardHandler) Available(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var q dto.AvailableQueryDto
	if cause, respErr := validate.BindQuery(c, &q); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	employees, err := h.boardService.Available(ctx, orgID, &q)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employees)
}

// Export 下載當日摘要 CSV，依 Accept-Encoding 壓縮
// @Summary 匯出當日摘要
// @Tags Board
// @Security BearerAuth
// @Produce text/csv
// @Param orgID path string true "Organization ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Router /api/organizations/{orgID}/board/export [get]
func (h *BoardHandler) Export(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var q dto.ExportQueryDto
	if cause, respErr := validate.BindQuery(c, &q); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	filename, body, err := h.boardService.Export(ctx, orgID, q.Date)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	encoding := compress.Negotiate(c.GetHeader("Accept-Encoding"))
	if encoding != compress.Identity {
		encoded, err := compress.Encode(encoding, body)
		if err != nil {
			end(err)
			response.AbortWithError(c, cErr.InternalServer("compress export: "+err.Error()))
			return
		}
		body = encoded
		c.Header("Content-Encoding", encoding)
	}
	c.Header("Vary", "Accept-Encoding")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	response.Raw(c, "text/csv; charset=utf-8", body)
}

// Add 把員工排入某班別
// @Summary 看板新增指派
// @Tags Board
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param body body dto.BoardAddDto true "指派"
// @Success 201 {object} scheduling.Assignment
// @Failure 409 {object} response.Response
// @Router /api/organizations/{orgID}/board/assignments [post]
func (h *BoardHandler) Add(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.BoardAddDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	created, err := h.boardService.Add(ctx, orgID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// Move 換班別
// @Summary 看板移動指派
// @Tags Board
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param scheduleID path string true "Schedule ID"
// @Param body body dto.BoardMoveDto true "新班別"
// @Success 200 {object} scheduling.Assignment
// @Failure 409 {object} response.Response
// @Router /api/organizations/{orgID}/board/assignments/{scheduleID} [patch]
func (h *BoardHandler) Move(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.BoardMoveDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	moved, err := h.boardService.Move(ctx, orgID, c.Param("scheduleID"), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, moved)
}

// Remove 移除指派；已被別人刪掉的也算成功
// @Summary 看板移除指派
// @Tags Board
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param scheduleID path string true "Schedule ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} map[string]bool
// @Router /api/organizations/{orgID}/board/assignments/{scheduleID} [delete]
func (h *BoardHandler) Remove(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	day := c.Query("date")
	if day == "" {
		response.AbortWithError(c, cErr.BadRequestParams("Date is required"))
		return
	}
	if err := h.boardService.Remove(ctx, orgID, c.Param("scheduleID"), day); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}

// ToggleLeave 切換員工請假狀態
// @Summary 切換請假
// @Tags Board
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} scheduling.Employee
// @Router /api/organizations/{orgID}/board/employees/{employeeID}/leave [patch]
func (h *BoardHandler) ToggleLeave(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	employee, err := h.boardService.ToggleLeave(ctx, orgID, c.Param("employeeID"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}
