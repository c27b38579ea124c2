package handler

import (
	"bytes"

	"talentsync/internal/dto"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"
	"talentsync/utils/validate"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(trace *telemetry.Trace, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{trace: trace, employeeService: employeeService}
}

// ListByOrg 列出組織內所有員工
// @Summary 員工列表
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Router /api/organizations/{orgID}/employees [get]
func (h *EmployeeHandler) ListByOrg(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	employees, err := h.employeeService.ListByOrg(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employees)
}

// Create 新增員工，body 可以是單筆物件或陣列
// @Summary 新增員工（單筆或批次）
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeDto true "員工資訊，亦可傳陣列"
// @Success 201 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	body, err := c.GetRawData()
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestBody("unable to read body"))
		return
	}
	body = bytes.TrimSpace(body)
	batch := len(body) > 0 && body[0] == '['

	var reqs []*dto.CreateEmployeeDto
	if batch {
		if cause, respErr := validate.BindBody(body, &reqs); cause != nil {
			end(cause)
			response.AbortWithError(c, respErr)
			return
		}
	} else {
		var req dto.CreateEmployeeDto
		if cause, respErr := validate.BindBody(body, &req); cause != nil {
			end(cause)
			response.AbortWithError(c, respErr)
			return
		}
		reqs = append(reqs, &req)
	}

	created, err := h.employeeService.Create(ctx, reqs)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	if batch {
		response.Create(c, created)
		return
	}
	response.Create(c, created[0])
}

// Get 取得員工
// @Summary 取得員工
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 404 {object} response.Response
// @Router /api/employees/{employeeID} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	employee, err := h.employeeService.GetByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Update 部分更新員工；onLeave 只改請假旗標，不影響既有排班
// @Summary 更新員工
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param body body dto.UpdateEmployeeDto true "更新欄位"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 404 {object} response.Response
// @Router /api/employees/{employeeID} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	updated, err := h.employeeService.Update(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, updated)
}

// Delete 刪除員工
// @Summary 刪除員工
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} response.Response
// @Router /api/employees/{employeeID} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err := h.employeeService.Delete(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}
