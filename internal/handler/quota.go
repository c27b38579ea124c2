package handler

import (
	"talentsync/internal/pkg/response"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"
	"talentsync/utils/validate"

	"github.com/gin-gonic/gin"
)

type QuotaHandler struct {
	trace        *telemetry.Trace
	quotaService *service.QuotaService
}

func NewQuotaHandler(trace *telemetry.Trace, quotaService *service.QuotaService) *QuotaHandler {
	return &QuotaHandler{trace: trace, quotaService: quotaService}
}

// Status 查詢組織寫入配額
// @Summary 寫入配額狀態
// @Tags Organization
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {object} dto.QuotaStatusDto
// @Failure 404 {object} response.Response
// @Router /api/organizations/{orgID}/quota [get]
func (h *QuotaHandler) Status(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	status, err := h.quotaService.Status(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, status)
}

// Reset 補滿組織寫入配額，僅限 SUPERADMIN
// @Summary 重設寫入配額
// @Tags Organization
// @Security BearerAuth
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {object} dto.QuotaStatusDto
// @Failure 403 {object} response.Response
// @Router /api/organizations/{orgID}/quota [delete]
func (h *QuotaHandler) Reset(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	orgID, cause, respErr := validate.ParseObjectID(c, "orgID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	status, err := h.quotaService.Reset(ctx, orgID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, status)
}
