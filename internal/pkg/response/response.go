package response

import (
	"net/http"

	cErr "talentsync/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

// PassthroughKey handler 自行寫出 body 時設定，Response middleware 不再包裝
const PassthroughKey = "passthrough_raw"

type Response struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func Create(c *gin.Context, data any) {
	c.Status(http.StatusCreated)
	set(c, data, "Create Success")
}

func Success(c *gin.Context, data any) {
	set(c, data, "Request Success")
}

// gin.H 可帶 "message" 覆寫描述文字
func set(c *gin.Context, data any, message string) {
	if h, ok := data.(gin.H); ok {
		if msg, ok := h["message"].(string); ok && msg != "" {
			message = msg
		}
		delete(h, "message")
	}
	c.Set("data", data)
	c.Set("message", message)
	c.Abort()
}

// Raw 直接輸出 body（例如 CSV 下載）
func Raw(c *gin.Context, contentType string, body []byte) {
	c.Set(PassthroughKey, true)
	c.Data(http.StatusOK, contentType, body)
	c.Abort()
}

func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, RequestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, Response{
		RequestID:   RequestID,
		Code:        errorCode,
		Data:        nil,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, RequestID string, err error) {
	v, ok := err.(*cErr.Error)
	if ok {
		Fail(c, RequestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
	} else {
		Fail(c, RequestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, err.Error(), "internal error")
	}
}
