package error

import (
	"errors"
	"net/http"

	"talentsync/pkg/scheduling"
)

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}

}

// ✅ 用戶端錯誤 (400 系列)
func ValidateErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_BODY
	return New(http.StatusBadRequest, errCode, "bad-request/body", errorDesc)
}
func ValidatePathParamsErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_PARAMS
	return New(http.StatusBadRequest, errCode, "bad-request/params", errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func DatabaseError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, DATABASE_ERROR, "database-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

// ✅ 用戶請求錯誤 (400 系列)
func BadRequest(errorDesc string, errorCode ...int) *Error {
	errCode := BAD_REQUEST_BODY
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusBadRequest, errCode, "bad-request", errorDesc)
}
func BadRequestBody(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request-body", errorDesc)
}

func BadRequestParams(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request-params", errorDesc)
}

func InvalidDate(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_DATE, "invalid-date", errorDesc)
}

func InvalidRecurrence(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_RECURRENCE, "invalid-recurrence", errorDesc)
}

// ✅ 權限錯誤 (401, 403)
func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

func InvalidSession(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_SESSION, "invalid-session", errorDesc)
}

func OrganizationForbidden(errorDesc string) *Error {
	return New(http.StatusForbidden, ORGANIZATION_FORBIDDEN, "organization-forbidden", errorDesc)
}

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "rate-limit-exceeded", errorDesc)
}

func Forbidden(errorDesc string, errorCode ...int) *Error {
	errCode := FORBIDDEN
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusForbidden, errCode, "forbidden", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, "not-found", errorDesc)
}

// ✅ 資源衝突 (409)
func Conflict(errorDesc string) *Error {
	return New(http.StatusConflict, CONFLICT, "conflict", errorDesc)
}

func Busy(errorDesc string) *Error {
	return New(http.StatusConflict, RESOURCE_BUSY, "resource-busy", errorDesc)
}

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}
func (e *Error) ErrorDesc() string {
	return e.errorDesc
}
func (e *Error) Error() string {
	return e.errorMsg
}
func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequest(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return Forbidden(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusConflict:
		return Conflict(desc)
	case http.StatusTooManyRequests:
		return RateLimitExceeded(desc)
	case http.StatusInternalServerError:
		return InternalServer(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	default:
		return InternalServer(desc)
	}
}

// FromDomain 將 scheduling 套件的錯誤轉成 API 錯誤
// Validation→400、NotFound→404、Conflict/Busy→409、其餘→503
// 由 ToDomain 包裝過的錯誤直接取回原本的 *Error
func FromDomain(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, scheduling.ErrBusy) || errors.Is(err, scheduling.ErrStale) {
		return Busy("another change is in progress, please retry")
	}
	var domainErr *scheduling.Error
	if !errors.As(err, &domainErr) {
		return ServiceUnavailable("request failed, please try again")
	}
	switch domainErr.Kind {
	case scheduling.KindValidation:
		return ValidateErr(domainErr.Message)
	case scheduling.KindNotFound:
		return NotFound(domainErr.Message)
	case scheduling.KindConflict:
		return Conflict(domainErr.Message)
	default:
		return ServiceUnavailable(domainErr.UserMessage())
	}
}

// ToDomain 反向轉換，讓 in-process 的 store 對 Board 表現得跟 HTTP client 一致
func ToDomain(op string, err error) error {
	if err == nil {
		return nil
	}
	appErr, ok := err.(*Error)
	if !ok {
		return err
	}
	out := scheduling.FromStatus(op, appErr.HttpCode(), appErr.ErrorDesc())
	var domainErr *scheduling.Error
	if errors.As(out, &domainErr) {
		domainErr.Err = appErr
	}
	return out
}
