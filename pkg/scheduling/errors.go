package scheduling

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindTransient Kind = iota
	KindValidation
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "transient"
	}
}

var (
	// ErrBusy 集合還在載入或已有寫入進行中
	ErrBusy = errors.New("scheduling: collection is busy")
	// ErrStale fetch 的回應已被較新的請求取代
	ErrStale = errors.New("scheduling: stale response discarded")
)

type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage 給 UI 顯示的訊息
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindConflict:
		return "already scheduled"
	case KindNotFound:
		return "record not found, it may have already been removed"
	case KindValidation:
		return e.Message
	default:
		return "request failed, please try again"
	}
}

func validationError(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: msg}
}

func conflictError(op, msg string) *Error {
	return &Error{Kind: KindConflict, Op: op, Message: msg}
}

func notFoundError(op, msg string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: msg}
}

// classify 已分類的錯誤原樣回傳，其餘視為暫時性錯誤
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) || errors.Is(err, ErrBusy) || errors.Is(err, ErrStale) {
		return err
	}
	return &Error{Kind: KindTransient, Op: op, Message: "backend call failed", Err: err}
}

// KindOf 未分類的錯誤視為 KindTransient
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTransient
}

func IsConflict(err error) bool   { return err != nil && KindOf(err) == KindConflict }
func IsNotFound(err error) bool   { return err != nil && KindOf(err) == KindNotFound }
func IsValidation(err error) bool { return err != nil && KindOf(err) == KindValidation }

// FromStatus 後端 HTTP 狀態碼對應到錯誤種類
func FromStatus(op string, status int, msg string) error {
	kind := KindTransient
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindValidation
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusConflict:
		kind = KindConflict
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Kind: kind, Op: op, Message: msg}
}
