package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"talentsync/pkg/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDomain(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"validation", &scheduling.Error{Kind: scheduling.KindValidation, Message: "shift is required"}, http.StatusBadRequest, BAD_REQUEST_BODY},
		{"not found", &scheduling.Error{Kind: scheduling.KindNotFound, Message: "Schedule not found"}, http.StatusNotFound, NOT_FOUND},
		{"conflict", &scheduling.Error{Kind: scheduling.KindConflict, Message: "dup"}, http.StatusConflict, CONFLICT},
		{"transient", &scheduling.Error{Kind: scheduling.KindTransient, Message: "down"}, http.StatusServiceUnavailable, SERVICE_UNAVAILABLE},
		{"busy", scheduling.ErrBusy, http.StatusConflict, RESOURCE_BUSY},
		{"stale", fmt.Errorf("load: %w", scheduling.ErrStale), http.StatusConflict, RESOURCE_BUSY},
		{"plain", errors.New("boom"), http.StatusServiceUnavailable, SERVICE_UNAVAILABLE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromDomain(tc.err)
			require.NotNil(t, got)
			assert.Equal(t, tc.status, got.HttpCode())
			assert.Equal(t, tc.code, got.ErrorCode())
		})
	}
	assert.Nil(t, FromDomain(nil))
}

func TestDomainRoundTripKeepsOriginal(t *testing.T) {
	original := InvalidDate("Invalid date format")

	wrapped := ToDomain("list schedules", original)
	assert.Equal(t, scheduling.KindValidation, scheduling.KindOf(wrapped))

	back := FromDomain(wrapped)
	assert.Same(t, original, back)
	assert.Equal(t, INVALID_DATE, back.ErrorCode())
}

func TestToDomainPassesForeignErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, ToDomain("op", plain))
	assert.NoError(t, ToDomain("op", nil))
	assert.Equal(t, scheduling.KindConflict, scheduling.KindOf(ToDomain("op", Conflict("dup"))))
}

func TestMapHttpStatusToError(t *testing.T) {
	assert.Equal(t, NOT_FOUND, MapHttpStatusToError(http.StatusNotFound, "x").ErrorCode())
	assert.Equal(t, RATE_LIMIT_EXCEEDED, MapHttpStatusToError(http.StatusTooManyRequests, "x").ErrorCode())
	assert.Equal(t, INTERNAL_ERROR, MapHttpStatusToError(http.StatusTeapot, "x").ErrorCode())
}
