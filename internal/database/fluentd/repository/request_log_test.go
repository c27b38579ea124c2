package repository

import (
	"context"
	"testing"

	"talentsync/config"
	"talentsync/internal/database/fluentd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	tags    []string
	records []map[string]any
}

func (r *recordingClient) Post(_ context.Context, tag string, rec map[string]any) error {
	r.tags = append(r.tags, tag)
	r.records = append(r.records, rec)
	return nil
}

func (r *recordingClient) Close() error { return nil }

func TestLogAuditFillsDefaults(t *testing.T) {
	rec := &recordingClient{}
	conf := &config.Configuration{}
	conf.App.Version = "2.1.0"
	repo := NewLogRepository(conf, rec)

	require.NoError(t, repo.LogAudit(context.Background(), model.AuditLog{OrgID: "org", Action: "create", ScheduleID: "s1"}))

	require.Len(t, rec.records, 1)
	assert.Equal(t, "schedule_audit_log", rec.tags[0])
	assert.Equal(t, "2.1.0", rec.records[0]["version"])
	assert.Equal(t, "s1", rec.records[0]["schedule_id"])
	assert.NotEmpty(t, rec.records[0]["logged_at"])
	assert.NotContains(t, rec.records[0], "employee_id")
}

func TestLogRequestDefaultVersion(t *testing.T) {
	rec := &recordingClient{}
	repo := NewLogRepository(&config.Configuration{}, rec)

	require.NoError(t, repo.LogRequest(context.Background(), model.RequestLog{RequestID: "r1", Path: "/api/schedules", Method: "GET"}))
	assert.Equal(t, "request_log", rec.tags[0])
	assert.Equal(t, "1.0.0", rec.records[0]["version"])
}
