// Package client 呼叫 TalentSync REST API。*Client 同時實作 scheduling.Directory
// 與 scheduling.Schedules，Board 可以直接接在遠端部署上
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"talentsync/pkg/scheduling"
)

var (
	_ scheduling.Directory = (*Client)(nil)
	_ scheduling.Schedules = (*Client)(nil)
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithToken 每個請求都帶 Bearer token
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope 對應伺服器的回應外層
type envelope struct {
	RequestID   string          `json:"requestID"`
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

func (c *Client) ListEmployees(ctx context.Context, orgID string) ([]scheduling.Employee, error) {
	var out []scheduling.Employee
	path := "/api/organizations/" + url.PathEscape(orgID) + "/employees"
	if err := c.do(ctx, "list employees", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, patch scheduling.EmployeePatch) (scheduling.Employee, error) {
	var out scheduling.Employee
	err := c.do(ctx, "update employee", http.MethodPut, "/api/employees/"+url.PathEscape(id), patch, &out)
	return out, err
}

func (c *Client) ListByDate(ctx context.Context, orgID string, date time.Time) ([]scheduling.Assignment, error) {
	q := url.Values{}
	q.Set("date", scheduling.DayKey(date))
	q.Set("orgId", orgID)
	var out []scheduling.Assignment
	if err := c.do(ctx, "list schedules", http.MethodGet, "/api/schedules?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAssignment(ctx context.Context, a scheduling.Assignment) (scheduling.Assignment, error) {
	var out scheduling.Assignment
	err := c.do(ctx, "create schedule", http.MethodPost, "/api/schedules", a, &out)
	return out, err
}

func (c *Client) UpdateAssignment(ctx context.Context, id string, patch scheduling.AssignmentPatch) (scheduling.Assignment, error) {
	body := struct {
		ID string `json:"id"`
		scheduling.AssignmentPatch
	}{ID: id, AssignmentPatch: patch}
	var out scheduling.Assignment
	err := c.do(ctx, "update schedule", http.MethodPut, "/api/schedules", body, &out)
	return out, err
}

func (c *Client) DeleteAssignment(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", id)
	return c.do(ctx, "delete schedule", http.MethodDelete, "/api/schedules?"+q.Encode(), nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &scheduling.Error{Kind: scheduling.KindValidation, Op: op, Message: "encode request", Err: err}
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &scheduling.Error{Kind: scheduling.KindTransient, Op: op, Message: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &scheduling.Error{Kind: scheduling.KindTransient, Op: op, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &scheduling.Error{Kind: scheduling.KindTransient, Op: op, Message: "read response", Err: err}
	}
	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg := env.Description
		if msg == "" {
			msg = env.Message
		}
		return scheduling.FromStatus(op, resp.StatusCode, msg)
	}
	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return &scheduling.Error{Kind: scheduling.KindTransient, Op: op, Message: "decode response", Err: decodeErr}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &scheduling.Error{Kind: scheduling.KindTransient, Op: op, Message: fmt.Sprintf("decode %s data", op), Err: err}
	}
	return nil
}
