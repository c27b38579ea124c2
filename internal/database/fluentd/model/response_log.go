package model

type ResponseLog struct {
	// 對應鍵
	RequestID  string `json:"request_id"`
	OrgID      string `json:"org_id,omitempty"`
	Code       int    `json:"code"`
	StatusCode int    `json:"status_code"`
	Body       string `json:"body,omitempty"`
	Error      string `json:"error,omitempty"`
	Version    string `json:"version,omitempty"`
	ResponseTS string `json:"response_ts"`
	LoggedAt   string `json:"logged_at"`
}
