package model

// AuditLog 每次排班寫入成功後送出一筆
type AuditLog struct {
	RequestID  string `json:"request_id,omitempty"`
	OrgID      string `json:"org_id"`
	Action     string `json:"action"` // create / update / delete / recurring / reconcile
	ScheduleID string `json:"schedule_id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Day        string `json:"day,omitempty"`
	Shift      string `json:"shift,omitempty"`
	Actor      string `json:"actor,omitempty"`
	Count      int    `json:"count,omitempty"`
	Version    string `json:"version,omitempty"`
	LoggedAt   string `json:"logged_at"`
}
