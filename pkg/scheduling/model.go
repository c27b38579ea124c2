package scheduling

import "time"

type Employee struct {
	ID         string `json:"id"`
	OrgID      string `json:"orgId"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Position   Role   `json:"position"`
	Status     string `json:"status,omitempty"`
	OnLeave    bool   `json:"onLeave"`
}

type AssignmentState string

const (
	StatePending   AssignmentState = "pending"
	StateConfirmed AssignmentState = "confirmed"
)

// Assignment 一筆排班；EmployeeName 與 Position 為寫入當下的快照，不隨員工資料變動
type Assignment struct {
	ID           string          `json:"id"`
	OrgID        string          `json:"orgId"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Position     string          `json:"position"`
	Date         time.Time       `json:"date"`
	Shift        string          `json:"shift"`
	Location     string          `json:"location"`
	OnLeave      bool            `json:"onLeave"`
	State        AssignmentState `json:"state,omitempty"`
}

type EmployeePatch struct {
	Name     *string `json:"name,omitempty"`
	Position *Role   `json:"position,omitempty"`
	Status   *string `json:"status,omitempty"`
	OnLeave  *bool   `json:"onLeave,omitempty"`
}

type AssignmentPatch struct {
	Shift        *string    `json:"shift,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Position     *string    `json:"position,omitempty"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	OnLeave      *bool      `json:"onLeave,omitempty"`
}
