package dto

import (
	"time"

	"talentsync/internal/pkg/request"
	"talentsync/pkg/scheduling"
)

// 建立排班；employee_name / position 空白時由員工資料帶入
type CreateScheduleDto struct {
	OrgID        string `json:"orgId" binding:"required"`
	EmployeeID   string `json:"employee_id" binding:"required"`
	EmployeeName string `json:"employee_name,omitempty"`
	Position     string `json:"position,omitempty"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD 或 RFC 3339
	Shift        string `json:"shift" binding:"required,shift"`
	Location     string `json:"location" binding:"required"`
	OnLeave      bool   `json:"onLeave,omitempty"`
}

// 更新排班；id 放在 body
type UpdateScheduleDto struct {
	ID           string  `json:"id" binding:"required"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Position     *string `json:"position,omitempty"`
	Date         *string `json:"date,omitempty"`
	Shift        *string `json:"shift,omitempty" binding:"omitempty,shift"`
	Location     *string `json:"location,omitempty" binding:"omitempty,min=1"`
	OnLeave      *bool   `json:"onLeave,omitempty"`
}

// 週期排班：以 RRULE 展開後逐日建立
type CreateRecurringScheduleDto struct {
	OrgID      string `json:"orgId" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
	Position   string `json:"position,omitempty"`
	Start      string `json:"start" binding:"required"`
	RRule      string `json:"rrule" binding:"required"` // 例如 FREQ=WEEKLY;BYDAY=MO,WE;COUNT=8
	Shift      string `json:"shift" binding:"required,shift"`
	Location   string `json:"location" binding:"required"`
}

type RecurringScheduleResultDto struct {
	Created   []*ScheduleResponseDto `json:"created"`
	Conflicts []string               `json:"conflicts"` // 已有同班別的日期
}

type ScheduleResponseDto struct {
	ID           string    `json:"id"`
	OrgID        string    `json:"orgId"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Position     string    `json:"position"`
	Date         time.Time `json:"date"`
	Shift        string    `json:"shift"`
	Location     string    `json:"location"`
	OnLeave      bool      `json:"onLeave"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *ScheduleResponseDto) Scheduling() scheduling.Assignment {
	return scheduling.Assignment{
		ID:           s.ID,
		OrgID:        s.OrgID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Position:     s.Position,
		Date:         s.Date,
		Shift:        s.Shift,
		Location:     s.Location,
		OnLeave:      s.OnLeave,
	}
}

type ReconcileResultDto struct {
	OrgID   string `json:"orgId"`
	From    string `json:"from"`
	To      string `json:"to"`
	Scanned int    `json:"scanned"`
	Updated int    `json:"updated"`
}

func (CreateScheduleDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"OrgID.required":      "orgId is required",
		"EmployeeID.required": "employee_id is required",
		"Date.required":       "date is required",
		"Shift.required":      "shift is required",
		"Shift.shift":         "shift must be one of the configured shifts",
		"Location.required":   "location is required",
	}
}

func (CreateRecurringScheduleDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Start.required": "start is required",
		"RRule.required": "rrule is required",
		"Shift.shift":    "shift must be one of the configured shifts",
	}
}
