package dto

import (
	"time"

	"talentsync/internal/pkg/request"
	"talentsync/pkg/scheduling"
)

type BoardQueryDto struct {
	Date     string `form:"date" binding:"required"`
	Location string `form:"location"`
	Leave    string `form:"leave" binding:"omitempty,leavefilter"`
}

type AvailableQueryDto struct {
	Date     string `form:"date" binding:"required"`
	Position string `form:"position" binding:"required"`
	Shift    string `form:"shift" binding:"omitempty,shift"`
}

type ExportQueryDto struct {
	Date string `form:"date" binding:"required"`
}

type BoardAddDto struct {
	Date       string `json:"date" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
	Shift      string `json:"shift" binding:"required,shift"`
	Location   string `json:"location" binding:"required"`
	Position   string `json:"position,omitempty"`
}

type BoardMoveDto struct {
	Date  string `json:"date" binding:"required"`
	Shift string `json:"shift" binding:"required,shift"`
}

type BoardViewDto struct {
	OrgID     string                `json:"orgId"`
	Date      time.Time             `json:"date"`
	Location  string                `json:"location"`
	Leave     string                `json:"leave"`
	Shifts    []scheduling.Shift    `json:"shifts"`
	Locations []string              `json:"locations"`
	Rows      []scheduling.GridRow  `json:"rows"`
	Counts    scheduling.Counts     `json:"counts"`
	Employees []scheduling.Employee `json:"employees"`
}

func (BoardAddDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"EmployeeID.required": "employee_id is required",
		"Shift.required":      "shift is required",
		"Shift.shift":         "shift must be one of the configured shifts",
		"Location.required":   "location is required",
	}
}

func (BoardQueryDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Date.required":     "date is required",
		"Leave.leavefilter": "leave must be one of all, onLeave, notOnLeave",
	}
}
