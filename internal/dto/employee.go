package dto

import (
	"time"

	"talentsync/internal/core"
	"talentsync/pkg/scheduling"
)

// 建立員工；POST /api/employees 可傳單筆或陣列
type CreateEmployeeDto struct {
	OrgID          string              `json:"orgId" binding:"required"`
	EmployeeID     string              `json:"employee_id" binding:"required"` // 組織內員工編號
	Name           string              `json:"name" binding:"required"`
	Email          string              `json:"email,omitempty" binding:"omitempty,email"`
	Phone          string              `json:"phone,omitempty"`
	Position       scheduling.Role     `json:"position,omitempty" binding:"omitempty,role"` // 預設 EMPLOYEE
	JoinDate       *time.Time          `json:"joinDate,omitempty"`
	LastWorkingDay *time.Time          `json:"lastWorkingDay,omitempty"`
	Status         core.EmployeeStatus `json:"status,omitempty" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED TERMINATED"`
	Role           core.AccessRole     `json:"role,omitempty" binding:"omitempty,oneof=SUPERADMIN ADMIN USER"`
	OnLeave        bool                `json:"onLeave,omitempty"`
	CustomData     map[string]any      `json:"customData,omitempty"`
}

// 更新員工（部分欄位）
type UpdateEmployeeDto struct {
	Name           *string              `json:"name,omitempty" binding:"omitempty,min=1"`
	Email          *string              `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string              `json:"phone,omitempty"`
	Position       *scheduling.Role     `json:"position,omitempty" binding:"omitempty,role"`
	JoinDate       *time.Time           `json:"joinDate,omitempty"`
	LastWorkingDay *time.Time           `json:"lastWorkingDay,omitempty"`
	Status         *core.EmployeeStatus `json:"status,omitempty" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED TERMINATED"`
	Role           *core.AccessRole     `json:"role,omitempty" binding:"omitempty,oneof=SUPERADMIN ADMIN USER"`
	OnLeave        *bool                `json:"onLeave,omitempty"`
	CustomData     map[string]any       `json:"customData,omitempty"`
}

type EmployeeResponseDto struct {
	ID             string              `json:"id"`
	OrgID          string              `json:"orgId"`
	EmployeeID     string              `json:"employee_id"`
	Name           string              `json:"name"`
	Email          string              `json:"email,omitempty"`
	Phone          string              `json:"phone,omitempty"`
	Position       scheduling.Role     `json:"position"`
	JoinDate       *time.Time          `json:"joinDate,omitempty"`
	LastWorkingDay *time.Time          `json:"lastWorkingDay,omitempty"`
	Status         core.EmployeeStatus `json:"status"`
	Role           core.AccessRole     `json:"role"`
	OnLeave        bool                `json:"onLeave"`
	CustomData     map[string]any      `json:"customData,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// Scheduling 轉成排班引擎使用的員工
func (e *EmployeeResponseDto) Scheduling() scheduling.Employee {
	return scheduling.Employee{
		ID:         e.ID,
		OrgID:      e.OrgID,
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Status:     string(e.Status),
		OnLeave:    e.OnLeave,
	}
}
