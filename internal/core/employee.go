package core

type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive   EmployeeStatus = "INACTIVE"
	EmployeeStatusSuspended  EmployeeStatus = "SUSPENDED"
	EmployeeStatusTerminated EmployeeStatus = "TERMINATED"
)

var EmployeeStatuses = []EmployeeStatus{
	EmployeeStatusActive,
	EmployeeStatusInactive,
	EmployeeStatusSuspended,
	EmployeeStatusTerminated,
}

// 預設日期格式（組織未指定時）
const DefaultDateFormat = "MM/DD/YYYY"

// gin context keys
const (
	ContextClaimsKey = "auth_claims"
)
