package dto

import "time"

type CustomEmployeeFieldDto struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Required bool   `json:"required"`
}

type CreateOrganizationDto struct {
	Name                 string                   `json:"name" binding:"required"`
	Timezone             string                   `json:"timezone,omitempty"`
	DateFormat           string                   `json:"dateFormat,omitempty"` // 預設 MM/DD/YYYY
	Locations            []string                 `json:"locations,omitempty" binding:"omitempty,dive,required"`
	CustomEmployeeFields []CustomEmployeeFieldDto `json:"customEmployeeFields,omitempty" binding:"omitempty,dive"`
}

type UpdateOrganizationDto struct {
	Name                 *string                  `json:"name,omitempty" binding:"omitempty,min=1"`
	Timezone             *string                  `json:"timezone,omitempty"`
	DateFormat           *string                  `json:"dateFormat,omitempty"`
	Locations            []string                 `json:"locations,omitempty" binding:"omitempty,dive,required"`
	CustomEmployeeFields []CustomEmployeeFieldDto `json:"customEmployeeFields,omitempty" binding:"omitempty,dive"`
}

type OrganizationResponseDto struct {
	ID                   string                   `json:"id"`
	Name                 string                   `json:"name"`
	Timezone             string                   `json:"timezone"`
	DateFormat           string                   `json:"dateFormat"`
	Locations            []string                 `json:"locations"`
	CustomEmployeeFields []CustomEmployeeFieldDto `json:"customEmployeeFields"`
	CreatedAt            time.Time                `json:"createdAt"`
	UpdatedAt            time.Time                `json:"updatedAt"`
}
