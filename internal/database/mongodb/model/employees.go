package model

import (
	"time"

	"talentsync/internal/core"
	"talentsync/pkg/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Employee struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id"`
	OrgID          primitive.ObjectID  `json:"orgId" bson:"orgId"`
	EmployeeID     string              `json:"employee_id" bson:"employee_id"` // 組織內員工編號
	Name           string              `json:"name" bson:"name"`
	Email          string              `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string              `json:"phone,omitempty" bson:"phone,omitempty"`
	Position       scheduling.Role     `json:"position" bson:"position"`
	JoinDate       *time.Time          `json:"joinDate,omitempty" bson:"joinDate,omitempty"`
	LastWorkingDay *time.Time          `json:"lastWorkingDay,omitempty" bson:"lastWorkingDay,omitempty"`
	Status         core.EmployeeStatus `json:"status" bson:"status"`
	Role           core.AccessRole     `json:"role" bson:"role"`
	OnLeave        bool                `json:"onLeave" bson:"onLeave"`
	CustomData     map[string]any      `json:"customData,omitempty" bson:"customData,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "orgId", Value: 1}, {Key: "employee_id", Value: 1}},
		Options: options.Index().SetName("uniq_orgId_employee_id").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "orgId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_orgId_status"),
	},
	{
		Keys:    bson.D{{Key: "orgId", Value: 1}, {Key: "position", Value: 1}},
		Options: options.Index().SetName("idx_orgId_position"),
	},
}
