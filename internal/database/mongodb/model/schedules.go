package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Schedule 一筆排班；employeeName / position 為寫入當下的快照
type Schedule struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	OrgID        primitive.ObjectID `json:"orgId" bson:"orgId"`
	EmployeeID   primitive.ObjectID `json:"employee_id" bson:"employeeId"`
	EmployeeName string             `json:"employee_name" bson:"employeeName"`
	Position     string             `json:"position" bson:"position"`
	Date         time.Time          `json:"date" bson:"date"`
	// UTC 日期 YYYY-MM-DD，僅供唯一索引使用，跟著 date 一起寫
	Day       string    `json:"-" bson:"day"`
	Shift     string    `json:"shift" bson:"shift"`
	Location  string    `json:"location" bson:"location"`
	OnLeave   bool      `json:"onLeave" bson:"onLeave"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

var ScheduleIndexes = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "orgId", Value: 1},
			{Key: "employeeId", Value: 1},
			{Key: "day", Value: 1},
			{Key: "shift", Value: 1},
		},
		Options: options.Index().SetName("uniq_orgId_employeeId_day_shift").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "orgId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("idx_orgId_date"),
	},
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().SetName("idx_employeeId"),
	},
}
