package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomEmployeeField struct {
	Name     string `json:"name" bson:"name"`
	Type     string `json:"type" bson:"type"`
	Required bool   `json:"required" bson:"required"`
}

type Organization struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	Timezone   string             `json:"timezone" bson:"timezone"`
	DateFormat string             `json:"dateFormat" bson:"dateFormat"`
	// 空陣列時使用 taxonomy 預設地點
	Locations            []string              `json:"locations" bson:"locations"`
	CustomEmployeeFields []CustomEmployeeField `json:"customEmployeeFields" bson:"customEmployeeFields"`
	CreatedAt            time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt" bson:"updatedAt"`
}

var OrganizationIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("idx_name"),
	},
}
