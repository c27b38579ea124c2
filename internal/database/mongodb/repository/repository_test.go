package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestWithUpdatedAtAddsCurrentDate(t *testing.T) {
	update := withUpdatedAt(bson.M{"$set": bson.M{"shift": "night"}})
	assert.Equal(t, bson.M{"updatedAt": true}, update["$currentDate"])
	assert.Equal(t, bson.M{"shift": "night"}, update["$set"])
}

func TestWithUpdatedAtKeepsExistingCurrentDate(t *testing.T) {
	update := withUpdatedAt(bson.M{"$currentDate": bson.M{"seenAt": true}})
	assert.Equal(t, bson.M{"seenAt": true, "updatedAt": true}, update["$currentDate"])
}
