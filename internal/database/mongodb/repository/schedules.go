package repository

import (
	"context"
	"fmt"
	"time"

	"talentsync/internal/core"
	client "talentsync/internal/database/client"
	"talentsync/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleRepository struct {
	collection *mongo.Collection
}

func NewScheduleRepository(mongoClient *client.MongoClient) *ScheduleRepository {
	repository := &ScheduleRepository{
		collection: mongoClient.Collection(core.MongoCollectionSchedules),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ScheduleRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.ScheduleIndexes)
	return err
}

// Create 新增排班；重複 (orgId, employeeId, day, shift) 時回傳 duplicate key 錯誤
func (repository *ScheduleRepository) Create(contextValue context.Context, schedule *model.Schedule) (_ *model.Schedule, returnedError error) {
	nowUTC := time.Now().UTC()
	if schedule.ID.IsZero() {
		schedule.ID = primitive.NewObjectID()
	}
	schedule.CreatedAt = nowUTC
	schedule.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, schedule)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	schedule.ID = objectID
	return schedule, nil
}

func (repository *ScheduleRepository) GetByID(contextValue context.Context, scheduleIdentifier primitive.ObjectID) (_ *model.Schedule, returnedError error) {
	var schedule model.Schedule
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": scheduleIdentifier}).Decode(&schedule); returnedError != nil {
		return nil, returnedError
	}
	return &schedule, nil
}

// ListRange 取 [from, to) 區間內的排班，依 date、createdAt 排序
func (repository *ScheduleRepository) ListRange(contextValue context.Context, orgIdentifier primitive.ObjectID, from, to time.Time) (_ []*model.Schedule, returnedError error) {
	filter := bson.M{
		"orgId": orgIdentifier,
		"date":  bson.M{"$gte": from, "$lt": to},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := []*model.Schedule{}
	for cursor.Next(contextValue) {
		var schedule model.Schedule
		if decodeError := cursor.Decode(&schedule); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &schedule)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *ScheduleRepository) UpdateByID(contextValue context.Context, scheduleIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": scheduleIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *ScheduleRepository) DeleteByID(contextValue context.Context, scheduleIdentifier primitive.ObjectID) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"_id": scheduleIdentifier})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
