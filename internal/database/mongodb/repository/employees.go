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

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(mongoClient *client.MongoClient) *EmployeeRepository {
	repository := &EmployeeRepository{
		collection: mongoClient.Collection(core.MongoCollectionEmployees),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EmployeeRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.EmployeeIndexes)
	return err
}

func (repository *EmployeeRepository) Create(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	nowUTC := time.Now().UTC()
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	employee.CreatedAt = nowUTC
	employee.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, employee)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	employee.ID = objectID
	return employee, nil
}

// CreateMany 批次新增；ordered 寫入，遇到第一筆錯誤即停止
func (repository *EmployeeRepository) CreateMany(contextValue context.Context, employees []*model.Employee) (_ []*model.Employee, returnedError error) {
	if len(employees) == 0 {
		return employees, nil
	}
	nowUTC := time.Now().UTC()
	documents := make([]any, 0, len(employees))
	for _, employee := range employees {
		if employee.ID.IsZero() {
			employee.ID = primitive.NewObjectID()
		}
		employee.CreatedAt = nowUTC
		employee.UpdatedAt = nowUTC
		documents = append(documents, employee)
	}
	if _, returnedError = repository.collection.InsertMany(contextValue, documents); returnedError != nil {
		return nil, returnedError
	}
	return employees, nil
}

func (repository *EmployeeRepository) GetByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (_ *model.Employee, returnedError error) {
	var employee model.Employee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": employeeIdentifier}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

// ListByOrg 依員工編號排序
func (repository *EmployeeRepository) ListByOrg(contextValue context.Context, orgIdentifier primitive.ObjectID) (_ []*model.Employee, returnedError error) {
	return repository.List(contextValue, bson.M{"orgId": orgIdentifier})
}

func (repository *EmployeeRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Employee, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}, {Key: "_id", Value: 1}})
	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := []*model.Employee{}
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EmployeeRepository) UpdateByID(contextValue context.Context, employeeIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": employeeIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *EmployeeRepository) DeleteByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"_id": employeeIdentifier})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
