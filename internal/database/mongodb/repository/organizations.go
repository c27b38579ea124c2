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

type OrganizationRepository struct {
	collection *mongo.Collection
}

func NewOrganizationRepository(mongoClient *client.MongoClient) *OrganizationRepository {
	repository := &OrganizationRepository{
		collection: mongoClient.Collection(core.MongoCollectionOrganizations),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.OrganizationIndexes)
	return repository
}

func (repository *OrganizationRepository) Create(contextValue context.Context, organization *model.Organization) (_ *model.Organization, returnedError error) {
	nowUTC := time.Now().UTC()
	if organization.ID.IsZero() {
		organization.ID = primitive.NewObjectID()
	}
	organization.CreatedAt = nowUTC
	organization.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, organization)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	organization.ID = objectID
	return organization, nil
}

func (repository *OrganizationRepository) GetByID(contextValue context.Context, organizationIdentifier primitive.ObjectID) (_ *model.Organization, returnedError error) {
	var organization model.Organization
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": organizationIdentifier}).Decode(&organization); returnedError != nil {
		return nil, returnedError
	}
	return &organization, nil
}

func (repository *OrganizationRepository) List(contextValue context.Context) (_ []*model.Organization, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := []*model.Organization{}
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

func (repository *OrganizationRepository) UpdateByID(contextValue context.Context, organizationIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": organizationIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}
