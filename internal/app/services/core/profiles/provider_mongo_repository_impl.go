package profiles

import (
	"context"
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) ProviderProfileRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviderProfiles),
	}
}

func (r *ProviderMongoRepository) CreateProvider(ctx context.Context, profile *models.ProviderProfile) (string, error) {
	result, err := r.Collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateKey(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProviderMongoRepository) FindProviderByID(ctx context.Context, profileID string) (*models.ProviderProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var profile models.ProviderProfile
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProviderMongoRepository) UpdateProvider(ctx context.Context, profile *models.ProviderProfile) error {
	objectID, err := primitive.ObjectIDFromHex(profile.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	doc, err := models.ToUpdateDocument(profile)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": doc}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrMongoDBDuplicateKey(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) DeleteProviderByID(ctx context.Context, profileID string) error {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
