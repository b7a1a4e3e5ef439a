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

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) HospitalProfileRepository {
	return &HospitalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitalProfiles),
	}
}

func (r *HospitalMongoRepository) CreateHospital(ctx context.Context, profile *models.HospitalProfile) (string, error) {
	result, err := r.Collection.InsertOne(ctx, profile)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HospitalMongoRepository) FindHospitalByID(ctx context.Context, profileID string) (*models.HospitalProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var profile models.HospitalProfile
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *HospitalMongoRepository) UpdateHospital(ctx context.Context, profile *models.HospitalProfile) error {
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
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HospitalMongoRepository) DeleteHospitalByID(ctx context.Context, profileID string) error {
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
