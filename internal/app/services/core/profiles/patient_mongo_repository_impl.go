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

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) PatientProfileRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientProfiles),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, profile *models.PatientProfile) (string, error) {
	result, err := r.Collection.InsertOne(ctx, profile)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PatientMongoRepository) FindPatientByID(ctx context.Context, profileID string) (*models.PatientProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var profile models.PatientProfile
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *PatientMongoRepository) FindPatientByPhoneNumber(ctx context.Context, phoneNumber string) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	err := r.Collection.FindOne(ctx, bson.M{"phoneNumber": phoneNumber}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, profile *models.PatientProfile) error {
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

func (r *PatientMongoRepository) DeletePatientByID(ctx context.Context, profileID string) error {
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
