package database

import (
	"context"
	"fmt"
	"log"
	"postcare-service/internal/app/config"
	"postcare-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	var connectionString string
	if driverConfig.MongoDB.Username != "" {
		connectionString = fmt.Sprintf(
			"mongodb://%s:%s@%s:%s",
			driverConfig.MongoDB.Username,
			driverConfig.MongoDB.Password,
			driverConfig.MongoDB.Host,
			driverConfig.MongoDB.Port,
		)
	} else {
		connectionString = fmt.Sprintf(
			"mongodb://%s:%s",
			driverConfig.MongoDB.Host,
			driverConfig.MongoDB.Port,
		)
	}
	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// EnsureIndexes creates the indexes the application relies on. Index
// creation is idempotent so this is safe to run at every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(constvars.MongoCollectionUsers)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	providers := db.Collection(constvars.MongoCollectionProviderProfiles)
	_, err = providers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "licenseNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	messages := db.Collection(constvars.MongoCollectionSMSMessages)
	_, err = messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	})
	return err
}
