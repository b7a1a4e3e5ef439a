package messages

import (
	"context"
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/exceptions"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Client, dbName string) MessageRepository {
	return &MessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSMSMessages),
	}
}

func (r *MessageMongoRepository) Insert(ctx context.Context, message *models.SMSMessage) (string, error) {
	result, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MessageMongoRepository) FindByID(ctx context.Context, messageID string) (*models.SMSMessage, error) {
	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var message models.SMSMessage
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &message, nil
}

func (r *MessageMongoRepository) FindByProviderMessageID(ctx context.Context, providerMessageID string) (*models.SMSMessage, error) {
	var message models.SMSMessage
	err := r.Collection.FindOne(ctx, bson.M{"providerMessageId": providerMessageID}).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &message, nil
}

func (r *MessageMongoRepository) List(ctx context.Context, request *requests.ListMessages) ([]models.SMSMessage, error) {
	filter := buildListFilter(request)

	sortOrder := -1
	if request.SortOrder == constvars.MessageSortOrderAscending {
		sortOrder = 1
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: request.SortBy, Value: sortOrder}}).
		SetSkip(int64((request.Page - 1) * request.PageSize)).
		SetLimit(int64(request.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	messages := make([]models.SMSMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}

func (r *MessageMongoRepository) Count(ctx context.Context, request *requests.ListMessages) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, buildListFilter(request))
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *MessageMongoRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *MessageMongoRepository) CountByStatuses(ctx context.Context, statuses []string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"status": bson.M{"$in": statuses}})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *MessageMongoRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"timestamp": bson.M{"$gte": since}})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *MessageMongoRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

func (r *MessageMongoRepository) FindRecent(ctx context.Context, limit int) ([]models.SMSMessage, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	messages := make([]models.SMSMessage, 0, limit)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}

func (r *MessageMongoRepository) MarkRead(ctx context.Context, messageID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		markReadUpdate(),
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *MessageMongoRepository) MarkManyRead(ctx context.Context, messageIDs []string) (int64, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(messageIDs))
	for _, messageID := range messageIDs {
		objectID, err := primitive.ObjectIDFromHex(messageID)
		if err != nil {
			return 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}
	result, err := r.Collection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": objectIDs}},
		markReadUpdate(),
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *MessageMongoRepository) MarkAllUnreadRead(ctx context.Context) (int64, error) {
	filter := bson.M{"status": bson.M{"$in": []string{
		constvars.MessageStatusUnread,
		constvars.MessageStatusUrgent,
	}}}
	result, err := r.Collection.UpdateMany(ctx, filter, markReadUpdate())
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func markReadUpdate() bson.M {
	return bson.M{"$set": bson.M{
		"status":    constvars.MessageStatusRead,
		"processed": true,
		"updatedAt": time.Now(),
	}}
}

func buildListFilter(request *requests.ListMessages) bson.M {
	filter := bson.M{}
	if request.Status != "" {
		filter["status"] = request.Status
	}
	if request.Category != "" {
		filter["type"] = request.Category
	}
	if request.PatientID != "" {
		filter["patientId"] = request.PatientID
	}
	if request.Search != "" {
		// QuoteMeta so the search text is matched literally.
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(request.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"message": pattern},
			{"patientName": pattern},
		}
	}
	return filter
}
