package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mockinterview/internal/model"
)

type ResponseRepo interface {
	Create(ctx context.Context, response *model.QuestionResponse) error
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.QuestionResponse, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.QuestionResponse) error {
	if response.AnsweredAt.IsZero() {
		response.AnsweredAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, response)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		response.ID = oid.Hex()
	}

	return nil
}

// GetBySessionID returns all responses for a session in answer order.
func (r *responseRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.QuestionResponse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "answeredAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.QuestionResponse
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}

	return responses, nil
}
