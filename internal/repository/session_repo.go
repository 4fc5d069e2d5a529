package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mockinterview/internal/model"
)

type SessionRepo interface {
	Create(ctx context.Context, session *model.InterviewSession) error
	GetByID(ctx context.Context, id string) (*model.InterviewSession, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.InterviewSession, error)
	IncrementRound(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id string, completedAt time.Time) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.InterviewSession) error {
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	if session.Status == "" {
		session.Status = model.SessionInProgress
	}
	if session.TotalQuestions == 0 {
		session.TotalQuestions = model.DefaultTotalQuestions
	}
	if session.CurrentRound == 0 {
		session.CurrentRound = 1
	}

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}

	return nil
}

// GetByID returns nil, nil for unknown or malformed session IDs.
func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.InterviewSession, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var session model.InterviewSession
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepo) GetByUserID(ctx context.Context, userID string) ([]*model.InterviewSession, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.InterviewSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

// IncrementRound bumps currentRound by one. The increment is atomic at
// the storage layer; it is applied unconditionally, regardless of the
// round number the caller supplied with the answer.
func (r *sessionRepo) IncrementRound(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$inc": bson.M{"currentRound": 1},
	})
	return err
}

func (r *sessionRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"status":      model.SessionCompleted,
			"completedAt": completedAt,
		},
	})
	return err
}
