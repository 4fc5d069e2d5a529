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

type ReportRepo interface {
	Create(ctx context.Context, report *model.FinalReport) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.FinalReport, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		collection: db.Collection("reports"),
	}
}

func (r *reportRepo) Create(ctx context.Context, report *model.FinalReport) error {
	if report.GeneratedAt.IsZero() {
		report.GeneratedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid.Hex()
	}

	return nil
}

// GetBySessionID returns nil, nil when the session has no report yet.
func (r *reportRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.FinalReport, error) {
	var report model.FinalReport
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &report, nil
}
