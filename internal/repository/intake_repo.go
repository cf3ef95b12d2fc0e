package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutriplan/internal/model"
)

// IntakeRepo archives finalized intake records for downstream processing
type IntakeRepo interface {
	Create(ctx context.Context, record *model.IntakeRecord) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) (*model.IntakeRecord, error)
	ListRecent(ctx context.Context, limit int64) ([]*model.IntakeRecord, error)
}

type intakeRepo struct {
	collection *mongo.Collection
}

// NewIntakeRepo creates a new intake repository
func NewIntakeRepo(db *mongo.Database) IntakeRepo {
	return &intakeRepo{
		collection: db.Collection("intakes"),
	}
}

func (r *intakeRepo) Create(ctx context.Context, record *model.IntakeRecord) (string, error) {
	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *intakeRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.IntakeRecord, error) {
	var record model.IntakeRecord
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *intakeRepo) ListRecent(ctx context.Context, limit int64) ([]*model.IntakeRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.IntakeRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
