package repository

import (
	"context"

	"fizikl/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordRepo handles MongoDB operations for survey records
type RecordRepo interface {
	Create(ctx context.Context, record *model.SurveyRecord) error
	GetByID(ctx context.Context, id string) (*model.SurveyRecord, error)
	GetRecent(ctx context.Context, limit int64) ([]*model.SurveyRecord, error)
}

type recordRepo struct {
	collection *mongo.Collection
}

// NewRecordRepo creates a new survey record repository
func NewRecordRepo(db *mongo.Database) RecordRepo {
	return &recordRepo{
		collection: db.Collection("surveys"),
	}
}

func (r *recordRepo) Create(ctx context.Context, record *model.SurveyRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *recordRepo) GetByID(ctx context.Context, id string) (*model.SurveyRecord, error) {
	var record model.SurveyRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recordRepo) GetRecent(ctx context.Context, limit int64) ([]*model.SurveyRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.SurveyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
