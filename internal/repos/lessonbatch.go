package repos

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brieflyhq/briefly-backend/internal/apperrors"
	"github.com/brieflyhq/briefly-backend/internal/logger"
	"github.com/brieflyhq/briefly-backend/internal/types"
)

// LessonBatchRepo is the document-store boundary for generated lesson batches.
// Unlike the relational repos it takes no transaction handle; every call is a
// single-document operation.
type LessonBatchRepo interface {
	Insert(ctx context.Context, batch *types.LessonBatch) error
	GetByID(ctx context.Context, id string) (*types.LessonBatch, error)
	ListByUser(ctx context.Context, userID string, limit, skip int64) ([]*types.LessonBatch, error)
	DeleteByID(ctx context.Context, id string) error
}

type lessonBatchRepo struct {
	collection *mongo.Collection
	log        *logger.Logger
}

func NewLessonBatchRepo(collection *mongo.Collection, baseLog *logger.Logger) LessonBatchRepo {
	repoLog := baseLog.With("repo", "LessonBatchRepo")
	return &lessonBatchRepo{collection: collection, log: repoLog}
}

func (lr *lessonBatchRepo) Insert(ctx context.Context, batch *types.LessonBatch) error {
	if batch == nil {
		return fmt.Errorf("nil lesson batch")
	}
	for i := range batch.Lessons {
		if err := batch.Lessons[i].Validate(batch.LearningType); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err)
		}
	}
	if _, err := lr.collection.InsertOne(ctx, batch); err != nil {
		return err
	}
	return nil
}

func (lr *lessonBatchRepo) GetByID(ctx context.Context, id string) (*types.LessonBatch, error) {
	var batch types.LessonBatch
	err := lr.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&batch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("lesson batch %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (lr *lessonBatchRepo) ListByUser(ctx context.Context, userID string, limit, skip int64) ([]*types.LessonBatch, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := lr.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	batches := []*types.LessonBatch{}
	for cursor.Next(ctx) {
		var batch types.LessonBatch
		if err := cursor.Decode(&batch); err != nil {
			return nil, err
		}
		batches = append(batches, &batch)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return batches, nil
}

func (lr *lessonBatchRepo) DeleteByID(ctx context.Context, id string) error {
	result, err := lr.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("lesson batch %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
