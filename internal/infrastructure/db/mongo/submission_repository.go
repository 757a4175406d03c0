package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mastersolis/site-gateway/internal/core/domain"
	"github.com/mastersolis/site-gateway/internal/core/ports"
)

const collectionSubmissions = "submissions"

// SubmissionRepository journals forwarded form submissions. Applications are
// not safe to replay against the backend, so this collection is the
// reconciliation trail when a duplicate is suspected.
type SubmissionRepository struct {
	col *mongo.Collection
}

var _ ports.SubmissionJournal = (*SubmissionRepository)(nil)

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection(collectionSubmissions)}
}

// Record inserts one journal entry.
func (r *SubmissionRepository) Record(ctx context.Context, rec domain.SubmissionRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if rec.ID == "" {
		rec.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// ListRecent returns the latest journal entries of one kind, newest first.
func (r *SubmissionRepository) ListRecent(ctx context.Context, kind domain.SubmissionKind, limit int64) ([]domain.SubmissionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "forwarded_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{"kind": kind}, opts)
	if err != nil {
		return nil, fmt.Errorf("find submissions: %w", err)
	}
	defer cur.Close(ctx)

	var records []domain.SubmissionRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return records, nil
}

// EnsureIndexes creates the indexes the journal is queried by.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "forwarded_at", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
