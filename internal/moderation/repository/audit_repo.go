package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/justifyman/alansar/internal/moderation/domain"
)

// AuditRepo definition moderation audit trail store
type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	ListBySubmission(ctx context.Context, submissionID string) ([]domain.AuditEntry, error)
}

type auditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo create a AuditRepo
func NewMongoAuditRepo(db *mongo.Database) AuditRepo {
	return &auditRepo{
		coll: db.Collection("moderation_audit"),
	}
}

// Insert 寫入一筆審核軌跡
func (r *auditRepo) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

// ListBySubmission 查某個投稿的全部審核軌跡，按時間升序
func (r *auditRepo) ListBySubmission(ctx context.Context, submissionID string) ([]domain.AuditEntry, error) {
	filter := bson.M{"submission_id": submissionID}
	opts := options.Find()
	opts.SetSort(bson.M{"timestamp": 1})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var entries []domain.AuditEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
