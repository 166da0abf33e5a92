package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/microblog/microblog-system/internal/core/domain"
)

const collectionTweets = "tweets"

const indexTimeout = 30 * time.Second

// TweetRepository implements ports.TweetRepository using MongoDB.
type TweetRepository struct {
	col *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{col: db.Collection(collectionTweets)}
}

func (r *TweetRepository) Create(ctx context.Context, t *domain.Tweet) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert tweet: %w", err)
	}
	return nil
}

func (r *TweetRepository) FindByID(ctx context.Context, id string) (*domain.Tweet, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var t domain.Tweet
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTweetNotFound
		}
		return nil, fmt.Errorf("find tweet: %w", err)
	}
	return &t, nil
}

// List returns one page ordered by created_at descending with _id as a
// deterministic tiebreak, plus the total tweet count. A page past the
// end yields an empty slice.
func (r *TweetRepository) List(ctx context.Context, page, limit int) ([]*domain.Tweet, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	skip := int64(page-1) * int64(limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list tweets: %w", err)
	}

	tweets := []*domain.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, 0, fmt.Errorf("list tweets: decode: %w", err)
	}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("list tweets: count: %w", err)
	}

	return tweets, total, nil
}

// Update persists new content and updated_at only; author_id and
// created_at are deliberately excluded from the update document.
func (r *TweetRepository) Update(ctx context.Context, t *domain.Tweet) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"content":    t.Content,
		"updated_at": t.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": t.ID}, update)
	if err != nil {
		return fmt.Errorf("update tweet: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTweetNotFound
	}
	return nil
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTweetNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the list ordering and the
// per-author lookups.
func (r *TweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
