package ports

import (
	"context"
	"time"

	"github.com/microblog/microblog-system/internal/core/domain"
)

// AuthoredTweet is a tweet with its author summary resolved at read
// time. It is derived, never persisted.
type AuthoredTweet struct {
	ID        string
	Content   string
	AuthorID  string
	Author    domain.AuthorSummary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListTweetsResult is one page of enriched tweets plus pagination
// metadata. Enrichment failures never change Tweets length, ordering,
// or any of the counters — only the Author field of affected entries.
type ListTweetsResult struct {
	Tweets     []AuthoredTweet
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// TweetService defines use-case operations for tweets.
type TweetService interface {
	Create(ctx context.Context, content, authorID string) (*AuthoredTweet, error)
	List(ctx context.Context, page, limit int) (*ListTweetsResult, error)
	Get(ctx context.Context, id string) (*AuthoredTweet, error)
	Update(ctx context.Context, id, content, callerID string) (*AuthoredTweet, error)
	Delete(ctx context.Context, id, callerID string) error
}
