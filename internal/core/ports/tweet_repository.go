package ports

import (
	"context"

	"github.com/microblog/microblog-system/internal/core/domain"
)

// TweetRepository defines persistence operations for tweets.
type TweetRepository interface {
	Create(ctx context.Context, t *domain.Tweet) error
	FindByID(ctx context.Context, id string) (*domain.Tweet, error)
	// List returns one page of tweets ordered by creation time descending
	// (ties broken by id for determinism) together with the total count.
	// page and limit are 1-based and positive; a page past the end yields
	// an empty slice, not an error.
	List(ctx context.Context, page, limit int) ([]*domain.Tweet, int64, error)
	Update(ctx context.Context, t *domain.Tweet) error
	Delete(ctx context.Context, id string) error
}
