package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/microblog/microblog-system/internal/core/domain"
	"github.com/microblog/microblog-system/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// TweetService implements tweet CRUD and the read-time enrichment
// pipeline that attaches author summaries from the identity directory.
type TweetService struct {
	repo      ports.TweetRepository
	directory ports.AuthorDirectory
	logger    zerolog.Logger
}

func NewTweetService(repo ports.TweetRepository, directory ports.AuthorDirectory, logger zerolog.Logger) *TweetService {
	return &TweetService{repo: repo, directory: directory, logger: logger}
}

// Create validates and persists a new tweet authored by the caller,
// returning it enriched.
func (s *TweetService) Create(ctx context.Context, content, authorID string) (*ports.AuthoredTweet, error) {
	if err := domain.ValidateContent(content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tweet := &domain.Tweet{
		ID:        uuid.NewString(),
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}

	s.logger.Info().Str("tweet_id", tweet.ID).Str("author_id", authorID).Msg("tweet created")

	authored := authoredTweet(tweet, s.directory.Resolve(ctx, authorID))
	return &authored, nil
}

// List returns one page of tweets, newest first, each enriched with its
// author summary. Directory failures degrade only the Author field of
// the affected entries; count, order and pagination metadata are taken
// from the repository alone.
func (s *TweetService) List(ctx context.Context, page, limit int) (*ports.ListTweetsResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	tweets, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListTweetsResult{
		Tweets:     s.enrich(ctx, tweets),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *TweetService) Get(ctx context.Context, id string) (*ports.AuthoredTweet, error) {
	tweet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	authored := authoredTweet(tweet, s.directory.Resolve(ctx, tweet.AuthorID))
	return &authored, nil
}

// Update replaces the content of the caller's own tweet. Existence is
// confirmed before ownership; the author id is never touched.
func (s *TweetService) Update(ctx context.Context, id, content, callerID string) (*ports.AuthoredTweet, error) {
	tweet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeOwner(tweet.AuthorID, callerID); err != nil {
		return nil, err
	}
	if err := domain.ValidateContent(content); err != nil {
		return nil, err
	}

	tweet.Content = content
	tweet.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, tweet); err != nil {
		return nil, fmt.Errorf("update tweet: %w", err)
	}

	s.logger.Info().Str("tweet_id", id).Msg("tweet updated")

	authored := authoredTweet(tweet, s.directory.Resolve(ctx, tweet.AuthorID))
	return &authored, nil
}

func (s *TweetService) Delete(ctx context.Context, id, callerID string) error {
	tweet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwner(tweet.AuthorID, callerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}

	s.logger.Info().Str("tweet_id", id).Msg("tweet deleted")
	return nil
}

// enrich resolves one author summary per tweet. Lookups run
// concurrently (bounded by the page size) and are independent: a slow
// or failed lookup affects only its own slot. Results are written by
// original index, so output order matches the repository's ordering
// regardless of completion order.
func (s *TweetService) enrich(ctx context.Context, tweets []*domain.Tweet) []ports.AuthoredTweet {
	out := make([]ports.AuthoredTweet, len(tweets))

	var wg sync.WaitGroup
	for i, t := range tweets {
		wg.Add(1)
		go func(i int, t *domain.Tweet) {
			defer wg.Done()
			out[i] = authoredTweet(t, s.directory.Resolve(ctx, t.AuthorID))
		}(i, t)
	}
	wg.Wait()

	return out
}

func authoredTweet(t *domain.Tweet, author domain.AuthorSummary) ports.AuthoredTweet {
	return ports.AuthoredTweet{
		ID:        t.ID,
		Content:   t.Content,
		AuthorID:  t.AuthorID,
		Author:    author,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
