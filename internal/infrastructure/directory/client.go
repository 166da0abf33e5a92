// Package directory implements the identity-directory client used by
// the tweet service to resolve author summaries at read time.
//
// Failure policy is fallback, not propagation: author metadata is
// cosmetic to the reader, so a directory outage must never make tweet
// reads unavailable.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/microblog/microblog-system/internal/api/metrics"
	"github.com/microblog/microblog-system/internal/core/domain"
)

const defaultLookupTimeout = 3 * time.Second

// Client resolves author summaries via GET <base>/users/{id}. Every
// lookup carries its own timeout; any transport error, non-2xx status
// or undecodable body degrades to domain.FallbackAuthor.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		logger:  logger,
	}
}

// Resolve never fails: lookup errors are absorbed into the fallback
// summary for this one id, independently of sibling lookups.
func (c *Client) Resolve(ctx context.Context, userID string) domain.AuthorSummary {
	start := time.Now()
	summary, err := c.lookup(ctx, userID)
	metrics.AuthorLookupDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AuthorLookupsTotal.WithLabelValues("fallback").Inc()
		c.logger.Warn().Err(err).Str("user_id", userID).Msg("author lookup failed, using fallback")
		return domain.FallbackAuthor(userID)
	}

	metrics.AuthorLookupsTotal.WithLabelValues("ok").Inc()
	return *summary
}

func (c *Client) lookup(ctx context.Context, userID string) (*domain.AuthorSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("directory: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("directory: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		ID        string  `json:"id"`
		Username  string  `json:"username"`
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("directory: decode response: %w", err)
	}
	if payload.ID == "" || payload.Username == "" {
		return nil, fmt.Errorf("directory: malformed response for user %s", userID)
	}

	return &domain.AuthorSummary{
		ID:        payload.ID,
		Username:  payload.Username,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	}, nil
}
