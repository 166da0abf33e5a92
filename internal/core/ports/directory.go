package ports

import (
	"context"

	"github.com/microblog/microblog-system/internal/core/domain"
)

// AuthorDirectory resolves a user id to its public profile summary
// across the identity service boundary. Resolve never fails: any
// lookup problem (timeout, transport error, non-2xx, bad payload)
// degrades to domain.FallbackAuthor for that id, independently of
// sibling lookups in the same page.
type AuthorDirectory interface {
	Resolve(ctx context.Context, userID string) domain.AuthorSummary
}
