package ports

import (
	"context"

	"github.com/microblog/microblog-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUsernameOrEmail performs the combined duplicate lookup used by
	// registration and profile updates (case-sensitive exact match). When
	// excludeID is non-empty, a record with that id does not count as a
	// match, so a user can keep their own username/email on update.
	FindByUsernameOrEmail(ctx context.Context, username, email, excludeID string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
