package ports

import (
	"context"

	"github.com/microblog/microblog-system/internal/core/domain"
)

// UpdateProfileInput carries a partial profile update. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
}

// UserService defines profile operations on the identity service.
// Mutations take the authenticated caller id and enforce ownership
// after confirming the record exists.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, callerID string, input UpdateProfileInput) (*domain.User, error)
	DeleteProfile(ctx context.Context, id, callerID string) error
}
