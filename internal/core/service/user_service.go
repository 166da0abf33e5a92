package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/microblog/microblog-system/internal/core/domain"
	"github.com/microblog/microblog-system/internal/core/ports"
)

// UserService implements profile reads and owner-only mutations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial update to the caller's own profile.
// Existence is confirmed before ownership, so absent ids report
// ErrUserNotFound and foreign ids report ErrForbidden.
func (s *UserService) UpdateProfile(ctx context.Context, id, callerID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeOwner(user.ID, callerID); err != nil {
		return nil, err
	}

	// Changing username or email must not collide with another account.
	if input.Username != nil || input.Email != nil {
		var username, email string
		if input.Username != nil {
			username = *input.Username
		}
		if input.Email != nil {
			email = *input.Email
		}
		existing, err := s.repo.FindByUsernameOrEmail(ctx, username, email, id)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrUserExists
		}
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Bio != nil {
		if err := domain.ValidateBio(*input.Bio); err != nil {
			return nil, err
		}
		user.Bio = *input.Bio
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.logger.Info().Str("user_id", id).Msg("profile updated")
	return updated, nil
}

// DeleteProfile removes the caller's own account. Same existence-then-
// ownership ordering as UpdateProfile.
func (s *UserService) DeleteProfile(ctx context.Context, id, callerID string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwner(user.ID, callerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	s.logger.Info().Str("user_id", id).Msg("profile deleted")
	return nil
}
