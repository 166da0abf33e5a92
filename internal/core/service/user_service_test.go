package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/microblog/microblog-system/internal/core/domain"
	"github.com/microblog/microblog-system/internal/core/ports"
)

func seedUser(repo *stubUserRepo, id, username, email string) *domain.User {
	now := time.Now().UTC().Add(-time.Hour)
	user := &domain.User{
		ID:        id,
		Username:  username,
		Email:     email,
		FirstName: "Jane",
		Bio:       "hello",
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo.byID[id] = user
	return user
}

func strPtr(s string) *string { return &s }

func TestUserService_GetProfile(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user-1", "alice", "alice@example.com")
	svc := NewUserService(repo, discardLogger)

	user, err := svc.GetProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected alice, got %q", user.Username)
	}

	if _, err := svc.GetProfile(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// Existence is checked before ownership: a missing profile reports
// NotFound even to a caller who would not own it.
func TestUserService_Update_NotFoundBeforeForbidden(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user-1", "alice", "alice@example.com")
	svc := NewUserService(repo, discardLogger)

	_, err := svc.UpdateProfile(context.Background(), "ghost", "user-2", ports.UpdateProfileInput{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_Forbidden(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user-1", "alice", "alice@example.com")
	svc := NewUserService(repo, discardLogger)

	_, err := svc.UpdateProfile(context.Background(), "user-1", "user-2", ports.UpdateProfileInput{
		Bio: strPtr("still not yours"),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	original := seedUser(repo, "user-1", "alice", "alice@example.com")
	svc := NewUserService(repo, discardLogger)

	updated, err := svc.UpdateProfile(context.Background(), "user-1", "user-1", ports.UpdateProfileInput{
		Bio: strPtr("new bio"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Bio != "new bio" {
		t.Errorf("bio not updated: %q", updated.Bio)
	}
	if updated.Username != "alice" || updated.Email != "alice@example.com" || updated.FirstName != "Jane" {
		t.Error("untouched fields must keep their values")
	}
	if !updated.UpdatedAt.After(original.UpdatedAt) {
		t.Error("UpdatedAt must be refreshed")
	}
}

func TestUserService_Update_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user-1", "alice", "alice@example.com")
	seedUser(repo, "user-2", "bob", "bob@example.com")
	svc := NewUserService(repo, discardLogger)

	_, err := svc.UpdateProfile(context.Background(), "user-1", "user-1", ports.UpdateProfileInput{
		Username: strPtr("bob"),
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// Keeping your own username on update must not trip the duplicate
// check against your own record.
func TestUserService_Update_OwnUsernameNotDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user-1", "alice", "alice@example.com")
	svc := NewUserService(repo, discardLogger)

	updated, err := svc.UpdateProfile(context.Background(), "user-1", "user-1", ports.UpdateProfileInput{
		Username: strPtr("alice"),
		Bio:      strPtr("same name, new bio"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bio != "same name, new bio" {
		t.Errorf("bio not updated: %q", updated.Bio)
	}
}

func TestUserService_Update_BioTooLong(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user-1", "alice", "alice@example.com")
	svc := NewUserService(repo, discardLogger)

	_, err := svc.UpdateProfile(context.Background(), "user-1", "user-1", ports.UpdateProfileInput{
		Bio: strPtr(strings.Repeat("x", 501)),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user-1", "alice", "alice@example.com")
	svc := NewUserService(repo, discardLogger)

	if err := svc.DeleteProfile(context.Background(), "ghost", "user-1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.DeleteProfile(context.Background(), "user-1", "user-2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := svc.DeleteProfile(context.Background(), "user-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.byID["user-1"]; ok {
		t.Error("user must be removed from the repository")
	}
}
