package ports

import (
	"context"

	"github.com/microblog/microblog-system/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// TokenClaims is the verified identity extracted from a bearer token.
// It is the only state that crosses the service boundary to prove who
// the caller is; nothing is kept server-side.
type TokenClaims struct {
	UserID   string
	Username string
	Email    string
}

// AuthResult is returned by register and login: a signed bearer token
// plus the account profile (password hash never included in responses).
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// VerifyToken fails closed: expiry, bad signature or malformed
	// payload all yield domain.ErrInvalidToken.
	VerifyToken(token string) (*TokenClaims, error)
}
