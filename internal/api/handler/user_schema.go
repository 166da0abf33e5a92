package handler

import (
	"time"

	"github.com/microblog/microblog-system/internal/core/domain"
)

// userResponse is the full profile view returned to authenticated
// callers. The password hash never appears in any response shape.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// summaryResponse is the public directory view consumed by the tweet
// service: GET /users/{id} -> {id, username, firstName, lastName}.
// Absent names serialise as null.
type summaryResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func toSummaryResponse(u *domain.User) summaryResponse {
	resp := summaryResponse{ID: u.ID, Username: u.Username}
	if u.FirstName != "" {
		resp.FirstName = &u.FirstName
	}
	if u.LastName != "" {
		resp.LastName = &u.LastName
	}
	return resp
}
