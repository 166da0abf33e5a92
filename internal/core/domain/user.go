package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const maxBioLength = 500

// User models a registered account in the identity service.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FirstName    string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Bio          string    `json:"bio,omitempty" bson:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidateBio enforces the profile bio limit, counted in characters.
func ValidateBio(bio string) error {
	if utf8.RuneCountInString(bio) > maxBioLength {
		return fmt.Errorf("%w: bio cannot exceed %d characters", ErrValidation, maxBioLength)
	}
	return nil
}
