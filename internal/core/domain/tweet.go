package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const maxTweetLength = 280

// Tweet is the core post record. AuthorID is immutable after creation;
// every mutation path must re-check it against the caller before applying.
type Tweet struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Content   string    `json:"content" bson:"content"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidateContent enforces the 1-280 character content contract. The
// limit counts characters, not bytes, so multibyte content is measured
// the same way the request validator measures it.
func ValidateContent(content string) error {
	if content == "" {
		return fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	if utf8.RuneCountInString(content) > maxTweetLength {
		return fmt.Errorf("%w: content cannot exceed %d characters", ErrValidation, maxTweetLength)
	}
	return nil
}
