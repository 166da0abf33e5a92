package domain

// fallbackUsername is substituted when the identity directory cannot
// resolve an author. Readers see a degraded author, never an error.
const fallbackUsername = "Unknown User"

// AuthorSummary is the minimal public profile attached to a tweet at
// read time. It is never persisted. FirstName/LastName are pointers so
// the fallback summary serialises them as null.
//
// fallback records how the summary was produced rather than what it
// contains: a real account that happens to be named like the fallback
// must still count as resolved.
type AuthorSummary struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`

	fallback bool
}

// FallbackAuthor returns the synthetic summary used when directory
// resolution fails for any reason.
func FallbackAuthor(userID string) AuthorSummary {
	return AuthorSummary{ID: userID, Username: fallbackUsername, fallback: true}
}

// IsFallback reports whether s is the synthetic degraded summary.
func (s AuthorSummary) IsFallback() bool {
	return s.fallback
}
