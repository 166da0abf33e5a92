package domain

// AuthorizeOwner is the ownership guard shared by tweet and profile
// mutations: the caller may mutate a record only when it owns it.
// Callers must confirm the record exists first — absence is
// ErrTweetNotFound/ErrUserNotFound, ownership failure is ErrForbidden,
// and the two must never be conflated.
func AuthorizeOwner(ownerID, callerID string) error {
	if ownerID != callerID {
		return ErrForbidden
	}
	return nil
}
