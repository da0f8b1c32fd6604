package domain

import "github.com/google/uuid"

// Identity is the owner of a submission: an authenticated user id, an
// anonymous contributor token hash, or both (after migration). A zero
// Identity matches nothing — callers must fail closed on it.
type Identity struct {
	UserID    *uuid.UUID
	TokenHash *string
}

// UserIdentity builds an Identity for an authenticated user.
func UserIdentity(id uuid.UUID) Identity {
	return Identity{UserID: &id}
}

// AnonymousIdentity builds an Identity for a contributor token hash.
func AnonymousIdentity(tokenHash string) Identity {
	return Identity{TokenHash: &tokenHash}
}

// IsZero reports whether neither identity component is present.
func (i Identity) IsZero() bool {
	return (i.UserID == nil || *i.UserID == uuid.Nil) &&
		(i.TokenHash == nil || *i.TokenHash == "")
}
