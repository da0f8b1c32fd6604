package domain

import "time"

// AccessGrant is the derived entitlement to view full aggregated data.
// It is computed on demand from the most recent non-expired submission of
// an identity and is never persisted.
type AccessGrant struct {
	Granted         bool
	ExpiresAt       time.Time
	DaysUntilExpiry int
}

// NewAccessGrant builds a granted AccessGrant with DaysUntilExpiry set to
// the ceiling of (expiresAt - now) in whole days.
func NewAccessGrant(expiresAt, now time.Time) AccessGrant {
	remaining := expiresAt.Sub(now)
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return AccessGrant{
		Granted:         true,
		ExpiresAt:       expiresAt,
		DaysUntilExpiry: days,
	}
}

// NoAccess is the fail-closed grant.
func NoAccess() AccessGrant {
	return AccessGrant{}
}
