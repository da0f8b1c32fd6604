// Package access implements the access entitlement evaluator: a read-only
// check of whether an identity currently holds unlocked access to full
// aggregated data.
package access

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daviidy/transpayra-backend/internal/domain"
)

type submissionRepo interface {
	LatestActiveByIdentity(ctx context.Context, ident domain.Identity, now time.Time) (*domain.Submission, error)
}

type tokenHasher interface {
	Hash(token string) string
}

// Service evaluates access entitlements.
type Service struct {
	subs   submissionRepo
	hasher tokenHasher
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new access service.
func NewService(log *slog.Logger, subs submissionRepo, hasher tokenHasher) *Service {
	return &Service{
		subs:   subs,
		hasher: hasher,
		log:    log.With("service", "access"),
		now:    time.Now,
	}
}

// CheckInput identifies the caller: an authenticated user id, a raw
// contributor token, or both. Both may be absent.
type CheckInput struct {
	UserID *uuid.UUID
	Token  string
}

// CheckAccess returns the caller's current access grant. The grant comes
// from the most recent submission of the identity whose access window is
// still open. The check fails closed: no identity means no access, and
// storage errors degrade to no access rather than surfacing (this gate is
// not critical enough to fail a page for).
func (s *Service) CheckAccess(ctx context.Context, input CheckInput) domain.AccessGrant {
	ident := domain.Identity{UserID: input.UserID}
	if input.Token != "" {
		hash := s.hasher.Hash(input.Token)
		ident.TokenHash = &hash
	}

	if ident.IsZero() {
		return domain.NoAccess()
	}

	now := s.now()
	sub, err := s.subs.LatestActiveByIdentity(ctx, ident, now)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "access check degraded to no access",
				slog.String("error", err.Error()),
			)
		}
		return domain.NoAccess()
	}

	return domain.NewAccessGrant(sub.AccessExpiresAt, now)
}
