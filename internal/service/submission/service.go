// Package submission implements the submission gatekeeper (validation,
// double-submit suppression, cooldown) and anonymous identity migration.
package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daviidy/transpayra-backend/internal/config"
	"github.com/daviidy/transpayra-backend/internal/domain"
)

type submissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) (uuid.UUID, error)
	LatestByIdentity(ctx context.Context, ident domain.Identity) (*domain.Submission, error)
	MigrateOwnership(ctx context.Context, tokenHash string, userID uuid.UUID) (int, error)
}

type tokenHasher interface {
	Hash(token string) string
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service guards writes to the submission store.
type Service struct {
	subs   submissionRepo
	hasher tokenHasher
	tx     txManager
	cfg    config.SubmissionConfig
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new submission service.
func NewService(log *slog.Logger, subs submissionRepo, hasher tokenHasher, tx txManager, cfg config.SubmissionConfig) *Service {
	return &Service{
		subs:   subs,
		hasher: hasher,
		tx:     tx,
		cfg:    cfg,
		log:    log.With("service", "submission"),
		now:    time.Now,
	}
}

// identity resolves the caller's identity. The raw contributor token is
// hashed here; the raw value is never persisted or queried with.
func (s *Service) identity(userID *uuid.UUID, token string) domain.Identity {
	ident := domain.Identity{UserID: userID}
	if token != "" {
		hash := s.hasher.Hash(token)
		ident.TokenHash = &hash
	}
	return ident
}
