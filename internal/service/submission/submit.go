package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daviidy/transpayra-backend/internal/domain"
	"github.com/daviidy/transpayra-backend/pkg/ctxutil"
)

// Submit records a new salary submission for the caller's identity and
// opens a fresh access window. The identity comes from the request context:
// an authenticated user id, a contributor token, or both. Rate policy is
// enforced against the identity's most recent submission regardless of which
// half of the identity it was recorded under.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (uuid.UUID, error) {
	var userID *uuid.UUID
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		userID = &id
	}
	token, _ := ctxutil.ContributorTokenFromCtx(ctx)

	ident := s.identity(userID, token)
	if ident.IsZero() {
		return uuid.Nil, domain.ErrUnauthorized
	}

	// Trim before validating so whitespace-only fields count as missing.
	input.Company = strings.TrimSpace(input.Company)
	input.JobTitle = strings.TrimSpace(input.JobTitle)
	input.Location = strings.TrimSpace(input.Location)

	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	now := s.now().UTC()

	sub := &domain.Submission{
		Company:         input.Company,
		JobTitle:        input.JobTitle,
		Location:        input.Location,
		BaseSalary:      input.BaseSalary,
		Bonus:           input.Bonus,
		Stock:           input.Stock,
		UserID:          ident.UserID,
		TokenHash:       ident.TokenHash,
		SubmittedAt:     now,
		AccessExpiresAt: now.AddDate(0, s.cfg.AccessMonths, 0),
	}

	// The policy check and the insert share a transaction to narrow the
	// window for a concurrent duplicate from the same identity.
	var id uuid.UUID
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		latest, err := s.subs.LatestByIdentity(ctx, ident)
		switch {
		case err == nil:
			if err := s.checkRatePolicy(latest, now); err != nil {
				return err
			}
		case errors.Is(err, domain.ErrNotFound):
			// first submission for this identity
		default:
			return fmt.Errorf("load latest submission: %w", err)
		}

		id, err = s.subs.Create(ctx, sub)
		if err != nil {
			return fmt.Errorf("create submission: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "submission recorded",
		slog.String("submission_id", id.String()),
		slog.String("company", sub.Company),
		slog.String("job_title", sub.JobTitle),
		slog.Bool("authenticated", ident.UserID != nil),
	)

	return id, nil
}

// checkRatePolicy rejects a submission that follows the identity's previous
// one too closely. Within the double-submit window the rejection is treated
// as an accidental repeat; past it, the cooldown counts whole elapsed days,
// blocking until the full cooldown has passed.
func (s *Service) checkRatePolicy(latest *domain.Submission, now time.Time) error {
	elapsed := now.Sub(latest.SubmittedAt)

	if elapsed < s.cfg.DoubleSubmitWindow {
		return domain.ErrTooSoon
	}

	elapsedDays := int(elapsed / (24 * time.Hour))
	if elapsedDays < s.cfg.CooldownDays {
		return &domain.CooldownError{DaysRemaining: s.cfg.CooldownDays - elapsedDays}
	}

	return nil
}
