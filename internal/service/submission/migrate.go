package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daviidy/transpayra-backend/internal/domain"
	"github.com/daviidy/transpayra-backend/pkg/ctxutil"
)

// MigrateAnonymous assigns the authenticated caller all still-unowned
// submissions made under the given contributor token. Submissions already
// owned by a user are left alone, which makes the operation idempotent and
// safe against a token that leaked to someone else's account later.
// Returns the number of submissions adopted; zero is not an error.
func (s *Service) MigrateAnonymous(ctx context.Context, input MigrateInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	hash := s.hasher.Hash(input.Token)

	migrated, err := s.subs.MigrateOwnership(ctx, hash, userID)
	if err != nil {
		return 0, fmt.Errorf("migrate ownership: %w", err)
	}

	s.log.InfoContext(ctx, "anonymous submissions migrated",
		slog.String("user_id", userID.String()),
		slog.Int("count", migrated),
	)

	return migrated, nil
}
