// Package submission implements the salary submission repository using
// PostgreSQL. Queries are built with squirrel and executed through pgx.
package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daviidy/transpayra-backend/internal/adapter/postgres"
	"github.com/daviidy/transpayra-backend/internal/domain"
)

const table = "submissions"

var selectColumns = []string{
	"id", "company", "job_title", "location",
	"base_salary", "bonus", "stock",
	"user_id", "token_hash", "submitted_at", "access_expires_at",
}

// builder is the shared squirrel statement builder with $1-style placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new submission and returns its generated identifier.
func (r *Repo) Create(ctx context.Context, s *domain.Submission) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Insert(table).
		Columns("company", "job_title", "location",
			"base_salary", "bonus", "stock",
			"user_id", "token_hash", "submitted_at", "access_expires_at").
		Values(s.Company, s.JobTitle, s.Location,
			s.BaseSalary.Cents(), s.Bonus.Cents(), s.Stock.Cents(),
			s.UserID, s.TokenHash, s.SubmittedAt, s.AccessExpiresAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert: %w", err)
	}

	var id uuid.UUID
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, mapError(err, "submission", uuid.Nil)
	}

	return id, nil
}

// LatestByIdentity returns the most recent submission owned by the given
// identity, matched by user_id OR token_hash.
// Returns domain.ErrNotFound if the identity has no submissions.
func (r *Repo) LatestByIdentity(ctx context.Context, ident domain.Identity) (*domain.Submission, error) {
	pred, err := identityPredicate(ident)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.
		Select(selectColumns...).
		From(table).
		Where(pred).
		OrderBy("submitted_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	s, err := scanSubmission(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "submission", uuid.Nil)
	}
	return s, nil
}

// LatestActiveByIdentity returns the most recent submission owned by the
// identity whose access window is still open at the given instant.
// Returns domain.ErrNotFound when no such submission exists.
func (r *Repo) LatestActiveByIdentity(ctx context.Context, ident domain.Identity, now time.Time) (*domain.Submission, error) {
	pred, err := identityPredicate(ident)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.
		Select(selectColumns...).
		From(table).
		Where(pred).
		Where(sq.GtOrEq{"access_expires_at": now}).
		OrderBy("submitted_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	s, err := scanSubmission(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "submission", uuid.Nil)
	}
	return s, nil
}

// MigrateOwnership assigns user_id to every submission that carries the
// given token hash and has no owner yet, in a single batch update.
// Rows that already have a user_id are never touched. Returns the number
// of rows migrated; zero is not an error.
func (r *Repo) MigrateOwnership(ctx context.Context, tokenHash string, userID uuid.UUID) (int, error) {
	query, args, err := builder.
		Update(table).
		Set("user_id", userID).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where("user_id IS NULL").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "submission", userID)
	}

	return int(tag.RowsAffected()), nil
}

// TotalsByFilter returns total compensation (base + bonus + stock, in minor
// units) for every submission matching the filter, sorted ascending so the
// caller can apply nearest-rank percentile selection directly.
func (r *Repo) TotalsByFilter(ctx context.Context, f domain.StatsFilter) ([]int64, error) {
	f.Normalize()

	sel := builder.
		Select("base_salary + bonus + stock AS total").
		From(table)
	sel = applyFilter(sel, f)
	sel = sel.OrderBy("total ASC")

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "submission", uuid.Nil)
	}
	defer rows.Close()

	var totals []int64
	for rows.Next() {
		var total int64
		if err := rows.Scan(&total); err != nil {
			return nil, mapError(err, "submission", uuid.Nil)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "submission", uuid.Nil)
	}

	return totals, nil
}

// TotalsByTitle returns (job_title, total compensation) pairs for every
// submission in the given location, ordered by title then total so per-group
// slices arrive sorted ascending.
func (r *Repo) TotalsByTitle(ctx context.Context, location string) ([]domain.TitleTotal, error) {
	query, args, err := builder.
		Select("job_title", "base_salary + bonus + stock AS total").
		From(table).
		Where(sq.Eq{"location": location}).
		OrderBy("job_title ASC", "total ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "submission", uuid.Nil)
	}
	defer rows.Close()

	var result []domain.TitleTotal
	for rows.Next() {
		var tt domain.TitleTotal
		if err := rows.Scan(&tt.JobTitle, &tt.Total); err != nil {
			return nil, mapError(err, "submission", uuid.Nil)
		}
		result = append(result, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "submission", uuid.Nil)
	}

	return result, nil
}

// applyFilter adds the configured filter predicates to a select builder.
func applyFilter(sel sq.SelectBuilder, f domain.StatsFilter) sq.SelectBuilder {
	if f.Company != "" {
		sel = sel.Where(sq.Eq{"company": f.Company})
	}
	if f.Location != "" {
		sel = sel.Where(sq.Eq{"location": f.Location})
	}
	if f.JobTitle != "" {
		sel = sel.Where(sq.Eq{"job_title": f.JobTitle})
	}
	return sel
}

// identityPredicate builds the ownership match: user_id = X OR token_hash = Y,
// with absent components dropped. A zero identity is rejected — matching
// every row would be a data leak, so the caller must fail closed first.
func identityPredicate(ident domain.Identity) (sq.Sqlizer, error) {
	var or sq.Or
	if ident.UserID != nil && *ident.UserID != uuid.Nil {
		or = append(or, sq.Eq{"user_id": *ident.UserID})
	}
	if ident.TokenHash != nil && *ident.TokenHash != "" {
		or = append(or, sq.Eq{"token_hash": *ident.TokenHash})
	}
	if len(or) == 0 {
		return nil, fmt.Errorf("%w: identity is empty", domain.ErrValidation)
	}
	return or, nil
}

// scanSubmission scans a full submission row.
func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var (
		s     domain.Submission
		base  int64
		bonus int64
		stock int64
	)
	err := row.Scan(
		&s.ID, &s.Company, &s.JobTitle, &s.Location,
		&base, &bonus, &stock,
		&s.UserID, &s.TokenHash, &s.SubmittedAt, &s.AccessExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	s.BaseSalary = domain.Money(base)
	s.Bonus = domain.Money(bonus)
	s.Stock = domain.Money(stock)
	return &s, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
