package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daviidy/transpayra-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SubmissionOpt mutates a seed submission before insert.
type SubmissionOpt func(*domain.Submission)

// WithUser sets the owning user id.
func WithUser(id uuid.UUID) SubmissionOpt {
	return func(s *domain.Submission) { s.UserID = &id }
}

// WithTokenHash sets the owning contributor token hash.
func WithTokenHash(hash string) SubmissionOpt {
	return func(s *domain.Submission) { s.TokenHash = &hash }
}

// WithTimes sets submitted_at and access_expires_at.
func WithTimes(submittedAt, accessExpiresAt time.Time) SubmissionOpt {
	return func(s *domain.Submission) {
		s.SubmittedAt = submittedAt
		s.AccessExpiresAt = accessExpiresAt
	}
}

// WithCompensation sets base/bonus/stock in minor units.
func WithCompensation(base, bonus, stock int64) SubmissionOpt {
	return func(s *domain.Submission) {
		s.BaseSalary = domain.Money(base)
		s.Bonus = domain.Money(bonus)
		s.Stock = domain.Money(stock)
	}
}

// WithJob sets company, job title, and location.
func WithJob(company, title, location string) SubmissionOpt {
	return func(s *domain.Submission) {
		s.Company = company
		s.JobTitle = title
		s.Location = location
	}
}

// SeedSubmission inserts a submission with sane defaults (anonymous owner,
// submitted now, access for a year) and returns the stored record.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, opts ...SubmissionOpt) domain.Submission {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	hash := "seedhash-" + uniqueSuffix()
	s := domain.Submission{
		ID:              uuid.New(),
		Company:         "Acme Corp",
		JobTitle:        "Software Engineer",
		Location:        "Berlin",
		BaseSalary:      domain.Money(8000000),
		Bonus:           domain.Money(500000),
		Stock:           domain.Money(1000000),
		TokenHash:       &hash,
		SubmittedAt:     now,
		AccessExpiresAt: now.AddDate(1, 0, 0),
	}
	for _, opt := range opts {
		opt(&s)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO submissions
		   (id, company, job_title, location, base_salary, bonus, stock,
		    user_id, token_hash, submitted_at, access_expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.Company, s.JobTitle, s.Location,
		s.BaseSalary.Cents(), s.Bonus.Cents(), s.Stock.Cents(),
		s.UserID, s.TokenHash, s.SubmittedAt, s.AccessExpiresAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission insert: %v", err)
	}

	return s
}
