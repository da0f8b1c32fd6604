// Package stats implements the statistics aggregator: percentile summaries
// of total compensation and per-title medians.
package stats

import (
	"context"
	"log/slog"

	"github.com/daviidy/transpayra-backend/internal/domain"
)

type submissionRepo interface {
	TotalsByFilter(ctx context.Context, f domain.StatsFilter) ([]int64, error)
	TotalsByTitle(ctx context.Context, location string) ([]domain.TitleTotal, error)
}

// Service computes aggregated compensation statistics.
type Service struct {
	subs submissionRepo
	log  *slog.Logger
}

// NewService creates a new stats service.
func NewService(log *slog.Logger, subs submissionRepo) *Service {
	return &Service{
		subs: subs,
		log:  log.With("service", "stats"),
	}
}

// Summary holds percentile figures over total compensation, in minor
// currency units.
type Summary struct {
	Count int
	P25   domain.Money
	P50   domain.Money
	P75   domain.Money
	P90   domain.Money
}

// TitleMedian is the median total compensation for one job title.
type TitleMedian struct {
	JobTitle string
	Median   domain.Money
	Count    int
}

// percentileIndex selects the nearest-rank index for percentile p over n
// sorted values: ceil(p/100 * n) - 1, clamped to [0, n-1]. The caller
// guarantees n > 0.
func percentileIndex(p, n int) int {
	idx := (p*n+99)/100 - 1
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// percentile picks the nearest-rank percentile from an ascending-sorted
// slice. Nearest-rank selects an actual element, never interpolates.
func percentile(sorted []int64, p int) domain.Money {
	return domain.Money(sorted[percentileIndex(p, len(sorted))])
}
