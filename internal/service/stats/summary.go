package stats

import (
	"context"
	"log/slog"
	"sort"

	"github.com/daviidy/transpayra-backend/internal/domain"
)

// Summarize computes the percentile summary of total compensation for all
// submissions matching the filter. An empty result set is reported as
// domain.ErrNoData, never as zeroes. Storage errors are logged and also
// degrade to ErrNoData: a stats panel showing "no data" beats a failed page.
func (s *Service) Summarize(ctx context.Context, f domain.StatsFilter) (*Summary, error) {
	totals, err := s.subs.TotalsByFilter(ctx, f)
	if err != nil {
		s.log.WarnContext(ctx, "summary degraded to no data",
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrNoData
	}
	if len(totals) == 0 {
		return nil, domain.ErrNoData
	}

	// totals arrive sorted ascending from the repository
	return &Summary{
		Count: len(totals),
		P25:   percentile(totals, 25),
		P50:   percentile(totals, 50),
		P75:   percentile(totals, 75),
		P90:   percentile(totals, 90),
	}, nil
}

// MediansByTitle computes the median total compensation per job title within
// a location. Titles whose median is zero carry no usable data and are
// dropped. The result is ordered by submission count descending, ties broken
// by title ascending.
func (s *Service) MediansByTitle(ctx context.Context, location string) ([]TitleMedian, error) {
	rows, err := s.subs.TotalsByTitle(ctx, location)
	if err != nil {
		s.log.WarnContext(ctx, "title medians degraded to no data",
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrNoData
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}

	medians := groupMedians(rows)
	if len(medians) == 0 {
		return nil, domain.ErrNoData
	}
	return medians, nil
}

// groupMedians folds (title, total) rows into per-title medians. Rows arrive
// ordered by title then total, so each group is a contiguous ascending run.
func groupMedians(rows []domain.TitleTotal) []TitleMedian {
	var medians []TitleMedian

	flush := func(title string, totals []int64) {
		med := percentile(totals, 50)
		if med == 0 {
			return
		}
		medians = append(medians, TitleMedian{
			JobTitle: title,
			Median:   med,
			Count:    len(totals),
		})
	}

	var (
		title  string
		totals []int64
	)
	for _, row := range rows {
		if row.JobTitle != title && totals != nil {
			flush(title, totals)
			totals = nil
		}
		title = row.JobTitle
		totals = append(totals, row.Total)
	}
	if totals != nil {
		flush(title, totals)
	}

	// count descending, then title ascending for a stable presentation
	sort.Slice(medians, func(i, j int) bool {
		if medians[i].Count != medians[j].Count {
			return medians[i].Count > medians[j].Count
		}
		return medians[i].JobTitle < medians[j].JobTitle
	})

	return medians
}
