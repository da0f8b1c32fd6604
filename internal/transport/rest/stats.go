package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daviidy/transpayra-backend/internal/domain"
	"github.com/daviidy/transpayra-backend/internal/service/stats"
)

type statsService interface {
	Summarize(ctx context.Context, f domain.StatsFilter) (*stats.Summary, error)
	MediansByTitle(ctx context.Context, location string) ([]stats.TitleMedian, error)
}

// StatsHandler serves aggregated compensation statistics.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type summaryResponse struct {
	Count int    `json:"count"`
	P25   string `json:"p25"`
	P50   string `json:"p50"`
	P75   string `json:"p75"`
	P90   string `json:"p90"`
}

type titleMedianResponse struct {
	JobTitle string `json:"jobTitle"`
	Median   string `json:"median"`
	Count    int    `json:"count"`
}

type noDataResponse struct {
	NoData bool `json:"noData"`
}

// Summary handles GET /api/v1/stats/summary?company=&location=&job_title=.
// An empty result set is a regular 200 with noData=true: the client renders
// an empty panel, not an error page.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.StatsFilter{
		Company:  q.Get("company"),
		Location: q.Get("location"),
		JobTitle: q.Get("job_title"),
	}

	sum, err := h.svc.Summarize(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			writeJSON(w, http.StatusOK, noDataResponse{NoData: true})
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Count: sum.Count,
		P25:   sum.P25.String(),
		P50:   sum.P50.String(),
		P75:   sum.P75.String(),
		P90:   sum.P90.String(),
	})
}

// TitleMedians handles GET /api/v1/stats/titles?location=.
func (h *StatsHandler) TitleMedians(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}

	medians, err := h.svc.MediansByTitle(r.Context(), location)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			writeJSON(w, http.StatusOK, noDataResponse{NoData: true})
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]titleMedianResponse, 0, len(medians))
	for _, m := range medians {
		resp = append(resp, titleMedianResponse{
			JobTitle: m.JobTitle,
			Median:   m.Median.String(),
			Count:    m.Count,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
