package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Token      *TokenHandler
	Submission *SubmissionHandler
	Access     *AccessHandler
	Stats      *StatsHandler
}

// NewRouter mounts all REST routes on a fresh mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/tokens", h.Token.Issue)

	mux.HandleFunc("POST /api/v1/submissions", h.Submission.Submit)
	mux.HandleFunc("POST /api/v1/submissions/claim", h.Submission.Claim)

	mux.HandleFunc("GET /api/v1/access", h.Access.Check)

	mux.HandleFunc("GET /api/v1/stats/summary", h.Stats.Summary)
	mux.HandleFunc("GET /api/v1/stats/titles", h.Stats.TitleMedians)

	return mux
}
