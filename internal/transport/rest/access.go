package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/daviidy/transpayra-backend/internal/domain"
	"github.com/daviidy/transpayra-backend/internal/service/access"
	"github.com/daviidy/transpayra-backend/pkg/ctxutil"
)

type accessService interface {
	CheckAccess(ctx context.Context, input access.CheckInput) domain.AccessGrant
}

// AccessHandler serves the access entitlement endpoint.
type AccessHandler struct {
	svc accessService
	log *slog.Logger
}

// NewAccessHandler creates an AccessHandler.
func NewAccessHandler(svc accessService, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{svc: svc, log: logger.With("handler", "access")}
}

type accessResponse struct {
	Granted         bool       `json:"granted"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	DaysUntilExpiry int        `json:"daysUntilExpiry,omitempty"`
}

// Check handles GET /api/v1/access. The identity comes from the request
// context; an unidentified caller simply gets granted=false, never an error.
func (h *AccessHandler) Check(w http.ResponseWriter, r *http.Request) {
	var input access.CheckInput
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		input.UserID = &userID
	}
	input.Token, _ = ctxutil.ContributorTokenFromCtx(r.Context())

	grant := h.svc.CheckAccess(r.Context(), input)

	resp := accessResponse{Granted: grant.Granted}
	if grant.Granted {
		expiresAt := grant.ExpiresAt
		resp.ExpiresAt = &expiresAt
		resp.DaysUntilExpiry = grant.DaysUntilExpiry
	}

	writeJSON(w, http.StatusOK, resp)
}
