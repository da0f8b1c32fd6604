package rest

import (
	"log/slog"
	"net/http"

	"github.com/daviidy/transpayra-backend/internal/auth"
)

// TokenHandler issues fresh anonymous contributor tokens. The server never
// stores the raw value; the client keeps it and presents it on later requests.
type TokenHandler struct {
	log *slog.Logger
}

// NewTokenHandler creates a TokenHandler.
func NewTokenHandler(logger *slog.Logger) *TokenHandler {
	return &TokenHandler{log: logger.With("handler", "token")}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /api/v1/tokens.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GenerateToken()
	if err != nil {
		h.log.ErrorContext(r.Context(), "generate token", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{Token: token})
}
