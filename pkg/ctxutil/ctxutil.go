// Package ctxutil carries per-request identity values through context.
// The session layer (middleware) extracts them once; handlers and services
// never read cookies or headers directly.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey           ctxKey = "user_id"
	requestIDKey        ctxKey = "request_id"
	contributorTokenKey ctxKey = "contributor_token"
)

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithContributorToken stores the raw anonymous contributor token in the
// context. The raw token never leaves the process — only its hash is stored.
func WithContributorToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contributorTokenKey, token)
}

// ContributorTokenFromCtx extracts the raw contributor token from the context.
// Returns an empty string and false if absent.
func ContributorTokenFromCtx(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(contributorTokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
