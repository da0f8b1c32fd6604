package middleware

import (
	"net/http"
	"strings"

	"github.com/daviidy/transpayra-backend/pkg/ctxutil"
)

// ContributorTokenHeader carries the anonymous contributor token.
const ContributorTokenHeader = "X-Contributor-Token"

// ContributorTokenCookie is the fallback cookie for browser clients.
const ContributorTokenCookie = "contributor_token"

// ContributorToken places the caller's anonymous contributor token on the
// context, header first, cookie as fallback. The raw token stays in memory
// for the request only; hashing happens in the service layer.
func ContributorToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(ContributorTokenHeader))
		if token == "" {
			if c, err := r.Cookie(ContributorTokenCookie); err == nil {
				token = strings.TrimSpace(c.Value)
			}
		}
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := ctxutil.WithContributorToken(r.Context(), token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
