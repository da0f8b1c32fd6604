package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daviidy/transpayra-backend/pkg/ctxutil"
)

func TestContributorToken_Header(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ctxutil.ContributorTokenFromCtx(r.Context())
		if !ok || token != "abc123" {
			t.Errorf("token = %q (ok=%v), want abc123", token, ok)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(ContributorTokenHeader, "abc123")
	rec := httptest.NewRecorder()

	ContributorToken(handler).ServeHTTP(rec, req)
}

func TestContributorToken_CookieFallback(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ctxutil.ContributorTokenFromCtx(r.Context())
		if !ok || token != "cookie-token" {
			t.Errorf("token = %q (ok=%v), want cookie-token", token, ok)
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: ContributorTokenCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()

	ContributorToken(handler).ServeHTTP(rec, req)
}

func TestContributorToken_HeaderWinsOverCookie(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ := ctxutil.ContributorTokenFromCtx(r.Context())
		if token != "header-token" {
			t.Errorf("token = %q, want header-token", token)
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(ContributorTokenHeader, "header-token")
	req.AddCookie(&http.Cookie{Name: ContributorTokenCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()

	ContributorToken(handler).ServeHTTP(rec, req)
}

func TestContributorToken_Absent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.ContributorTokenFromCtx(r.Context()); ok {
			t.Error("expected no contributor token in context")
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	ContributorToken(handler).ServeHTTP(rec, req)
}
