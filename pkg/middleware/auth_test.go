package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/auth"
)

type mockValidator struct {
	claims *auth.Claims
	err    error
}

func (m *mockValidator) ValidateToken(tokenString string) (*auth.Claims, error) {
	return m.claims, m.err
}

func TestRequireUserPassesClaimsThrough(t *testing.T) {
	validator := &mockValidator{claims: &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-123"},
	}}

	var gotUserID string
	handler := RequireUser(validator, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = auth.UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", gotUserID)
}

func TestRequireUserRejectsMissingHeader(t *testing.T) {
	handler := RequireUser(&mockValidator{}, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing bearer token")
}

func TestRequireUserRejectsInvalidToken(t *testing.T) {
	validator := &mockValidator{err: errors.New("expired")}
	handler := RequireUser(validator, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserRejectsTokenWithoutSubject(t *testing.T) {
	validator := &mockValidator{claims: &auth.Claims{}}
	handler := RequireUser(validator, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a subject")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	req.Header.Set("Authorization", "Bearer anonymous")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
