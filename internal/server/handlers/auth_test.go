package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/internal/domain/identity"
)

// stubAuth is a canned AuthService for handler tests.
type stubAuth struct {
	token string
	user  *identity.User
}

func (s *stubAuth) Login(email, password string) (string, *identity.User, error) {
	if s.user != nil && email == s.user.Email && password == "password123" {
		return s.token, s.user, nil
	}
	return "", nil, identity.ErrInvalidCredentials
}

func (s *stubAuth) Verify(token string) (*identity.User, error) {
	if s.user != nil && token == s.token {
		return s.user, nil
	}
	return nil, identity.ErrInvalidToken
}

func newStubAuth() *stubAuth {
	return &stubAuth{
		token: "valid-token",
		user:  &identity.User{ID: "u-1", Email: "demo@trendscope.dev", Name: "Demo User"},
	}
}

func TestAuthHandler_Login(t *testing.T) {
	handler := NewAuthHandler(newStubAuth())

	t.Run("valid credentials", func(t *testing.T) {
		body := `{"email":"demo@trendscope.dev","password":"password123"}`
		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"valid-token"`)
		assert.Contains(t, rec.Body.String(), `"email":"demo@trendscope.dev"`)
		assert.NotContains(t, rec.Body.String(), "PasswordHash")
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"email":"demo@trendscope.dev","password":"wrong"}`
		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{"email":"x"}`))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	auth := newStubAuth()

	protected := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte("hello " + user.Name))
	}))

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello Demo User", rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
