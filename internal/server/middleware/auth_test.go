package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct{ userID string }

func (c stubClaims) GetUserID() string { return c.userID }

type stubValidator struct {
	validateFunc func(token string) (UserIDGetter, error)
}

func (v stubValidator) ValidateToken(token string) (UserIDGetter, error) {
	return v.validateFunc(token)
}

func TestAuth_ValidToken(t *testing.T) {
	validator := stubValidator{validateFunc: func(token string) (UserIDGetter, error) {
		require.Equal(t, "good-token", token)
		return stubClaims{userID: "user-42"}, nil
	}}

	var gotUserID string
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/users/abc/badges/calculate", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", gotUserID)
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := stubValidator{validateFunc: func(string) (UserIDGetter, error) {
		return nil, errors.New("expired")
	}}

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/users/abc/badges/calculate", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired")
}

func TestAuth_MissingHeader(t *testing.T) {
	validator := stubValidator{validateFunc: func(string) (UserIDGetter, error) {
		t.Fatal("validator must not run")
		return nil, nil
	}}

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodPost, "/users/abc/badges/calculate", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}
