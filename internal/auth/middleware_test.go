package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, exp time.Time) string {
	claims := jwt.MapClaims{
		"staff_id": 1,
		"email":    "staff@example.com",
		"exp":      exp.Unix(),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func callMiddleware(t *testing.T, authorization string) *httptest.ResponseRecorder {
	t.Setenv("JWT_SECRET", testSecret)

	handler := StaffAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestStaffAuthMiddlewareValidToken(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(time.Hour))
	rec := callMiddleware(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStaffAuthMiddlewareMissingHeader(t *testing.T) {
	rec := callMiddleware(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffAuthMiddlewareWrongSecret(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, "other-secret", time.Now().Add(time.Hour))
	rec := callMiddleware(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffAuthMiddlewareExpiredToken(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(-time.Minute))
	rec := callMiddleware(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
