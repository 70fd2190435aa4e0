package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clipsmart/clipsmart-web/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenBody = `{
	"access_token": "abc.def.ghi",
	"token_type": "bearer",
	"user": {"id": "u-1", "email": "jane@example.com", "full_name": "Jane Doe", "tier": "free", "is_active": true}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api/v1/", server.Client())
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.LoginRequest{Email: "jane@example.com", Password: "Secret123!"}, req)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tokenBody))
	})

	token, err := client.Login(context.Background(), "jane@example.com", "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token.AccessToken)
	assert.Equal(t, "u-1", token.User.ID)
	assert.Equal(t, "Jane Doe", token.User.DisplayName())
}

func TestRegisterSendsDerivedUsername(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)

		var req model.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.RegisterRequest{
			Email:    "Jane.Doe@example.com",
			Username: "jane_doe",
			Password: "Secret123!",
			FullName: "Jane Doe",
		}, req)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(tokenBody))
	})

	token, err := client.Register(context.Background(), "Jane.Doe@example.com", "Secret123!", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestAPIErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"string detail", http.StatusUnauthorized, `{"detail": "Incorrect email or password"}`, "Incorrect email or password"},
		{"validation list", http.StatusUnprocessableEntity, `{"detail": [{"loc": ["body", "password"], "msg": "Value error, Password must contain at least one digit", "type": "value_error"}]}`, "Password must contain at least one digit"},
		{"no body", http.StatusInternalServerError, ``, ""},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Login(context.Background(), "jane@example.com", "x")

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.PublicMessage())
		})
	}
}

func TestLoginEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Login(context.Background(), "jane@example.com", "x")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestMe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer abc.def.ghi", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id": "u-1", "email": "jane@example.com", "tier": "pro", "monthly_quota_used": 3, "monthly_quota_limit": 50}`))
	})

	user, err := client.Me(context.Background(), "abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, model.TierPro, user.Tier)
	assert.Equal(t, 50, user.MonthlyQuotaLimit)
}

func TestUsernameFromEmail(t *testing.T) {
	assert.Equal(t, "jane_doe", UsernameFromEmail("jane.doe@example.com"))
	assert.Equal(t, "jd_", UsernameFromEmail("jd@example.com"))
	assert.Equal(t, "a_b", UsernameFromEmail("a+b@example.com"))
	assert.Equal(t, "___", UsernameFromEmail("@example.com"))
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Unix(time.Now().Add(time.Hour).Unix(), 0)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	got, err := TokenExpiry(signed)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u-1"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = TokenExpiry(noExp)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}
