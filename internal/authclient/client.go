package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/clipsmart/clipsmart-web/model"
)

// NewHTTPClient returns a client with bounded dial, handshake and request timeouts.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// Client talks to the backend auth endpoints. Each call is a single attempt.
type Client struct {
	baseURL string
	client  *http.Client
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		blob, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(blob)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode >= 400 {
		return &APIError{StatusCode: res.StatusCode, Detail: parseDetail(respBody)}
	}
	if len(respBody) == 0 {
		return ErrEmptyResponse
	}
	return json.Unmarshal(respBody, out)
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.Token, error) {
	var token model.Token
	req := model.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, ErrEmptyResponse
	}
	return &token, nil
}

func (c *Client) Register(ctx context.Context, email, password, fullName string) (*model.Token, error) {
	var token model.Token
	req := model.RegisterRequest{
		Email:    email,
		Username: UsernameFromEmail(email),
		Password: password,
		FullName: fullName,
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, ErrEmptyResponse
	}
	return &token, nil
}

// Me fetches the account behind accessToken.
func (c *Client) Me(ctx context.Context, accessToken string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameFromEmail derives a username from the email local part, keeping
// only characters the backend accepts and padding to its minimum length.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	var sb strings.Builder
	for _, r := range strings.ToLower(local) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			sb.WriteRune(r)
		case r == '.' || r == '+':
			sb.WriteRune('_')
		}
	}
	username := sb.String()
	for len(username) < 3 {
		username += "_"
	}
	if len(username) > 50 {
		username = username[:50]
	}
	return username
}

// NewClient builds a client for apiBaseURL, for example "http://localhost:8000/api/v1".
func NewClient(apiBaseURL string, client *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(apiBaseURL, "/"),
		client:  client,
	}
}
