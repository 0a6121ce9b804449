package api

import (
	"context"
	"net/http"
)

// Credentials is the login/register request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. No token required.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := Credentials{Email: email, Password: password}

	var resp TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. No token required; log in afterwards.
func (c *Client) Register(ctx context.Context, email, password string) error {
	body := Credentials{Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/auth/register", nil, body, nil, false)
}
