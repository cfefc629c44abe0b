package makuwro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type sessionBody struct {
	Token string `json:"token"`
}

// CreateSession authenticates with a username and password and returns the
// session token. The token is also stored on the client, so subsequent calls
// are authenticated without reconstruction. Wrong credentials surface as
// ErrBadCredentials.
func (c *Client) CreateSession(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("session creation requires a username and password: %w", ErrMissingArgument)
	}

	headers := map[string]string{
		"username": username,
		"password": password,
	}

	raw, err := c.request(ctx, http.MethodPost, "accounts/user/sessions", headers, nil, "", true)
	if err != nil {
		return "", err
	}

	var session sessionBody
	if err := json.Unmarshal(raw, &session); err != nil {
		return "", fmt.Errorf("failed to parse session response: %w", err)
	}

	c.token = session.Token
	return session.Token, nil
}

// DeleteSession revokes a session token. An empty token revokes the client's
// own session; when the revoked token is the client's own, it is cleared.
func (c *Client) DeleteSession(ctx context.Context, token string) error {
	own := token == "" || token == c.token
	if token == "" {
		token = c.token
	}
	if token == "" {
		return fmt.Errorf("no session token to revoke: %w", ErrUnauthenticated)
	}

	headers := map[string]string{"token": token}
	if _, err := c.request(ctx, http.MethodDelete, "accounts/user/sessions", headers, nil, "", false); err != nil {
		return err
	}

	if own {
		c.token = ""
	}
	return nil
}
