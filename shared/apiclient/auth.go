package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnsphere-dev/learnsphere/shared/api"
)

// Register creates an account. The response echoes the public fields of the
// new user.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	resp, err := c.call(ctx, http.MethodPost, "/register/", req, "")
	if err != nil {
		return nil, err
	}
	var user api.User
	if err := resp.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode register response: %w", err)
	}
	return &user, nil
}

// Login exchanges credentials for an access/refresh token pair. The tokens are
// returned to the caller and not kept anywhere.
func (c *Client) Login(ctx context.Context, username, password string) (*api.TokenPair, error) {
	resp, err := c.call(ctx, http.MethodPost, "/login/", api.LoginRequest{Username: username, Password: password}, "")
	if err != nil {
		return nil, err
	}
	var pair api.TokenPair
	if err := resp.Decode(&pair); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return &pair, nil
}

// RefreshToken trades a refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	resp, err := c.call(ctx, http.MethodPost, "/token/refresh/", api.RefreshRequest{Refresh: refresh}, "")
	if err != nil {
		return "", err
	}
	var pair api.TokenPair
	if err := resp.Decode(&pair); err != nil {
		return "", fmt.Errorf("failed to decode refresh response: %w", err)
	}
	return pair.Access, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*api.User, error) {
	var user api.User
	if err := c.fetch(ctx, "/profile/", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Badges(ctx context.Context, token string) ([]api.Badge, error) {
	return fetchList[api.Badge](ctx, c, "/badges/", token)
}

func (c *Client) MyBadges(ctx context.Context, token string) ([]api.UserBadge, error) {
	return fetchList[api.UserBadge](ctx, c, "/my-badges/", token)
}
