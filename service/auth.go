package service

import (
	"context"
	"errors"
	"net/http"

	"kino-cli/model"
)

var errTokenRequired = errors.New("token is required")

func (c *Client) Register(ctx context.Context, payload model.RegisterRequest) (model.AuthResult, error) {
	var result model.AuthResult
	req := request{method: http.MethodPost, path: "/auth/register", body: payload}
	if err := c.doJSON(ctx, req, &result); err != nil {
		return model.AuthResult{}, err
	}
	return result, nil
}

func (c *Client) Login(ctx context.Context, payload model.LoginRequest) (model.AuthResult, error) {
	var result model.AuthResult
	req := request{method: http.MethodPost, path: "/auth/login", body: payload}
	if err := c.doJSON(ctx, req, &result); err != nil {
		return model.AuthResult{}, err
	}
	return result, nil
}

// Me fetches the profile of the token's owner.
func (c *Client) Me(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, errTokenRequired
	}
	var user model.User
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/me", token: token}, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, payload model.ProfileRequest) (model.User, error) {
	if token == "" {
		return model.User{}, errTokenRequired
	}
	var user model.User
	req := request{method: http.MethodPatch, path: "/me", token: token, body: payload}
	if err := c.doJSON(ctx, req, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *Client) ChangePassword(ctx context.Context, token string, payload model.PasswordRequest) error {
	if token == "" {
		return errTokenRequired
	}
	req := request{method: http.MethodPatch, path: "/me/password", token: token, body: payload}
	return c.doJSON(ctx, req, nil)
}
