package backendapi

import (
	"context"
	"errors"
	"net/http"
)

// ErrNoTokenIssued is returned when login succeeds without a token in the response.
var ErrNoTokenIssued = errors.New("backend login returned no token")

type loginRequest struct {
	Username string `json:"username"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResult is the backend's login response.
type LoginResult struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var res LoginResult
	req := loginRequest{Username: username, Login: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", req, &res); err != nil {
		return LoginResult{}, err
	}
	if res.Token == "" {
		return LoginResult{}, ErrNoTokenIssued
	}
	return res, nil
}
