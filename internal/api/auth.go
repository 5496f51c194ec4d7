package api

import (
	"context"
	"net/http"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

func (c *Client) Login(ctx context.Context, in models.LoginRequest) Response[models.LoginResponse] {
	return do[models.LoginResponse](c, ctx, http.MethodPost, pathLogin, in)
}

func (c *Client) Logout(ctx context.Context) Response[struct{}] {
	return do[struct{}](c, ctx, http.MethodPost, pathLogout, nil)
}
