package api

import (
	"context"
	"net/http"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

func (c *Client) Establishments(ctx context.Context) Response[[]models.Establishment] {
	return do[[]models.Establishment](c, ctx, http.MethodGet, pathEstablishments, nil)
}

func (c *Client) Establishment(ctx context.Context, id uint) Response[models.Establishment] {
	return do[models.Establishment](c, ctx, http.MethodGet, pathEstablishment(id), nil)
}

func (c *Client) CreateEstablishment(ctx context.Context, in models.EstablishmentCreate) Response[models.Establishment] {
	return do[models.Establishment](c, ctx, http.MethodPost, pathEstablishments, in)
}

func (c *Client) Plazas(ctx context.Context) Response[[]models.Plaza] {
	return do[[]models.Plaza](c, ctx, http.MethodGet, pathPlazas, nil)
}
