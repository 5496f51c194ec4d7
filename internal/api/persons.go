package api

import (
	"context"
	"net/http"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

func (c *Client) Person(ctx context.Context, id uint) Response[models.Person] {
	return do[models.Person](c, ctx, http.MethodGet, pathPerson(id), nil)
}

func (c *Client) UpdatePerson(ctx context.Context, in models.PersonUpdate) Response[models.Person] {
	return do[models.Person](c, ctx, http.MethodPut, pathPerson(in.ID), in)
}
