package api

import (
	"context"
	"net/http"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

func (c *Client) City(ctx context.Context, id uint) Response[models.City] {
	return do[models.City](c, ctx, http.MethodGet, pathCity(id), nil)
}

func (c *Client) CitiesByDepartment(ctx context.Context, departmentID uint) Response[[]models.City] {
	return do[[]models.City](c, ctx, http.MethodGet, pathCitiesByDepartment(departmentID), nil)
}

func (c *Client) Departments(ctx context.Context) Response[[]models.Department] {
	return do[[]models.Department](c, ctx, http.MethodGet, pathDepartments, nil)
}
