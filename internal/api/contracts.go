package api

import (
	"context"
	"net/http"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

func (c *Client) MyContracts(ctx context.Context) Response[[]models.Contract] {
	return do[[]models.Contract](c, ctx, http.MethodGet, pathContractsMine, nil)
}

func (c *Client) Contract(ctx context.Context, id uint) Response[models.Contract] {
	return do[models.Contract](c, ctx, http.MethodGet, pathContract(id), nil)
}

func (c *Client) ContractObligations(ctx context.Context, id uint) Response[[]models.ContractObligation] {
	return do[[]models.ContractObligation](c, ctx, http.MethodGet, pathContractObligations(id), nil)
}

func (c *Client) ContractMetrics(ctx context.Context) Response[models.ContractMetrics] {
	return do[models.ContractMetrics](c, ctx, http.MethodGet, pathContractMetrics, nil)
}

// ObligationCheckout pide al backend iniciar el pago de una obligación;
// la pasarela vive del lado del servidor, aquí solo vuelve la URL.
func (c *Client) ObligationCheckout(ctx context.Context, obligationID uint) Response[models.Checkout] {
	return do[models.Checkout](c, ctx, http.MethodPost, pathObligationCheckout(obligationID), nil)
}
