package api

import (
	"context"
	"net/http"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

func (c *Client) Appointments(ctx context.Context) Response[[]models.Appointment] {
	return do[[]models.Appointment](c, ctx, http.MethodGet, pathAppointments, nil)
}

// AppointmentsByDate trae todas las citas del día, de cualquier
// establecimiento; el filtro por establecimiento es del cliente.
func (c *Client) AppointmentsByDate(ctx context.Context, date string) Response[[]models.Appointment] {
	return do[[]models.Appointment](c, ctx, http.MethodGet, pathAppointmentsByDate(date), nil)
}

func (c *Client) AppointmentsByPerson(ctx context.Context, personID uint) Response[[]models.Appointment] {
	return do[[]models.Appointment](c, ctx, http.MethodGet, pathAppointmentsByPerson(personID), nil)
}

func (c *Client) CreateAppointment(ctx context.Context, in models.AppointmentCreate) Response[models.Appointment] {
	return do[models.Appointment](c, ctx, http.MethodPost, pathAppointments, in)
}
