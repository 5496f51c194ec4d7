package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gescomph/gescomph-mobile/internal/api"
	"github.com/gescomph/gescomph-mobile/internal/models"
)

// Catálogo fijo de horas agendables: banda de mañana y banda de tarde.
// Es el universo completo de valores posibles para una cita.
var SlotCatalog = []string{
	"08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:30", "15:00", "15:30", "16:00", "16:30",
}

const dateLayout = "2006-01-02"

// Availability calcula qué horas del catálogo siguen libres para un
// establecimiento en una fecha, restando las citas activas ya agendadas.
type Availability struct {
	api *api.Client
	log *zap.Logger
}

func NewAvailability(client *api.Client, log *zap.Logger) *Availability {
	return &Availability{api: client, log: log}
}

// FreeSlots consulta las citas del día (el servidor filtra solo por fecha),
// descarta las de otros establecimientos y devuelve catálogo − ocupadas,
// en el orden del catálogo y sin duplicados.
//
// Si la consulta falla o no trae datos se devuelve el catálogo completo:
// el agendamiento queda abierto y el conflicto lo resuelve el servidor.
func (a *Availability) FreeSlots(ctx context.Context, date time.Time, establishmentID uint) []string {
	dateStr := date.Format(dateLayout)

	res := a.api.AppointmentsByDate(ctx, dateStr)
	if !res.Success {
		a.log.Warn("availability fetch failed, offering full catalog",
			zap.String("date", dateStr),
			zap.Uint("establishment_id", establishmentID),
			zap.String("message", res.Message),
		)
		return catalogCopy()
	}
	if len(res.Data) == 0 {
		return catalogCopy()
	}

	occupied := make(map[string]struct{}, len(res.Data))
	for _, ap := range res.Data {
		if !ap.Active || ap.EstablishmentID != establishmentID {
			continue
		}
		if hm, ok := assignedClock(ap.DateTimeAssigned); ok {
			occupied[hm] = struct{}{}
		}
	}

	free := make([]string, 0, len(SlotCatalog))
	for _, slot := range SlotCatalog {
		if _, taken := occupied[slot]; !taken {
			free = append(free, slot)
		}
	}
	return free
}

// assignedClock extrae la hora HH:MM de un dateTimeAssigned del backend.
func assignedClock(raw string) (string, bool) {
	for _, layout := range []string{models.APITimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

func catalogCopy() []string {
	return append([]string(nil), SlotCatalog...)
}
