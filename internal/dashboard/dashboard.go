// Package dashboard arma el resumen del usuario: métricas y contratos
// propios más sus citas. Cada bloque degrada por separado si su llamada
// falla; el tablero nunca se cae completo por una consulta.
package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/gescomph/gescomph-mobile/internal/api"
	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/session"
)

type Summary struct {
	Metrics      models.ContractMetrics
	Contracts    []models.Contract
	Appointments []models.Appointment
}

type Loader struct {
	api     *api.Client
	session *session.Session
	log     *zap.Logger
}

func NewLoader(client *api.Client, sess *session.Session, log *zap.Logger) *Loader {
	return &Loader{api: client, session: sess, log: log}
}

func (l *Loader) Load(ctx context.Context) (Summary, error) {
	personID, err := l.session.PersonID()
	if err != nil {
		return Summary{}, err
	}

	var out Summary

	if res := l.api.ContractMetrics(ctx); res.Success {
		out.Metrics = res.Data
	} else {
		l.log.Warn("dashboard metrics unavailable", zap.String("message", res.Message))
	}

	if res := l.api.MyContracts(ctx); res.Success {
		out.Contracts = res.Data
	} else {
		l.log.Warn("dashboard contracts unavailable", zap.String("message", res.Message))
	}

	if res := l.api.AppointmentsByPerson(ctx, personID); res.Success {
		out.Appointments = res.Data
	} else {
		l.log.Warn("dashboard appointments unavailable",
			zap.Uint("person_id", personID),
			zap.String("message", res.Message),
		)
	}

	return out, nil
}
