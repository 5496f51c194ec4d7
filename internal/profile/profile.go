// Package profile edita los datos personales del usuario autenticado,
// incluido el selector departamento → ciudad.
package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/gescomph/gescomph-mobile/internal/api"
	"github.com/gescomph/gescomph-mobile/internal/httperr"
	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/session"
)

type Editor struct {
	api     *api.Client
	session *session.Session
	log     *zap.Logger
}

func NewEditor(client *api.Client, sess *session.Session, log *zap.Logger) *Editor {
	return &Editor{api: client, session: sess, log: log}
}

// Load trae la ficha del usuario de la sesión actual.
func (e *Editor) Load(ctx context.Context) (models.Person, error) {
	personID, err := e.session.PersonID()
	if err != nil {
		return models.Person{}, err
	}

	res := e.api.Person(ctx, personID)
	if !res.Success {
		e.log.Warn("profile load failed",
			zap.Uint("person_id", personID),
			zap.String("message", res.Message),
		)
		return models.Person{}, httperr.ErrBusiness("person_not_found")
	}
	return res.Data, nil
}

func (e *Editor) Departments(ctx context.Context) ([]models.Department, error) {
	res := e.api.Departments(ctx)
	if !res.Success {
		return nil, httperr.ErrBusiness("departments_unavailable")
	}
	return res.Data, nil
}

func (e *Editor) CitiesByDepartment(ctx context.Context, departmentID uint) ([]models.City, error) {
	res := e.api.CitiesByDepartment(ctx, departmentID)
	if !res.Success {
		return nil, httperr.ErrBusiness("cities_unavailable")
	}
	return res.Data, nil
}

func (e *Editor) City(ctx context.Context, id uint) (models.City, error) {
	res := e.api.City(ctx, id)
	if !res.Success {
		return models.City{}, httperr.ErrBusiness("city_not_found")
	}
	return res.Data, nil
}

// Save valida localmente y envía la actualización. La validación local
// nunca genera tráfico de red.
func (e *Editor) Save(ctx context.Context, in models.PersonUpdate) error {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		in.CityID == 0 {
		return httperr.ErrBusiness("campos_obligatorios")
	}

	res := e.api.UpdatePerson(ctx, in)
	if !res.Success {
		return httperr.ErrBusiness(res.Message)
	}
	return nil
}
