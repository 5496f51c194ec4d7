package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gescomph/gescomph-mobile/internal/api"
	"github.com/gescomph/gescomph-mobile/internal/diag"
	"github.com/gescomph/gescomph-mobile/internal/httperr"
	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/session"
	"github.com/gescomph/gescomph-mobile/internal/timezone"
)

// Phase es el estado del formulario de agendamiento. Modelarlo explícito
// evita combinaciones inválidas de banderas sueltas (hora elegida sin
// lista de horas, envío doble, etc.).
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseDateSelected  Phase = "date_selected"
	PhaseSlotListReady Phase = "slot_list_ready"
	PhaseSlotSelected  Phase = "slot_selected"
	PhaseSubmitting    Phase = "submitting"
	PhaseSucceeded     Phase = "succeeded"
	PhaseFailed        Phase = "failed"
)

// Mensajes que ve el usuario, en el idioma de la app.
const (
	MsgMissingFields = "Por favor complete todos los campos obligatorios"
	MsgSubmitFailed  = "Error al agendar la cita"
	MsgSubmitOK      = "Cita agendada correctamente"
)

// FormController maneja de punta a punta el agendamiento de una cita para
// un establecimiento: precarga de datos personales, selección de fecha,
// cálculo de horas libres, selección de hora y envío.
type FormController struct {
	mu sync.Mutex

	api     *api.Client
	session *session.Session
	slots   *Availability
	diag    *diag.Dispatcher
	log     *zap.Logger

	establishment models.Establishment

	phase        Phase
	draft        models.AppointmentCreate
	requestDate  time.Time
	selectedDate time.Time
	selectedSlot string
	available    []string

	now func() time.Time
}

func NewFormController(
	client *api.Client,
	sess *session.Session,
	dispatcher *diag.Dispatcher,
	log *zap.Logger,
	establishment models.Establishment,
) *FormController {
	f := &FormController{
		api:           client,
		session:       sess,
		slots:         NewAvailability(client, log),
		diag:          dispatcher,
		log:           log,
		establishment: establishment,
		now:           timezone.Now,
	}
	f.resetLocked()
	return f
}

// Snapshot es la vista inmutable del estado, para la UI y para pruebas.
type Snapshot struct {
	Phase        Phase
	Draft        models.AppointmentCreate
	SelectedDate time.Time
	SelectedSlot string
	Available    []string
}

func (f *FormController) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Phase:        f.phase,
		Draft:        f.draft,
		SelectedDate: f.selectedDate,
		SelectedSlot: f.selectedSlot,
		Available:    append([]string(nil), f.available...),
	}
}

// Start precarga los datos del solicitante desde la sesión. Cualquier
// falla deja los campos en blanco y la cita sigue siendo agendable.
func (f *FormController) Start(ctx context.Context) {
	personID, err := f.session.PersonID()
	if err != nil {
		f.log.Warn("booking prefill skipped", zap.Error(err))
		return
	}

	res := f.api.Person(ctx, personID)
	if !res.Success {
		f.log.Warn("booking prefill fetch failed",
			zap.Uint("person_id", personID),
			zap.String("message", res.Message),
		)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	person := res.Data
	f.draft.FirstName = person.FirstName
	f.draft.LastName = person.LastName
	f.draft.Document = person.Document
	f.draft.Address = person.Address
	f.draft.Email = person.Email
	f.draft.Phone = person.Phone
	if person.CityID != 0 {
		f.draft.CityID = person.CityID
	}
}

func (f *FormController) SetDescription(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Description = text
}

func (f *FormController) SetObservation(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Observation = text
}

// SelectDate fija la fecha, limpia la hora elegida y dispara el cálculo
// de disponibilidad. La respuesta queda etiquetada con la fecha para la
// que se pidió: si el usuario cambió de fecha mientras tanto, se descarta.
func (f *FormController) SelectDate(ctx context.Context, date time.Time) {
	f.mu.Lock()
	f.phase = PhaseDateSelected
	f.selectedDate = date
	f.selectedSlot = ""
	f.available = nil
	f.mu.Unlock()

	free := f.slots.FreeSlots(ctx, date, f.establishment.ID)
	f.applyAvailability(date, free)
}

func (f *FormController) applyAvailability(forDate time.Time, free []string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !sameDay(f.selectedDate, forDate) {
		// respuesta tardía de una fecha ya reemplazada
		f.log.Debug("stale availability discarded",
			zap.Time("for_date", forDate),
			zap.Time("selected", f.selectedDate),
		)
		return
	}

	f.available = free
	f.phase = PhaseSlotListReady
}

// SelectSlot toma una hora de la lista de disponibles, arma la fecha-hora
// concreta y le aplica la corrección UTC-5 antes de guardarla en el
// borrador como dateTimeAssigned.
func (f *FormController) SelectSlot(slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseSlotListReady && f.phase != PhaseSlotSelected && f.phase != PhaseFailed {
		return httperr.ErrBusiness("no_slot_list")
	}

	found := false
	for _, s := range f.available {
		if s == slot {
			found = true
			break
		}
	}
	if !found {
		return httperr.ErrBusiness("slot_not_available")
	}

	clock, err := time.Parse("15:04", slot)
	if err != nil {
		return httperr.ErrBusiness("slot_not_available")
	}

	assigned := time.Date(
		f.selectedDate.Year(), f.selectedDate.Month(), f.selectedDate.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		f.selectedDate.Location(),
	)
	assigned = timezone.ShiftAssigned(assigned)

	f.selectedSlot = slot
	f.draft.DateTimeAssigned = assigned.Format(models.APITimeLayout)
	f.phase = PhaseSlotSelected
	return nil
}

// Submit valida y envía la cita. Las validaciones locales nunca llegan a
// la red. En éxito el formulario vuelve a su estado inicial; en falla se
// queda en la hora elegida para reintentar sin re-digitar nada.
func (f *FormController) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.phase == PhaseSubmitting {
		f.mu.Unlock()
		return httperr.ErrBusiness("submit_in_flight")
	}

	if strings.TrimSpace(f.draft.Description) == "" ||
		f.selectedDate.IsZero() ||
		f.selectedSlot == "" {
		f.mu.Unlock()
		return httperr.ErrBusiness(MsgMissingFields)
	}

	f.phase = PhaseSubmitting
	payload := f.draft
	payload.RequestDate = f.requestDate.Format(models.APITimeLayout)
	f.mu.Unlock()

	res := f.api.CreateAppointment(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()

	if !res.Success {
		message := res.Message
		if message == "" {
			message = MsgSubmitFailed
		}
		f.diag.Dispatch(diag.Event{
			Action:   "appointment_submit_failed",
			Entity:   "appointment",
			Metadata: map[string]any{"message": message},
		})
		// la fecha y la hora elegidas se conservan para reintentar
		f.phase = PhaseFailed
		return httperr.ErrBusiness(message)
	}

	created := res.Data
	f.diag.Dispatch(diag.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	f.resetLocked()
	f.phase = PhaseSucceeded
	return nil
}

// Reset devuelve el formulario a su estado inicial en blanco.
func (f *FormController) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *FormController) resetLocked() {
	f.phase = PhaseIdle
	f.requestDate = f.now()
	f.selectedDate = time.Time{}
	f.selectedSlot = ""
	f.available = nil
	f.draft = models.AppointmentCreate{
		EstablishmentID: f.establishment.ID,
		Active:          true,
		CityID:          1,
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
