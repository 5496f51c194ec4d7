package diag

import "go.uber.org/zap"

// Event es un hecho de negocio observado en el cliente (cita creada,
// envío rechazado, sesión iniciada). Solo sirve para diagnóstico.
type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		fields := []zap.Field{
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
		}
		if ev.EntityID != nil {
			fields = append(fields, zap.Uint("entity_id", *ev.EntityID))
		}
		if ev.Metadata != nil {
			fields = append(fields, zap.Any("metadata", ev.Metadata))
		}
		d.log.Info("event", fields...)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// encolado
	default:
		// cola llena → descartamos el evento, nunca frenar la app
		d.log.Warn("event queue full, dropping event", zap.String("action", ev.Action))
	}
}

func (d *Dispatcher) Close() {
	close(d.queue)
}
