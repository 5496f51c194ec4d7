package sandbox

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/timezone"
)

type AppointmentHandler struct {
	store *Store
}

func NewAppointmentHandler(store *Store) *AppointmentHandler {
	return &AppointmentHandler{store: store}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.allAppointments())
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Fecha inválida, use YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, h.store.appointmentsByDate(date))
}

func (h *AppointmentHandler) ListByPerson(c *gin.Context) {
	personID, err := strconv.ParseUint(c.Query("personId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "personId inválido"})
		return
	}
	c.JSON(http.StatusOK, h.store.appointmentsByPerson(uint(personID)))
}

// Create recibe el payload con dateTimeAssigned ya corrido a UTC-5 por el
// cliente; aquí se vuelve a hora local de Colombia para almacenarlo y
// servirlo, que es como lo entrega el backend real.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req models.AppointmentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}

	if req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "La descripción es obligatoria"})
		return
	}

	assigned, err := time.Parse(models.APITimeLayout, req.DateTimeAssigned)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "dateTimeAssigned inválido"})
		return
	}
	local := assigned.Add(-timezone.AssignedOffset)

	est, ok := h.store.establishment(req.EstablishmentID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Establecimiento no encontrado"})
		return
	}

	requestDate := req.RequestDate
	if requestDate == "" {
		requestDate = time.Now().Format(models.APITimeLayout)
	}

	personID := uint(0)
	if v, exists := c.Get(ContextPersonID); exists {
		personID = v.(uint)
	}

	ap := models.Appointment{
		Description:       req.Description,
		Observation:       req.Observation,
		RequestDate:       requestDate,
		DateTimeAssigned:  local.Format(models.APITimeLayout),
		Active:            req.Active,
		PersonID:          personID,
		PersonName:        req.FirstName + " " + req.LastName,
		Phone:             req.Phone,
		EstablishmentID:   est.ID,
		EstablishmentName: est.Name,
	}

	created, ok := h.store.createAppointment(ap)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"message": "El horario seleccionado ya no está disponible"})
		return
	}

	c.JSON(http.StatusCreated, created)
}
