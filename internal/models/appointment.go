package models

// Formato de fecha usado por la API de GESCOMPH en los payloads de cita.
// El backend no maneja zona horaria, por eso no es RFC3339.
const APITimeLayout = "2006-01-02T15:04:05"

// Appointment llega del backend con las fechas en APITimeLayout.
type Appointment struct {
	ID uint `json:"id"`

	Description      string `json:"description"`
	Observation      string `json:"observation,omitempty"`
	RequestDate      string `json:"requestDate"`
	DateTimeAssigned string `json:"dateTimeAssigned"`
	Active           bool   `json:"active"`

	PersonID   uint   `json:"personId"`
	PersonName string `json:"personName"`
	Phone      string `json:"phone"`

	EstablishmentID   uint   `json:"establishmentId"`
	EstablishmentName string `json:"establishmentName"`
}

// AppointmentCreate es el payload de POST /appointment. Las fechas viajan
// como string (APITimeLayout) porque el backend no acepta zona horaria.
type AppointmentCreate struct {
	Description      string `json:"description"`
	Observation      string `json:"observation,omitempty"`
	RequestDate      string `json:"requestDate"`
	DateTimeAssigned string `json:"dateTimeAssigned"`
	EstablishmentID  uint   `json:"establishmentId"`
	Active           bool   `json:"active"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Document  string `json:"document"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CityID    uint   `json:"cityId"`
}
