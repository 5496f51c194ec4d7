package api

import (
	"fmt"
	"net/url"
)

// Rutas del backend de GESCOMPH. La casing mixta (/Appointment/GetByDate
// junto a /appointment) es la que expone el servidor real.
const (
	pathLogin           = "/auth/login"
	pathLogout          = "/auth/logout"
	pathAppointments    = "/appointment"
	pathEstablishments  = "/establishments"
	pathPlazas          = "/plazas"
	pathContractsMine   = "/contract/mine"
	pathContractMetrics = "/contract/metrics"
	pathDepartments     = "/department"
)

func pathAppointmentsByDate(date string) string {
	return "/Appointment/GetByDate?date=" + url.QueryEscape(date)
}

func pathAppointmentsByPerson(personID uint) string {
	return fmt.Sprintf("/Appointment/GetByPersonId?personId=%d", personID)
}

func pathEstablishment(id uint) string {
	return fmt.Sprintf("%s/%d", pathEstablishments, id)
}

func pathPerson(id uint) string {
	return fmt.Sprintf("/person/%d", id)
}

func pathContract(id uint) string {
	return fmt.Sprintf("/contract/%d", id)
}

func pathContractObligations(id uint) string {
	return fmt.Sprintf("/contract/%d/obligations", id)
}

func pathObligationCheckout(id uint) string {
	return fmt.Sprintf("/contract/obligation/%d/checkout", id)
}

func pathNotificationFeed(userID uint) string {
	return fmt.Sprintf("/notification/feed/%d", userID)
}

func pathNotificationUnread(userID uint) string {
	return fmt.Sprintf("/notification/unread/%d", userID)
}

func pathNotificationRead(id uint) string {
	return fmt.Sprintf("/notification/%d/read", id)
}

func pathNotificationReadAll(userID uint) string {
	return fmt.Sprintf("/notification/read-all/%d", userID)
}

func pathCity(id uint) string {
	return fmt.Sprintf("/city/%d", id)
}

func pathCitiesByDepartment(departmentID uint) string {
	return fmt.Sprintf("/city/by-department/%d", departmentID)
}
