package timezone

import "time"

const DefaultTimezone = "America/Bogota"

// Desfase fijo que espera el backend de GESCOMPH: la hora asignada de una
// cita viaja corregida a UTC restando 5 horas (Colombia, UTC-5).
const AssignedOffset = -5 * time.Hour

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// ShiftAssigned aplica la corrección UTC-5 a la hora local elegida antes
// de usarla como dateTimeAssigned.
func ShiftAssigned(t time.Time) time.Time {
	return t.Add(AssignedOffset)
}
