package timezone

import (
	"testing"
	"time"
)

func TestShiftAssigned(t *testing.T) {
	local := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	shifted := ShiftAssigned(local)
	if got := shifted.Format("2006-01-02T15:04:05"); got != "2025-03-10T04:00:00" {
		t.Fatalf("expected 09:00 to shift to 04:00, got %s", got)
	}

	// la corrección cruza la medianoche hacia el día anterior
	early := time.Date(2025, time.March, 10, 2, 30, 0, 0, time.UTC)
	if got := ShiftAssigned(early).Format("2006-01-02T15:04:05"); got != "2025-03-09T21:30:00" {
		t.Fatalf("expected midnight crossing, got %s", got)
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		tz   string
		want bool
	}{
		{"America/Bogota", true},
		{"America/Sao_Paulo", true},
		{"UTC", true},
		{"", false},
		{"Marte/Olympus", false},
	}
	for _, tc := range cases {
		if got := IsValid(tc.tz); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.tz, got, tc.want)
		}
	}
}

func TestLocationFallsBackToDefault(t *testing.T) {
	if loc := Location("Marte/Olympus"); loc.String() != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, loc)
	}
	if loc := Location("UTC"); loc.String() != "UTC" {
		t.Fatalf("expected UTC passthrough, got %s", loc)
	}
}
