package validators

import "testing"

// Solo se prueba la validación de forma: la de dominio depende de DNS.
func TestIsEmailFormatValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"maria@example.com", true},
		{"a.b+c@sub.dominio.co", true},
		{"", false},
		{"sin-arroba.com", false},
		{"@example.com", false},
		{"maria@", false},
		{"maria@sindominio", false},
		{"con espacio@example.com", false},
	}

	for _, tc := range cases {
		if got := IsEmailFormatValid(tc.email); got != tc.want {
			t.Errorf("IsEmailFormatValid(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
