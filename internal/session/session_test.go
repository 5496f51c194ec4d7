package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func tokenWithClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestPersonID_NumericClaim(t *testing.T) {
	s := New(zap.NewNop())
	s.Login(tokenWithClaims(t, jwt.MapClaims{
		"sub":       "maria@example.com",
		"person_id": 5,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}))

	id, err := s.PersonID()
	if err != nil {
		t.Fatalf("PersonID: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected 5, got %d", id)
	}
}

func TestPersonID_StringClaim(t *testing.T) {
	s := New(zap.NewNop())
	s.Login(tokenWithClaims(t, jwt.MapClaims{"person_id": "12"}))

	id, err := s.PersonID()
	if err != nil {
		t.Fatalf("PersonID: %v", err)
	}
	if id != 12 {
		t.Fatalf("expected 12, got %d", id)
	}
}

func TestPersonID_FailsClosed(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"sin token", ""},
		{"no es un jwt", "esto-no-es-un-token"},
		{"sin claim", tokenWithClaims(t, jwt.MapClaims{"sub": "x"})},
		{"claim en cero", tokenWithClaims(t, jwt.MapClaims{"person_id": 0})},
		{"claim negativo", tokenWithClaims(t, jwt.MapClaims{"person_id": -3})},
		{"claim no numérico", tokenWithClaims(t, jwt.MapClaims{"person_id": "abc"})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(zap.NewNop())
			if tc.token != "" {
				s.Login(tc.token)
			}

			if _, err := s.PersonID(); !errors.Is(err, ErrNoIdentity) {
				t.Fatalf("expected ErrNoIdentity, got %v", err)
			}
		})
	}
}

func TestLoginLogoutLifecycle(t *testing.T) {
	s := New(zap.NewNop())

	if s.Active() {
		t.Fatal("new session must be inactive")
	}

	s.Login("token-abc")
	if !s.Active() || s.Token() != "token-abc" {
		t.Fatalf("login did not stick: %q", s.Token())
	}

	s.Logout()
	if s.Active() || s.Token() != "" {
		t.Fatal("logout must clear the token")
	}
	if _, err := s.PersonID(); !errors.Is(err, ErrNoIdentity) {
		t.Fatal("identity must vanish with the token")
	}
}
