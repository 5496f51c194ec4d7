// Package session guarda la identidad del usuario autenticado: el bearer
// token crudo y el person_id que se lee de sus claims. La lectura de claims
// no verifica la firma; la autorización real siempre la decide el backend
// con el token completo.
package session

import (
	"errors"
	"strconv"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrNoIdentity = errors.New("session: no identity")

type Session struct {
	mu    sync.RWMutex
	token string
	log   *zap.Logger
}

func New(log *zap.Logger) *Session {
	return &Session{log: log}
}

// Login fija el token de la sesión. Único escritor junto con Logout.
func (s *Session) Login(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Active() bool {
	return s.Token() != ""
}

// PersonID decodifica el claim person_id del token sin validar la firma.
// Falla cerrado: token ausente, malformado o sin claim devuelven
// ErrNoIdentity en vez de una identidad parcial.
func (s *Session) PersonID() (uint, error) {
	token := s.Token()
	if token == "" {
		return 0, ErrNoIdentity
	}

	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		s.log.Warn("session token decode failed", zap.Error(err))
		return 0, ErrNoIdentity
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrNoIdentity
	}

	switch v := claims["person_id"].(type) {
	case float64:
		if v <= 0 {
			return 0, ErrNoIdentity
		}
		return uint(v), nil
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			s.log.Warn("session person_id claim malformed", zap.String("claim", v))
			return 0, ErrNoIdentity
		}
		return uint(n), nil
	default:
		return 0, ErrNoIdentity
	}
}
