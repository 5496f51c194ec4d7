package sandbox

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/validators"
)

type AuthHandler struct {
	store  *Store
	secret string
}

func NewAuthHandler(store *Store, secret string) *AuthHandler {
	return &AuthHandler{store: store, secret: secret}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}

	if !validators.IsEmailFormatValid(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Correo electrónico inválido"})
		return
	}

	u, ok := h.store.findUser(req.Email)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas"})
		return
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	token, err := h.generateToken(u, expiresAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No fue posible generar el token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		IsSuccess:   true,
		Message:     "Inicio de sesión exitoso",
		AccessToken: token,
		ExpiresAt:   expiresAt.Format(models.APITimeLayout),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// sin estado de sesión en el servidor; el cliente descarta su token
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) generateToken(u user, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":       u.ID,
		"person_id": u.PersonID,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secret))
}
