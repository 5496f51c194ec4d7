package sandbox

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

type PersonHandler struct {
	store *Store
}

func NewPersonHandler(store *Store) *PersonHandler {
	return &PersonHandler{store: store}
}

func (h *PersonHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}

	person, ok := h.store.person(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Persona no encontrada"})
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}

	var req models.PersonUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}
	req.ID = uint(id)

	// solo la propia ficha
	if v, exists := c.Get(ContextPersonID); exists {
		if v.(uint) != req.ID {
			c.JSON(http.StatusForbidden, gin.H{"message": "No puede editar otra persona"})
			return
		}
	}

	person, ok := h.store.updatePerson(req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Persona no encontrada"})
		return
	}
	c.JSON(http.StatusOK, person)
}
