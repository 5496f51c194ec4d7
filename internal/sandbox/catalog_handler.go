package sandbox

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

// CatalogHandler sirve lo navegable sin autenticación: establecimientos,
// plazas y la división política para el selector de ciudad.
type CatalogHandler struct {
	store *Store
}

func NewCatalogHandler(store *Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) ListEstablishments(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.allEstablishments())
}

func (h *CatalogHandler) GetEstablishment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}

	est, ok := h.store.establishment(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Establecimiento no encontrado"})
		return
	}
	c.JSON(http.StatusOK, est)
}

func (h *CatalogHandler) CreateEstablishment(c *gin.Context) {
	var req models.EstablishmentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}
	if req.Name == "" || req.PlazaID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nombre y plaza son obligatorios"})
		return
	}
	c.JSON(http.StatusCreated, h.store.createEstablishment(req))
}

func (h *CatalogHandler) ListPlazas(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.allPlazas())
}

func (h *CatalogHandler) GetCity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}

	city, ok := h.store.cityByID(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ciudad no encontrada"})
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *CatalogHandler) ListCitiesByDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}
	c.JSON(http.StatusOK, h.store.citiesByDepartment(uint(id)))
}

func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.allDepartments())
}
