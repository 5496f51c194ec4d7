package sandbox

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

type ContractHandler struct {
	store *Store
}

func NewContractHandler(store *Store) *ContractHandler {
	return &ContractHandler{store: store}
}

func (h *ContractHandler) Mine(c *gin.Context) {
	personID := c.MustGet(ContextPersonID).(uint)
	c.JSON(http.StatusOK, h.store.contractsByPerson(personID))
}

func (h *ContractHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}

	contract, ok := h.store.contract(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Contrato no encontrado"})
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *ContractHandler) Obligations(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}
	c.JSON(http.StatusOK, h.store.contractObligations(uint(id)))
}

func (h *ContractHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.contractMetrics())
}

// Checkout simula el inicio de pago: entrega una URL de pasarela con una
// referencia única. El cobro real es asunto del backend de producción.
func (h *ContractHandler) Checkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}

	obligation, ok := h.store.obligation(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Obligación no encontrada"})
		return
	}
	if obligation.PaymentDate != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "La obligación ya fue pagada"})
		return
	}

	reference := uuid.NewString()
	c.JSON(http.StatusOK, models.Checkout{
		ObligationID: obligation.ID,
		CheckoutURL:  fmt.Sprintf("https://checkout.sandbox.local/pay/%s", reference),
		Reference:    reference,
	})
}
