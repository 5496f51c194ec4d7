package sandbox

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	store *Store
}

func NewNotificationHandler(store *Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) Feed(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId inválido"})
		return
	}
	c.JSON(http.StatusOK, h.store.notificationsFor(uint(userID), false))
}

func (h *NotificationHandler) Unread(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId inválido"})
		return
	}
	c.JSON(http.StatusOK, h.store.notificationsFor(uint(userID), true))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id inválido"})
		return
	}

	if !h.store.markNotificationRead(uint(id)) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Notificación no encontrada"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId inválido"})
		return
	}

	h.store.markAllNotificationsRead(uint(userID))
	c.Status(http.StatusNoContent)
}
