package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/services/notification"
	"mentorhub/utils"
)

// NotificationHandler exposes in-app notification endpoints. The recipient
// is whichever identity the auth middleware resolved.
type NotificationHandler struct {
	Service notification.NotificationService
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

func recipientID(c *gin.Context) string {
	if id := c.GetString("userID"); id != "" {
		return id
	}
	return c.GetString("mentorID")
}

// List handles GET /api/notifications?limit=N.
func (h *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	notifications, err := h.Service.ListForRecipient(c.Request.Context(), recipientID(c), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.Service.MarkRead(c.Request.Context(), c.Param("id"), recipientID(c))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "notification not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notification", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
