package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
	"mentorhub/services/user"
	"mentorhub/utils"
)

// UserHandler exposes mentee account endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
}

// Authenticate handles POST /api/users/login.
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{ID: u.ID, Token: token})
}

// Get handles GET /api/users/me.
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Service.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// Update handles PATCH /api/users/me.
func (h *UserHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Service.Update(c.Request.Context(), c.GetString("userID"), fields)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// Delete handles DELETE /api/users/me.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.GetString("userID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "delete failed", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// RevokeToken handles DELETE /api/users/me/token.
func (h *UserHandler) RevokeToken(c *gin.Context) {
	if err := h.Service.RevokeToken(c.Request.Context(), c.GetString("userID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "revoke failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}
