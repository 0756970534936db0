package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
	"mentorhub/services/mentor"
	"mentorhub/utils"
)

// MentorHandler exposes mentor account and profile endpoints.
type MentorHandler struct {
	Service mentor.MentorService
}

// NewMentorHandler constructs a MentorHandler.
func NewMentorHandler(svc mentor.MentorService) *MentorHandler {
	return &MentorHandler{Service: svc}
}

// Register handles POST /api/mentors/register.
func (h *MentorHandler) Register(c *gin.Context) {
	var reg models.MentorRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	m, token, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mentor": m, "token": token})
}

// Authenticate handles POST /api/mentors/login.
func (h *MentorHandler) Authenticate(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	m, token, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{ID: m.ID, Token: token})
}

// Get handles GET /api/mentors/:id.
func (h *MentorHandler) Get(c *gin.Context) {
	m, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "mentor not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load mentor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentor": m})
}

// List handles GET /api/mentors?expertise=...&limit=N.
func (h *MentorHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	mentors, err := h.Service.List(c.Request.Context(), c.Query("expertise"), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list mentors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentors": mentors})
}

// Update handles PATCH /api/mentors/me.
func (h *MentorHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	m, err := h.Service.Update(c.Request.Context(), c.GetString("mentorID"), fields)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentor": m})
}

// Delete handles DELETE /api/mentors/me.
func (h *MentorHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.GetString("mentorID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "delete failed", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetAvailability handles PUT /api/mentors/me/availability.
func (h *MentorHandler) SetAvailability(c *gin.Context) {
	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.SetAvailability(c.Request.Context(), c.GetString("mentorID"), req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to set availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// GetAvailability handles GET /api/mentors/:id/availability.
func (h *MentorHandler) GetAvailability(c *gin.Context) {
	windows, err := h.Service.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}
