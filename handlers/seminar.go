package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
	"mentorhub/services/seminar"
	"mentorhub/utils"
)

// SeminarHandler exposes public seminar endpoints.
type SeminarHandler struct {
	Service seminar.SeminarService
}

// NewSeminarHandler constructs a SeminarHandler.
func NewSeminarHandler(svc seminar.SeminarService) *SeminarHandler {
	return &SeminarHandler{Service: svc}
}

// List handles GET /api/seminars?limit=N.
func (h *SeminarHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	seminars, err := h.Service.ListUpcoming(c.Request.Context(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list seminars", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seminars": seminars})
}

// Get handles GET /api/seminars/:id.
func (h *SeminarHandler) Get(c *gin.Context) {
	s, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "seminar not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load seminar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seminar": s})
}

// Create handles POST /api/mentor/seminars.
func (h *SeminarHandler) Create(c *gin.Context) {
	var s models.Seminar
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	s.MentorID = c.GetString("mentorID")

	created, err := h.Service.Create(c.Request.Context(), &s)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create seminar", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"seminar": created})
}

// Update handles PATCH /api/mentor/seminars/:id.
func (h *SeminarHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s, err := h.Service.Update(c.Request.Context(), c.Param("id"), c.GetString("mentorID"), fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "seminar not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seminar": s})
}

// Cancel handles DELETE /api/mentor/seminars/:id.
func (h *SeminarHandler) Cancel(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id"), c.GetString("mentorID")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to cancel seminar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListByMentor handles GET /api/mentor/seminars.
func (h *SeminarHandler) ListByMentor(c *gin.Context) {
	seminars, err := h.Service.ListByMentor(c.Request.Context(), c.GetString("mentorID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list seminars", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seminars": seminars})
}

// Register handles POST /api/seminars/:id/register.
func (h *SeminarHandler) Register(c *gin.Context) {
	err := h.Service.Register(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, seminar.ErrSeminarFull) {
			utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}
