package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
	"mentorhub/services/idea"
	"mentorhub/utils"
)

// IdeaHandler exposes the business-idea marketplace endpoints.
type IdeaHandler struct {
	Service idea.IdeaService
}

// NewIdeaHandler constructs an IdeaHandler.
func NewIdeaHandler(svc idea.IdeaService) *IdeaHandler {
	return &IdeaHandler{Service: svc}
}

// Create handles POST /api/ideas.
func (h *IdeaHandler) Create(c *gin.Context) {
	var i models.Idea
	if err := c.ShouldBindJSON(&i); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	i.OwnerID = c.GetString("userID")

	created, err := h.Service.Create(c.Request.Context(), &i)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create idea", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"idea": created})
}

// List handles GET /api/ideas?category=...&limit=N.
func (h *IdeaHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	ideas, err := h.Service.List(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list ideas", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

// Get handles GET /api/ideas/:id.
func (h *IdeaHandler) Get(c *gin.Context) {
	i, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "idea not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load idea", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"idea": i})
}

// Update handles PATCH /api/ideas/:id.
func (h *IdeaHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	i, err := h.Service.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"), fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "idea not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"idea": i})
}

// Delete handles DELETE /api/ideas/:id.
func (h *IdeaHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "idea not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "delete failed", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
