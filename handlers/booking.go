package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentorhub/models"
	"mentorhub/services/booking"
	"mentorhub/utils"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// bookingStatus maps a booking error kind to an HTTP status.
func bookingStatus(kind string) int {
	switch kind {
	case booking.KindValidation:
		return http.StatusBadRequest
	case booking.KindSlotConflict, booking.KindOutsideAvailability:
		return http.StatusConflict
	case booking.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// rejectBooking writes the structured failure shape for booking errors.
func (h *BookingHandler) rejectBooking(c *gin.Context, err error) {
	kind := booking.KindOf(err)
	if kind == "" {
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
		return
	}
	c.JSON(bookingStatus(kind), gin.H{
		"ok":        false,
		"errorKind": kind,
		"reason":    err.Error(),
	})
}

// RequestBooking handles POST /api/booking/request.
func (h *BookingHandler) RequestBooking(c *gin.Context) {
	var candidate models.BookingCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	// The authenticated mentee is always the booking party.
	candidate.MenteeID = c.GetString("userID")

	session, err := h.Service.RequestBooking(c.Request.Context(), candidate)
	if err != nil {
		h.rejectBooking(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "session": session})
}

// BookableSlots handles GET /api/mentors/:id/slots?date=YYYY-MM-DD.
func (h *BookingHandler) BookableSlots(c *gin.Context) {
	mentorID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	slots, err := h.Service.BookableSlots(c.Request.Context(), mentorID, date)
	if err != nil {
		h.rejectBooking(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentorId": mentorID, "date": date, "slots": slots})
}

// ListMenteeSessions handles GET /api/sessions (mentee scope).
func (h *BookingHandler) ListMenteeSessions(c *gin.Context) {
	sessions, err := h.Service.ListMenteeSessions(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.rejectBooking(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// ListMentorSessions handles GET /api/mentor/sessions (mentor scope).
func (h *BookingHandler) ListMentorSessions(c *gin.Context) {
	sessions, err := h.Service.ListMentorSessions(c.Request.Context(), c.GetString("mentorID"))
	if err != nil {
		h.rejectBooking(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// MentorSessionAction handles PUT /api/mentor/sessions/:id/:action for
// accept, decline, start, complete and no_show.
func (h *BookingHandler) MentorSessionAction(c *gin.Context) {
	sessionID := c.Param("id")
	action := c.Param("action")
	mentorID := c.GetString("mentorID")

	session, err := h.Service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.rejectBooking(c, err)
		return
	}
	if session.MentorID != mentorID {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "session belongs to another mentor")
		return
	}

	updated, err := h.Service.TransitionSession(c.Request.Context(), sessionID, action)
	if err != nil {
		h.rejectBooking(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": updated})
}

// MenteeCancelSession handles PUT /api/sessions/:id/cancel.
func (h *BookingHandler) MenteeCancelSession(c *gin.Context) {
	sessionID := c.Param("id")
	menteeID := c.GetString("userID")

	session, err := h.Service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.rejectBooking(c, err)
		return
	}
	if session.MenteeID != menteeID {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "session belongs to another mentee")
		return
	}

	updated, err := h.Service.TransitionSession(c.Request.Context(), sessionID, "cancel")
	if err != nil {
		h.rejectBooking(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": updated})
}
