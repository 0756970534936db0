package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Mentee endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetUserHandler          gin.HandlerFunc
	UpdateUserHandler       gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc
	RevokeUserTokenHandler  gin.HandlerFunc

	// Mentor endpoints.
	RegisterMentorHandler     gin.HandlerFunc
	AuthenticateMentorHandler gin.HandlerFunc
	GetMentorHandler          gin.HandlerFunc
	ListMentorsHandler        gin.HandlerFunc
	UpdateMentorHandler       gin.HandlerFunc
	DeleteMentorHandler       gin.HandlerFunc
	SetAvailabilityHandler    gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc

	// Booking endpoints.
	RequestBookingHandler      gin.HandlerFunc
	BookableSlotsHandler       gin.HandlerFunc
	ListMenteeSessionsHandler  gin.HandlerFunc
	ListMentorSessionsHandler  gin.HandlerFunc
	MentorSessionActionHandler gin.HandlerFunc
	MenteeCancelSessionHandler gin.HandlerFunc

	// Seminar endpoints.
	ListSeminarsHandler    gin.HandlerFunc
	GetSeminarHandler      gin.HandlerFunc
	CreateSeminarHandler   gin.HandlerFunc
	UpdateSeminarHandler   gin.HandlerFunc
	CancelSeminarHandler   gin.HandlerFunc
	RegisterSeminarHandler gin.HandlerFunc
	MentorSeminarsHandler  gin.HandlerFunc

	// Idea marketplace endpoints.
	CreateIdeaHandler gin.HandlerFunc
	ListIdeasHandler  gin.HandlerFunc
	GetIdeaHandler    gin.HandlerFunc
	UpdateIdeaHandler gin.HandlerFunc
	DeleteIdeaHandler gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler gin.HandlerFunc
	MarkNotificationHandler  gin.HandlerFunc
}
