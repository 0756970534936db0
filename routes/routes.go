package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mentorhub/handlers"
	"mentorhub/middleware"
)

// RegisterUserRoutes registers mentee endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.GET("/me", hb.GetUserHandler)
		protected.PATCH("/me", hb.UpdateUserHandler)
		protected.DELETE("/me", hb.DeleteUserHandler)
		protected.DELETE("/me/token", hb.RevokeUserTokenHandler)
	}
}

// RegisterMentorRoutes registers mentor account, profile and availability endpoints.
func RegisterMentorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mentors")
	{
		api.POST("/register", hb.RegisterMentorHandler)
		api.POST("/login", hb.AuthenticateMentorHandler)

		// Public browse endpoints.
		api.GET("", hb.ListMentorsHandler)
		api.GET("/:id", hb.GetMentorHandler)
		api.GET("/:id/availability", hb.GetAvailabilityHandler)
		api.GET("/:id/slots", hb.BookableSlotsHandler)

		// Endpoints that modify mentor data require strict authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMentorMiddleware())
		protected.PATCH("/me", hb.UpdateMentorHandler)
		protected.DELETE("/me", hb.DeleteMentorHandler)
		protected.PUT("/me/availability", hb.SetAvailabilityHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	mentee := r.Group("/api")
	{
		mentee.Use(middleware.JWTAuthUserMiddleware())
		mentee.POST("/booking/request", hb.RequestBookingHandler)
		mentee.GET("/sessions", hb.ListMenteeSessionsHandler)
		mentee.PUT("/sessions/:id/cancel", hb.MenteeCancelSessionHandler)
	}

	mentor := r.Group("/api/mentor")
	{
		mentor.Use(middleware.JWTAuthMentorMiddleware())
		mentor.GET("/sessions", hb.ListMentorSessionsHandler)
		mentor.PUT("/sessions/:id/:action", hb.MentorSessionActionHandler)
	}
}

// RegisterSeminarRoutes registers seminar endpoints.
func RegisterSeminarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/seminars")
	{
		api.GET("", hb.ListSeminarsHandler)
		api.GET("/:id", hb.GetSeminarHandler)

		mentee := api.Group("")
		mentee.Use(middleware.JWTAuthUserMiddleware())
		mentee.POST("/:id/register", hb.RegisterSeminarHandler)
	}

	mentor := r.Group("/api/mentor/seminars")
	{
		mentor.Use(middleware.JWTAuthMentorMiddleware())
		mentor.GET("", hb.MentorSeminarsHandler)
		mentor.POST("", hb.CreateSeminarHandler)
		mentor.PATCH("/:id", hb.UpdateSeminarHandler)
		mentor.DELETE("/:id", hb.CancelSeminarHandler)
	}
}

// RegisterIdeaRoutes registers idea-marketplace endpoints.
func RegisterIdeaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ideas")
	{
		api.GET("", hb.ListIdeasHandler)
		api.GET("/:id", hb.GetIdeaHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.POST("", hb.CreateIdeaHandler)
		protected.PATCH("/:id", hb.UpdateIdeaHandler)
		protected.DELETE("/:id", hb.DeleteIdeaHandler)
	}
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	mentee := r.Group("/api/notifications")
	{
		mentee.Use(middleware.JWTAuthUserMiddleware())
		mentee.GET("", hb.ListNotificationsHandler)
		mentee.PUT("/:id/read", hb.MarkNotificationHandler)
	}

	mentor := r.Group("/api/mentor/notifications")
	{
		mentor.Use(middleware.JWTAuthMentorMiddleware())
		mentor.GET("", hb.ListNotificationsHandler)
		mentor.PUT("/:id/read", hb.MarkNotificationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MentorHub"})
	})
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterMentorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSeminarRoutes(r, hb)
	RegisterIdeaRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
