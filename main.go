package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"mentorhub/config"
	"mentorhub/cron"
	"mentorhub/database"
	availabilityRepo "mentorhub/database/repository/availability"
	ideaRepo "mentorhub/database/repository/idea"
	mentorRepoPkg "mentorhub/database/repository/mentor"
	notificationRepo "mentorhub/database/repository/notification"
	seminarRepo "mentorhub/database/repository/seminar"
	sessionRepoPkg "mentorhub/database/repository/session"
	userRepoPkg "mentorhub/database/repository/user"
	"mentorhub/handlers"
	"mentorhub/middleware"
	"mentorhub/routes"
	"mentorhub/services/booking"
	"mentorhub/services/email"
	"mentorhub/services/idea"
	"mentorhub/services/mentor"
	"mentorhub/services/notification"
	"mentorhub/services/seminar"
	"mentorhub/services/user"
	"mentorhub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	mentorRepo := mentorRepoPkg.NewMongoMentorRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	semRepo := seminarRepo.NewMongoSeminarRepo()
	ideasRepo := ideaRepo.NewMongoIdeaRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Records: notifRepo,
		Users:   userRepo,
		Mentors: mentorRepo,
	}
	mailer := email.NewMailer()
	reminderScheduler := cron.NewReminderScheduler()
	slotCache := booking.NewRedisSlotCache(utils.GetCacheClient())

	userService := &user.DefaultUserService{Repo: userRepo, Tokens: utils.AuthTokenStore{}}
	mentorService := &mentor.DefaultMentorService{
		Repo:         mentorRepo,
		Availability: availRepo,
		Tokens:       utils.AuthTokenStore{},
	}
	bookingEngine := &booking.DefaultBookingEngine{
		SessionRepo:      sessionRepo,
		AvailabilityRepo: availRepo,
		MentorRepo:       mentorRepo,
		UserRepo:         userRepo,
		Notifier:         notificationService,
		Mailer:           mailer,
		Reminders:        reminderScheduler,
		Slots:            slotCache,
		CommissionRate:   config.AppConfig.CommissionRate,
	}
	seminarService := &seminar.DefaultSeminarService{
		Repo:     semRepo,
		Notifier: notificationService,
	}
	ideaService := &idea.DefaultIdeaService{Repo: ideasRepo}

	// Background reminder worker.
	cron.InitReminderWorker(sessionRepo, notificationService)

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	mentorHandler := handlers.NewMentorHandler(mentorService)
	bookingHandler := handlers.NewBookingHandler(bookingEngine, logger)
	seminarHandler := handlers.NewSeminarHandler(seminarService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Mentee endpoints.
		RegisterUserHandler:     userHandler.Register,
		AuthenticateUserHandler: userHandler.Authenticate,
		GetUserHandler:          userHandler.Get,
		UpdateUserHandler:       userHandler.Update,
		DeleteUserHandler:       userHandler.Delete,
		RevokeUserTokenHandler:  userHandler.RevokeToken,

		// Mentor endpoints.
		RegisterMentorHandler:     mentorHandler.Register,
		AuthenticateMentorHandler: mentorHandler.Authenticate,
		GetMentorHandler:          mentorHandler.Get,
		ListMentorsHandler:        mentorHandler.List,
		UpdateMentorHandler:       mentorHandler.Update,
		DeleteMentorHandler:       mentorHandler.Delete,
		SetAvailabilityHandler:    mentorHandler.SetAvailability,
		GetAvailabilityHandler:    mentorHandler.GetAvailability,

		// Booking endpoints.
		RequestBookingHandler:      bookingHandler.RequestBooking,
		BookableSlotsHandler:       bookingHandler.BookableSlots,
		ListMenteeSessionsHandler:  bookingHandler.ListMenteeSessions,
		ListMentorSessionsHandler:  bookingHandler.ListMentorSessions,
		MentorSessionActionHandler: bookingHandler.MentorSessionAction,
		MenteeCancelSessionHandler: bookingHandler.MenteeCancelSession,

		// Seminar endpoints.
		ListSeminarsHandler:    seminarHandler.List,
		GetSeminarHandler:      seminarHandler.Get,
		CreateSeminarHandler:   seminarHandler.Create,
		UpdateSeminarHandler:   seminarHandler.Update,
		CancelSeminarHandler:   seminarHandler.Cancel,
		RegisterSeminarHandler: seminarHandler.Register,
		MentorSeminarsHandler:  seminarHandler.ListByMentor,

		// Idea marketplace endpoints.
		CreateIdeaHandler: ideaHandler.Create,
		ListIdeasHandler:  ideaHandler.List,
		GetIdeaHandler:    ideaHandler.Get,
		UpdateIdeaHandler: ideaHandler.Update,
		DeleteIdeaHandler: ideaHandler.Delete,

		// Notification endpoints.
		ListNotificationsHandler: notificationHandler.List,
		MarkNotificationHandler:  notificationHandler.MarkRead,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("listen: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
