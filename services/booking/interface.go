package booking

import (
	"context"
	"time"

	availabilityRepo "mentorhub/database/repository/availability"
	mentorRepo "mentorhub/database/repository/mentor"
	sessionRepo "mentorhub/database/repository/session"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
	"mentorhub/services/email"
	"mentorhub/services/notification"
)

// BookingService validates, prices and records mentorship session bookings.
type BookingService interface {
	// RequestBooking runs the end-to-end validation for a candidate and, on
	// success, persists a session with status "requested". Rejections come
	// back as *booking.Error.
	RequestBooking(ctx context.Context, candidate models.BookingCandidate) (*models.ScheduledSession, error)
	// BookableSlots returns the start-times still open for the mentor on the
	// given "YYYY-MM-DD" date.
	BookableSlots(ctx context.Context, mentorID, date string) ([]string, error)
	GetSession(ctx context.Context, sessionID string) (*models.ScheduledSession, error)
	ListMentorSessions(ctx context.Context, mentorID string) ([]models.ScheduledSession, error)
	ListMenteeSessions(ctx context.Context, menteeID string) ([]models.ScheduledSession, error)
	// TransitionSession applies a status action ("accept", "decline",
	// "cancel", "complete", "no_show") to a session.
	TransitionSession(ctx context.Context, sessionID, action string) (*models.ScheduledSession, error)
}

// ReminderScheduler enqueues a pre-session reminder push. Implemented by the
// asynq-backed scheduler in cron/.
type ReminderScheduler interface {
	ScheduleSessionReminder(sessionID string, startsAt time.Time) error
}

// DefaultBookingEngine implements BookingService.
type DefaultBookingEngine struct {
	SessionRepo      sessionRepo.SessionRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	MentorRepo       mentorRepo.MentorRepository
	UserRepo         userRepo.UserRepository
	Notifier         notification.NotificationService
	Mailer           email.Mailer
	Reminders        ReminderScheduler
	// Slots, when set, memoizes BookableSlots results and is invalidated on
	// bookings and cancellations.
	Slots          SlotCache
	CommissionRate float64
}
