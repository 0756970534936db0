package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sessionRepo "mentorhub/database/repository/session"
	"mentorhub/models"
	"mentorhub/utils"
)

const dateLayout = "2006-01-02"

// resolveCandidate validates the candidate's fields and resolves them into an
// absolute [start, end) interval. Runs before any store call.
func resolveCandidate(c models.BookingCandidate) (start, end time.Time, err error) {
	if c.MentorID == "" {
		return start, end, newValidationError("mentorId is required")
	}
	if c.DurationMinutes <= 0 {
		return start, end, newValidationError("durationMinutes must be positive")
	}
	day, err := time.ParseInLocation(dateLayout, c.RequestedDate, time.Local)
	if err != nil {
		return start, end, newValidationError(fmt.Sprintf("invalid requestedDate %q", c.RequestedDate))
	}
	h, m, err := parseClock(c.RequestedTime)
	if err != nil {
		return start, end, newValidationError(fmt.Sprintf("invalid requestedTime %q", c.RequestedTime))
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.Local)
	end = start.Add(time.Duration(c.DurationMinutes) * time.Minute)
	return start, end, nil
}

// RequestBooking validates the candidate end-to-end: local validation, then
// the conflict checks against the mentor's active sessions and weekly
// windows, then pricing off the mentor's hourly rate. On acceptance the
// session is persisted with status "requested"; the notification, email and
// reminder side effects are best-effort and never fail the booking.
func (e *DefaultBookingEngine) RequestBooking(ctx context.Context, candidate models.BookingCandidate) (*models.ScheduledSession, error) {
	logger := utils.GetLogger()

	start, end, err := resolveCandidate(candidate)
	if err != nil {
		return nil, err
	}

	mentor, err := e.MentorRepo.GetByID(ctx, candidate.MentorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newValidationError(fmt.Sprintf("unknown mentor %q", candidate.MentorID))
		}
		return nil, newStoreUnavailable(fmt.Sprintf("failed to load mentor: %v", err))
	}

	// A store failure here must abort; it is never treated as "no conflicts".
	sessions, err := e.SessionRepo.GetActiveSessions(ctx, candidate.MentorID)
	if err != nil {
		return nil, newStoreUnavailable(fmt.Sprintf("failed to load existing sessions: %v", err))
	}
	windows, err := e.AvailabilityRepo.GetWeeklyAvailability(ctx, candidate.MentorID)
	if err != nil {
		return nil, newStoreUnavailable(fmt.Sprintf("failed to load availability: %v", err))
	}

	if err := CheckCandidate(start, end, sessions, windows); err != nil {
		return nil, err
	}

	pricing := Price(mentor.HourlyRate, candidate.DurationMinutes, e.CommissionRate)

	session := &models.ScheduledSession{
		ID:              uuid.New().String(),
		MentorID:        candidate.MentorID,
		MenteeID:        candidate.MenteeID,
		Topic:           candidate.Topic,
		ScheduledStart:  start,
		ScheduledEnd:    end,
		DurationMinutes: candidate.DurationMinutes,
		Status:          models.SessionStatusRequested,
		BasePrice:       pricing.BasePrice,
		PlatformFee:     pricing.PlatformFee,
		CommissionRate:  pricing.CommissionRate,
		FinalPrice:      pricing.FinalPrice,
		CreatedAt:       time.Now(),
	}

	if err := e.SessionRepo.Create(ctx, session); err != nil {
		if errors.Is(err, sessionRepo.ErrSlotTaken) {
			return nil, newSlotConflict("requested slot was taken while booking")
		}
		return nil, newStoreUnavailable(fmt.Sprintf("failed to save session: %v", err))
	}

	if e.Slots != nil {
		e.Slots.InvalidateSlots(ctx, candidate.MentorID, candidate.RequestedDate)
	}

	logger.Info("session booked",
		zap.String("sessionID", session.ID),
		zap.String("mentorID", session.MentorID),
		zap.String("menteeID", session.MenteeID),
		zap.Time("start", session.ScheduledStart),
		zap.Float64("finalPrice", session.FinalPrice),
	)

	e.fireBookingSideEffects(session, mentor)
	return session, nil
}

// fireBookingSideEffects sends the post-persist notifications. Failures are
// logged and swallowed; the booking has already been recorded.
func (e *DefaultBookingEngine) fireBookingSideEffects(session *models.ScheduledSession, mentor *models.Mentor) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	when := session.ScheduledStart.Format("Mon Jan 2 at 15:04")

	if err := e.Notifier.NotifyMentor(ctx, session.MentorID,
		"New session request",
		fmt.Sprintf("You have a new session request for %s.", when),
		session.ID,
	); err != nil {
		logger.Warn("booking: mentor notification failed", zap.String("sessionID", session.ID), zap.Error(err))
	}
	if err := e.Notifier.NotifyUser(ctx, session.MenteeID,
		"Session requested",
		fmt.Sprintf("Your session with %s on %s is awaiting confirmation.", mentor.Name, when),
		session.ID,
	); err != nil {
		logger.Warn("booking: mentee notification failed", zap.String("sessionID", session.ID), zap.Error(err))
	}

	if mentee, err := e.UserRepo.GetByID(ctx, session.MenteeID); err != nil {
		logger.Warn("booking: could not load mentee for email", zap.String("sessionID", session.ID), zap.Error(err))
	} else if err := e.Mailer.SendBookingEmail(ctx, models.BookingEmail{
		RecipientEmail: mentee.Email,
		RecipientName:  mentee.Name,
		MentorName:     mentor.Name,
		StartsAt:       session.ScheduledStart,
		DurationMins:   session.DurationMinutes,
		FinalPrice:     session.FinalPrice,
		Topic:          session.Topic,
	}); err != nil {
		logger.Warn("booking: confirmation email failed", zap.String("sessionID", session.ID), zap.Error(err))
	}

	if e.Reminders != nil {
		if err := e.Reminders.ScheduleSessionReminder(session.ID, session.ScheduledStart); err != nil {
			logger.Warn("booking: reminder enqueue failed", zap.String("sessionID", session.ID), zap.Error(err))
		}
	}
}

// BookableSlots exposes the slot grid for a date, minus starts already taken
// by the mentor's active sessions.
func (e *DefaultBookingEngine) BookableSlots(ctx context.Context, mentorID, date string) ([]string, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("invalid date %q", date))
	}

	if e.Slots != nil {
		if cached, ok := e.Slots.GetSlots(ctx, mentorID, date); ok {
			return cached, nil
		}
	}

	windows, err := e.AvailabilityRepo.GetWeeklyAvailability(ctx, mentorID)
	if err != nil {
		return nil, newStoreUnavailable(fmt.Sprintf("failed to load availability: %v", err))
	}
	sessions, err := e.SessionRepo.GetActiveSessions(ctx, mentorID)
	if err != nil {
		return nil, newStoreUnavailable(fmt.Sprintf("failed to load existing sessions: %v", err))
	}

	grid := SlotGrid(day, windows)
	open := make([]string, 0, len(grid))
	for _, s := range grid {
		h, m, err := parseClock(s)
		if err != nil {
			continue
		}
		slotStart := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.Local)
		slotEnd := slotStart.Add(SlotStepMinutes * time.Minute)
		if FindConflict(slotStart, slotEnd, sessions) == nil {
			open = append(open, s)
		}
	}

	if e.Slots != nil {
		e.Slots.SetSlots(ctx, mentorID, date, open)
	}
	return open, nil
}

func (e *DefaultBookingEngine) GetSession(ctx context.Context, sessionID string) (*models.ScheduledSession, error) {
	session, err := e.SessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newValidationError(fmt.Sprintf("unknown session %q", sessionID))
		}
		return nil, newStoreUnavailable(fmt.Sprintf("failed to load session: %v", err))
	}
	return session, nil
}

func (e *DefaultBookingEngine) ListMentorSessions(ctx context.Context, mentorID string) ([]models.ScheduledSession, error) {
	sessions, err := e.SessionRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, newStoreUnavailable(fmt.Sprintf("failed to list sessions: %v", err))
	}
	return sessions, nil
}

func (e *DefaultBookingEngine) ListMenteeSessions(ctx context.Context, menteeID string) ([]models.ScheduledSession, error) {
	sessions, err := e.SessionRepo.ListByMentee(ctx, menteeID)
	if err != nil {
		return nil, newStoreUnavailable(fmt.Sprintf("failed to list sessions: %v", err))
	}
	return sessions, nil
}

// sessionTransitions maps a status action to its legal source statuses and
// the resulting status.
var sessionTransitions = map[string]struct {
	from []string
	to   string
}{
	"accept":   {from: []string{models.SessionStatusRequested}, to: models.SessionStatusConfirmed},
	"decline":  {from: []string{models.SessionStatusRequested}, to: models.SessionStatusCancelled},
	"cancel":   {from: []string{models.SessionStatusRequested, models.SessionStatusConfirmed}, to: models.SessionStatusCancelled},
	"start":    {from: []string{models.SessionStatusConfirmed}, to: models.SessionStatusInProgress},
	"complete": {from: []string{models.SessionStatusConfirmed, models.SessionStatusInProgress}, to: models.SessionStatusCompleted},
	"no_show":  {from: []string{models.SessionStatusConfirmed}, to: models.SessionStatusNoShow},
}

// TransitionSession applies a status action to a session and notifies both
// parties best-effort.
func (e *DefaultBookingEngine) TransitionSession(ctx context.Context, sessionID, action string) (*models.ScheduledSession, error) {
	logger := utils.GetLogger()

	t, ok := sessionTransitions[action]
	if !ok {
		return nil, newValidationError(fmt.Sprintf("unknown action %q", action))
	}

	session, err := e.SessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newValidationError(fmt.Sprintf("unknown session %q", sessionID))
		}
		return nil, newStoreUnavailable(fmt.Sprintf("failed to load session: %v", err))
	}

	legal := false
	for _, from := range t.from {
		if session.Status == from {
			legal = true
			break
		}
	}
	if !legal {
		return nil, newValidationError(fmt.Sprintf("cannot %s a session in status %q", action, session.Status))
	}

	if err := e.SessionRepo.UpdateStatus(ctx, sessionID, t.to); err != nil {
		return nil, newStoreUnavailable(fmt.Sprintf("failed to update session: %v", err))
	}
	session.Status = t.to

	// A cancellation reopens the slot for that date.
	if e.Slots != nil && t.to == models.SessionStatusCancelled {
		e.Slots.InvalidateSlots(ctx, session.MentorID, session.ScheduledStart.Format(dateLayout))
	}

	title := fmt.Sprintf("Session %s", t.to)
	msg := fmt.Sprintf("Your session on %s is now %s.", session.ScheduledStart.Format("Mon Jan 2 at 15:04"), t.to)
	if err := e.Notifier.NotifyUser(ctx, session.MenteeID, title, msg, session.ID); err != nil {
		logger.Warn("transition: mentee notification failed", zap.String("sessionID", session.ID), zap.Error(err))
	}
	if err := e.Notifier.NotifyMentor(ctx, session.MentorID, title, msg, session.ID); err != nil {
		logger.Warn("transition: mentor notification failed", zap.String("sessionID", session.ID), zap.Error(err))
	}

	return session, nil
}
