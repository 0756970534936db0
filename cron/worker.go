package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/config"
	sessionRepo "mentorhub/database/repository/session"
	"mentorhub/services/notification"
)

const TypeReminderSend = "reminder:send"

type reminderPayload struct {
	SessionID string `json:"sessionId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues session-reminder tasks onto the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler builds a scheduler using the configured redis queue
// and reminder lead time.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpts()),
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleSessionReminder enqueues a reminder to fire ahead of the session
// start. Sessions starting sooner than the lead time get no reminder.
func (s *ReminderScheduler) ScheduleSessionReminder(sessionID string, startsAt time.Time) error {
	at := startsAt.Add(-s.lead)
	if at.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(reminderPayload{SessionID: sessionID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(at))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(sessions sessionRepo.SessionRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(sessions, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

// handleReminderTask pushes the reminder to both parties. Sessions cancelled
// (or otherwise inactive) since enqueue are skipped at delivery time.
func handleReminderTask(sessions sessionRepo.SessionRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("invalid reminder payload: %w", err)
		}

		session, err := sessions.GetByID(ctx, p.SessionID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil
			}
			return err
		}
		if !session.IsActive() {
			return nil
		}

		when := session.ScheduledStart.Format("15:04")
		msg := fmt.Sprintf("Your session starts at %s.", when)
		if err := notifSvc.NotifyUser(ctx, session.MenteeID, "Upcoming session", msg, session.ID); err != nil {
			log.Printf("[ReminderWorker] mentee push failed for %s: %v", session.ID, err)
		}
		if err := notifSvc.NotifyMentor(ctx, session.MentorID, "Upcoming session", msg, session.ID); err != nil {
			log.Printf("[ReminderWorker] mentor push failed for %s: %v", session.ID, err)
		}
		return nil
	}
}
