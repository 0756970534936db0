package notification

import (
	"context"

	mentorRepo "mentorhub/database/repository/mentor"
	notificationRepo "mentorhub/database/repository/notification"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
)

// NotificationService records in-app notifications and sends FCM pushes.
// All sends are best-effort from the caller's point of view.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID, title, message, sessionID string) error
	NotifyMentor(ctx context.Context, mentorID, title, message, sessionID string) error
	ListForRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Records notificationRepo.NotificationRepository
	Users   userRepo.UserRepository
	Mentors mentorRepo.MentorRepository
}
