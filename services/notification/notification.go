package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"mentorhub/models"
	"mentorhub/utils"
)

// NotifyUser persists a notification record for a mentee and pushes it over
// FCM when the mentee has a registered token.
func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID, title, message, sessionID string) error {
	if err := s.record(ctx, userID, title, message, sessionID); err != nil {
		return err
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("NotifyUser: could not find user %s: %w", userID, err)
	}
	return s.push(ctx, u.FCMToken, title, message, map[string]string{
		"role":      "mentee",
		"sessionId": sessionID,
	})
}

// NotifyMentor persists a notification record for a mentor and pushes it over
// FCM when the mentor has a registered token.
func (s *DefaultNotificationService) NotifyMentor(ctx context.Context, mentorID, title, message, sessionID string) error {
	if err := s.record(ctx, mentorID, title, message, sessionID); err != nil {
		return err
	}

	m, err := s.Mentors.GetByID(ctx, mentorID)
	if err != nil {
		return fmt.Errorf("NotifyMentor: could not find mentor %s: %w", mentorID, err)
	}
	return s.push(ctx, m.FCMToken, title, message, map[string]string{
		"role":      "mentor",
		"sessionId": sessionID,
	})
}

func (s *DefaultNotificationService) record(ctx context.Context, recipientID, title, message, sessionID string) error {
	n := &models.Notification{
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		SessionID:   sessionID,
	}
	if err := s.Records.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to record notification for %s: %w", recipientID, err)
	}
	return nil
}

// push sends an FCM message. A recipient without a token just gets the
// persisted record.
func (s *DefaultNotificationService) push(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" || utils.FCMClient == nil {
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	utils.GetLogger().Debug("FCM push sent", zap.String("response", response))
	return nil
}

func (s *DefaultNotificationService) ListForRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error) {
	return s.Records.ListByRecipient(ctx, recipientID, limit)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	return s.Records.MarkRead(ctx, notificationID, recipientID)
}
