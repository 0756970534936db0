package notificationRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository stores in-app notification records.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}
