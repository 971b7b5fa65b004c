package repository

import (
	"context"

	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
)

type notificationRepository struct {
	client *backend.Client
}

func NewNotificationRepository(client *backend.Client) domainRepo.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) SendReminders(ctx context.Context, appointmentIDs []string) (string, error) {
	return mutate(r.client.Post(ctx, "/notifications/send-reminders", map[string][]string{
		"appointmentIds": appointmentIDs,
	}))
}
