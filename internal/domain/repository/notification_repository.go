package repository

import "context"

type NotificationRepository interface {
	SendReminders(ctx context.Context, appointmentIDs []string) (string, error)
}
