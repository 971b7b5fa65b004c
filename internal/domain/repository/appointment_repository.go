package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type AppointmentRepository interface {
	Invalidator
	Create(ctx context.Context, appointment *entity.NewAppointment) (string, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Confirm(ctx context.Context, id string) (string, error)
	Complete(ctx context.Context, id string) (string, error)
	Cancel(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}
