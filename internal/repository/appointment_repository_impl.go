package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type appointmentRepository struct {
	restRepository
}

func NewAppointmentRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.AppointmentRepository {
	return &appointmentRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindAppointment}}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.NewAppointment) (string, error) {
	return mutate(r.client.Post(ctx, "/appointments", appointment))
}

// FindAll returns the caller's appointments, newest first.
func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return service.CachedList(ctx, r.cache, r.log, r.kind, service.CallerScope(ctx), func(ctx context.Context) ([]entity.Appointment, error) {
		env, err := r.client.Get(ctx, "/appointments")
		if err != nil {
			return nil, err
		}

		var appointments []entity.Appointment
		if err := backend.DecodeList(env.Data, "appointments", &appointments); err != nil {
			return nil, err
		}

		// The backend lists oldest first.
		for i, j := 0, len(appointments)-1; i < j; i, j = i+1, j-1 {
			appointments[i], appointments[j] = appointments[j], appointments[i]
		}
		return appointments, nil
	})
}

func (r *appointmentRepository) Confirm(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Put(ctx, pathID("/appointments/confirm/", id), nil))
}

func (r *appointmentRepository) Complete(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Put(ctx, pathID("/appointments/complete/", id), nil))
}

func (r *appointmentRepository) Cancel(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Put(ctx, pathID("/appointments/cancel/", id), nil))
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Delete(ctx, pathID("/appointments/", id)))
}
