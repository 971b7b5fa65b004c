package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoAppointmentsSelected = errors.New("no appointments selected")
	ErrReminderNotAllowed     = errors.New("reminders are only sent for pending or confirmed appointments")
)

const remindersSentMessage = "Đã gửi thông báo cho %d khách hàng"

// ReminderUsecase lets an admin notify customers about upcoming visits.
type ReminderUsecase interface {
	Send(ctx context.Context, req *dto.SendRemindersRequest) (*dto.SendRemindersResponse, error)
}

type reminderUsecase struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	appointmentRepo  repository.AppointmentRepository
	activity         service.ActivityService
}

func NewReminderUsecase(
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	appointmentRepo repository.AppointmentRepository,
	activity service.ActivityService,
) ReminderUsecase {
	return &reminderUsecase{
		log:              log,
		notificationRepo: notificationRepo,
		appointmentRepo:  appointmentRepo,
		activity:         activity,
	}
}

// Send asks the backend to remind the customers of the selected
// appointments. Duplicate and blank ids are dropped; every remaining id must
// name a pending or confirmed appointment.
func (u *reminderUsecase) Send(ctx context.Context, req *dto.SendRemindersRequest) (*dto.SendRemindersResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	ids := uniqueIDs(req.AppointmentIDs)
	if len(ids) == 0 {
		return nil, ErrNoAppointmentsSelected
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	byID := make(map[string]entity.AppointmentStatus, len(appointments))
	for _, a := range appointments {
		byID[a.ID] = a.Status
	}
	for _, id := range ids {
		status, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
		}
		if status != entity.AppointmentStatusPending && status != entity.AppointmentStatusConfirmed {
			return nil, fmt.Errorf("%w: %s is %s", ErrReminderNotAllowed, id, status)
		}
	}

	if _, err := u.notificationRepo.SendReminders(ctx, ids); err != nil {
		u.log.Warnf("Failed to send %d reminders: %+v", len(ids), err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindAppointment, strings.Join(ids, ","), "remind", err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, identity.UserID, entity.KindAppointment, strings.Join(ids, ","), "remind")
	return &dto.SendRemindersResponse{
		Message: fmt.Sprintf(remindersSentMessage, len(ids)),
		Sent:    len(ids),
	}, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
