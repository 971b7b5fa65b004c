package usecase

import (
	"context"
	"errors"
	"strings"

	"salon-booking/internal/converter"
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrAppointmentNotReviewable = errors.New("appointment is not completed or already reviewed")

const reviewedMessage = "Cảm ơn bạn đã đánh giá!"

type ReviewUsecase interface {
	List(ctx context.Context) (*dto.ReviewListResponse, error)
	Submit(ctx context.Context, req *dto.CreateReviewRequest) (*dto.AppointmentMutationResponse, error)
}

type reviewUsecase struct {
	log             *logrus.Logger
	reviewRepo      repository.ReviewRepository
	appointmentRepo repository.AppointmentRepository
	activity        service.ActivityService
}

func NewReviewUsecase(
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	appointmentRepo repository.AppointmentRepository,
	activity service.ActivityService,
) ReviewUsecase {
	return &reviewUsecase{
		log:             log,
		reviewRepo:      reviewRepo,
		appointmentRepo: appointmentRepo,
		activity:        activity,
	}
}

func (u *reviewUsecase) List(ctx context.Context) (*dto.ReviewListResponse, error) {
	reviews, err := u.reviewRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list reviews: %+v", err)
		return nil, err
	}
	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}, nil
}

// Submit reviews one of the caller's completed, not yet reviewed
// appointments.
func (u *reviewUsecase) Submit(ctx context.Context, req *dto.CreateReviewRequest) (*dto.AppointmentMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	var appointment *entity.Appointment
	for i := range appointments {
		if appointments[i].ID == req.AppointmentID {
			appointment = &appointments[i]
			break
		}
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.CanReview() {
		return nil, ErrAppointmentNotReviewable
	}

	review := &entity.Review{
		AppointmentID: entity.Ref{ID: appointment.ID},
		CustomerID:    entity.Ref{ID: identity.UserID},
		ServiceID:     entity.Ref{ID: appointment.ServiceID.ID},
		StaffID:       entity.Ref{ID: appointment.StaffID.ID},
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
	}

	message, err := u.reviewRepo.Create(ctx, review)
	if err != nil {
		u.log.Warnf("Failed to review appointment %s: %+v", appointment.ID, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindReview, appointment.ID, "review", err)
		return nil, err
	}
	u.activity.LogAccepted(ctx, identity.UserID, entity.KindReview, appointment.ID, "review")

	resp := &dto.AppointmentMutationResponse{Message: orDefault(message, reviewedMessage)}

	if err := u.reviewRepo.Invalidate(ctx, entity.KindReview, ""); err != nil {
		u.log.Warnf("Failed to invalidate review cache: %+v", err)
	}
	// Services carry the average rating.
	if err := u.reviewRepo.Invalidate(ctx, entity.KindService, appointment.ServiceID.ID); err != nil {
		u.log.Warnf("Failed to invalidate service cache: %+v", err)
	}
	if err := u.appointmentRepo.Invalidate(ctx, entity.KindAppointment, appointment.ID); err != nil {
		u.log.Warnf("Failed to invalidate appointment cache: %+v", err)
		resp.Stale = true
	}

	refreshed, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to refresh appointments after review: %+v", err)
		resp.Stale = true
		return resp, nil
	}
	resp.Appointments = converter.AppointmentsToResponses(refreshed, viewerRole(ctx))
	return resp, nil
}
