package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"salon-booking/internal/converter"
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidStatusFilter = errors.New("invalid appointment status filter")
)

// AppointmentsPerPage is the admin list page size.
const AppointmentsPerPage = 8

// MaxAppointmentsPerPage bounds a caller-supplied page size.
const MaxAppointmentsPerPage = 100

const StatusFilterAll = "all"

var appointmentActionMessages = map[entity.AppointmentAction]string{
	entity.ActionConfirm:  "Xác nhận lịch hẹn thành công",
	entity.ActionComplete: "Hoàn thành lịch hẹn thành công",
	entity.ActionCancel:   "Hủy lịch hẹn thành công",
	entity.ActionDelete:   "Xóa lịch hẹn thành công",
}

const bookedMessage = "Đặt lịch thành công"

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentMutationResponse, error)
	List(ctx context.Context, filter dto.AppointmentFilter) (*dto.AppointmentListResponse, error)
	MyAppointments(ctx context.Context, date string) (*dto.MyAppointmentsResponse, error)
	Confirm(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error)
	Complete(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error)
	Cancel(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error)
	Delete(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.ServiceRepository
	activity        service.ActivityService
	guard           *service.InFlightGuard
	location        *time.Location
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
	activity service.ActivityService,
	guard *service.InFlightGuard,
	location *time.Location,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		activity:        activity,
		guard:           guard,
		location:        location,
		now:             time.Now,
	}
}

// Book validates the draft and submits it. The backend creates the
// appointment as pending.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	draft := BookingDraft{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		StaffID:   req.StaffID,
		Notes:     req.Notes,
	}
	if errs := ValidateBooking(draft, u.now(), u.location); len(errs) > 0 {
		return nil, errs
	}

	svc, err := u.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", req.ServiceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	// Both values already passed validation.
	day, _ := time.ParseInLocation(DateLayout, req.Date, u.location)
	clock, _ := time.Parse(TimeLayout, req.StartTime)

	appointment := &entity.NewAppointment{
		AppointmentDate: bookingInstant(day, clock, u.location).UTC().Format("2006-01-02T15:04:05.000Z"),
		Date:            req.Date,
		StartTime:       req.StartTime,
		Notes:           strings.TrimSpace(req.Notes),
		CustomerID:      identity.UserID,
		ServiceID:       svc.ID,
		TotalPrice:      svc.Price,
	}
	if staffID := strings.TrimSpace(req.StaffID); staffID != "" {
		appointment.StaffID = &staffID
	}

	message, err := u.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to book service %s for customer %s: %+v", svc.ID, identity.UserID, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindAppointment, "", "book", err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, identity.UserID, entity.KindAppointment, "", "book")
	return u.refresh(ctx, "", orDefault(message, bookedMessage)), nil
}

// List returns the caller's appointments filtered by status and paginated.
func (u *appointmentUsecase) List(ctx context.Context, filter dto.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	status := strings.ToLower(strings.TrimSpace(filter.Status))
	if status == "" {
		status = StatusFilterAll
	}
	if status != StatusFilterAll && !entity.AppointmentStatus(status).Valid() {
		return nil, ErrInvalidStatusFilter
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	if status != StatusFilterAll {
		filtered := make([]entity.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if a.Status == entity.AppointmentStatus(status) {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = AppointmentsPerPage
	}
	if limit > MaxAppointmentsPerPage {
		limit = MaxAppointmentsPerPage
	}

	// Compare by division so huge page numbers cannot overflow the offset.
	total := len(appointments)
	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := min(start+limit, total)

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments[start:end], viewerRole(ctx)),
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   (total + limit - 1) / limit,
	}, nil
}

// MyAppointments splits the caller's appointments into upcoming and history,
// optionally restricted to one day.
func (u *appointmentUsecase) MyAppointments(ctx context.Context, date string) (*dto.MyAppointmentsResponse, error) {
	if _, err := currentIdentity(ctx); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	role := viewerRole(ctx)
	resp := &dto.MyAppointmentsResponse{
		Upcoming: []dto.AppointmentResponse{},
		History:  []dto.AppointmentResponse{},
	}
	for i := range appointments {
		a := &appointments[i]
		if date != "" && a.Day() != date {
			continue
		}
		if a.IsUpcoming() {
			resp.Upcoming = append(resp.Upcoming, *converter.AppointmentToResponse(a, role))
		} else {
			resp.History = append(resp.History, *converter.AppointmentToResponse(a, role))
		}
	}
	return resp, nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error) {
	return u.transition(ctx, entity.ActionConfirm, id, u.appointmentRepo.Confirm)
}

func (u *appointmentUsecase) Complete(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error) {
	return u.transition(ctx, entity.ActionComplete, id, u.appointmentRepo.Complete)
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error) {
	return u.transition(ctx, entity.ActionCancel, id, u.appointmentRepo.Cancel)
}

func (u *appointmentUsecase) Delete(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error) {
	return u.transition(ctx, entity.ActionDelete, id, u.appointmentRepo.Delete)
}

// transition sends one lifecycle request. The backend decides whether the
// transition is legal; nothing changes locally unless it accepts.
func (u *appointmentUsecase) transition(
	ctx context.Context,
	action entity.AppointmentAction,
	id string,
	call func(ctx context.Context, id string) (string, error),
) (*dto.AppointmentMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	release, err := u.guard.Acquire(identity.UserID, id)
	if err != nil {
		return nil, err
	}
	defer release()

	message, err := call(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to %s appointment %s: %+v", action, id, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindAppointment, id, string(action), err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, identity.UserID, entity.KindAppointment, id, string(action))
	return u.refresh(ctx, id, orDefault(message, appointmentActionMessages[action])), nil
}

// refresh invalidates cached appointment lists and reloads them. A failed
// reload does not undo the mutation; the response is marked stale instead.
func (u *appointmentUsecase) refresh(ctx context.Context, id, message string) *dto.AppointmentMutationResponse {
	resp := &dto.AppointmentMutationResponse{Message: message}

	if err := u.appointmentRepo.Invalidate(ctx, entity.KindAppointment, id); err != nil {
		u.log.Warnf("Failed to invalidate appointment cache: %+v", err)
		resp.Stale = true
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to refresh appointments after mutation: %+v", err)
		resp.Stale = true
		return resp
	}

	resp.Appointments = converter.AppointmentsToResponses(appointments, viewerRole(ctx))
	return resp
}
