package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon-booking/internal/converter"
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"
	"salon-booking/internal/service"
	"salon-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyRegistered          = errors.New("staff already registered for this shift")
	ErrRegistrationNotFound       = errors.New("work shift registration not found")
	ErrRegistrationNotCancellable = errors.New("only pending registrations can be cancelled")
	ErrRegistrationNotOwned       = errors.New("registration does not belong to you")
	ErrInvalidShiftTime           = errors.New("shift start time must be before end time")
	ErrUnknownAssignPolicy        = errors.New("unknown admin assign policy")
)

const AlreadyRegisteredMessage = "Bạn đã đăng ký ca này rồi!"

const (
	registeredMessage   = "Đăng ký ca làm thành công"
	assignedMessage     = "Phân ca thành công"
	approvedMessage     = "Duyệt đăng ký ca thành công"
	rejectedMessage     = "Từ chối đăng ký ca thành công"
	cancelledMessage    = "Hủy đăng ký ca thành công"
	shiftCreatedMessage = "Tạo ca làm thành công"
	shiftDeletedMessage = "Xóa ca làm thành công"
)

// AdminAssignPolicy decides whether admin assignment runs the same duplicate
// check as staff self-registration.
type AdminAssignPolicy string

const (
	// AssignOverride sends every admin assignment to the backend unchecked.
	AssignOverride AdminAssignPolicy = "override"
	// AssignGuarded refuses admin assignments the duplicate check catches.
	AssignGuarded AdminAssignPolicy = "guarded"
)

func ParseAdminAssignPolicy(s string) (AdminAssignPolicy, error) {
	switch AdminAssignPolicy(s) {
	case "", AssignOverride:
		return AssignOverride, nil
	case AssignGuarded:
		return AssignGuarded, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAssignPolicy, s)
}

type WorkShiftUsecase interface {
	ListShifts(ctx context.Context, date string) (*dto.ShiftListResponse, error)
	CreateShift(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftMutationResponse, error)
	DeleteShift(ctx context.Context, id string) (*dto.ShiftMutationResponse, error)

	ListRegistrations(ctx context.Context) (*dto.RegistrationListResponse, error)
	IsRegistered(ctx context.Context, staffID, shiftID string) (bool, error)
	Register(ctx context.Context, req *dto.RegisterShiftRequest) (*dto.RegistrationMutationResponse, error)
	AdminAssign(ctx context.Context, req *dto.AssignShiftRequest) (*dto.RegistrationMutationResponse, error)
	Approve(ctx context.Context, id string) (*dto.RegistrationMutationResponse, error)
	Reject(ctx context.Context, id string) (*dto.RegistrationMutationResponse, error)
	Cancel(ctx context.Context, id string) (*dto.RegistrationMutationResponse, error)
}

type workShiftUsecase struct {
	log           *logrus.Logger
	shiftRepo     repository.ShiftRepository
	workShiftRepo repository.WorkShiftRepository
	activity      service.ActivityService
	guard         *service.InFlightGuard
	assignPolicy  AdminAssignPolicy
}

func NewWorkShiftUsecase(
	log *logrus.Logger,
	shiftRepo repository.ShiftRepository,
	workShiftRepo repository.WorkShiftRepository,
	activity service.ActivityService,
	guard *service.InFlightGuard,
	assignPolicy AdminAssignPolicy,
) WorkShiftUsecase {
	return &workShiftUsecase{
		log:           log,
		shiftRepo:     shiftRepo,
		workShiftRepo: workShiftRepo,
		activity:      activity,
		guard:         guard,
		assignPolicy:  assignPolicy,
	}
}

// ListShifts returns all shifts, or those on date when it is set.
func (u *workShiftUsecase) ListShifts(ctx context.Context, date string) (*dto.ShiftListResponse, error) {
	shifts, err := u.shiftRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list shifts: %+v", err)
		return nil, err
	}

	if date != "" {
		onDay := make([]entity.Shift, 0, len(shifts))
		for _, s := range shifts {
			if s.Day() == date {
				onDay = append(onDay, s)
			}
		}
		shifts = onDay
	}

	return &dto.ShiftListResponse{
		Shifts: converter.ShiftsToResponses(shifts),
		Total:  len(shifts),
	}, nil
}

func (u *workShiftUsecase) CreateShift(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	start, errStart := time.Parse(TimeLayout, req.StartTime)
	end, errEnd := time.Parse(TimeLayout, req.EndTime)
	if errStart != nil || errEnd != nil || !start.Before(end) {
		return nil, ErrInvalidShiftTime
	}

	message, err := u.shiftRepo.Create(ctx, &entity.NewShift{
		ShiftType: req.ShiftType,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Max:       req.Max,
	})
	if err != nil {
		u.log.Warnf("Failed to create %s shift on %s: %+v", req.ShiftType, req.Date, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindShift, "", "create", err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, identity.UserID, entity.KindShift, "", "create")
	return u.refreshShifts(ctx, "", orDefault(message, shiftCreatedMessage)), nil
}

func (u *workShiftUsecase) DeleteShift(ctx context.Context, id string) (*dto.ShiftMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	message, err := u.shiftRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete shift %s: %+v", id, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindShift, id, "delete", err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, identity.UserID, entity.KindShift, id, "delete")
	// Registrations embed the shift, so they are stale too.
	if err := u.workShiftRepo.Invalidate(ctx, entity.KindWorkShift, ""); err != nil {
		u.log.Warnf("Failed to invalidate work shift cache: %+v", err)
	}
	return u.refreshShifts(ctx, id, orDefault(message, shiftDeletedMessage)), nil
}

// ListRegistrations returns the registration set split into pending and
// history. Staff only see their own registrations.
func (u *workShiftUsecase) ListRegistrations(ctx context.Context) (*dto.RegistrationListResponse, error) {
	regs, err := u.registrationsFor(ctx)
	if err != nil {
		return nil, err
	}
	return converter.RegistrationsToListResponse(regs), nil
}

// IsRegistered reports whether staffID holds a pending or approved
// registration for shiftID. When staffID is the caller, registrations the
// backend returns without a staff reference count as theirs.
func (u *workShiftUsecase) IsRegistered(ctx context.Context, staffID, shiftID string) (bool, error) {
	identity, _ := jwt.IdentityFromContext(ctx)
	return u.isRegistered(ctx, staffID, shiftID, identity.UserID != "" && identity.UserID == staffID)
}

func (u *workShiftUsecase) isRegistered(ctx context.Context, staffID, shiftID string, claimUnassigned bool) (bool, error) {
	regs, err := u.workShiftRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list work shift registrations: %+v", err)
		return false, err
	}
	return hasActiveRegistration(regs, staffID, shiftID, claimUnassigned), nil
}

// Register claims a shift for the calling staff member. The duplicate check
// is advisory; the backend has the final word.
func (u *workShiftUsecase) Register(ctx context.Context, req *dto.RegisterShiftRequest) (*dto.RegistrationMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	release, err := u.guard.Acquire(identity.UserID, req.ShiftID)
	if err != nil {
		return nil, err
	}
	defer release()

	registered, err := u.isRegistered(ctx, identity.UserID, req.ShiftID, true)
	if err != nil {
		return nil, err
	}
	if registered {
		u.activity.LogRejected(ctx, identity.UserID, entity.KindWorkShift, req.ShiftID, "register", ErrAlreadyRegistered)
		return nil, ErrAlreadyRegistered
	}

	message, err := u.workShiftRepo.Register(ctx, &entity.NewWorkShiftRegistration{
		StaffID: identity.UserID,
		ShiftID: req.ShiftID,
	})
	if err != nil {
		u.log.Warnf("Failed to register staff %s for shift %s: %+v", identity.UserID, req.ShiftID, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindWorkShift, req.ShiftID, "register", err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, identity.UserID, entity.KindWorkShift, req.ShiftID, "register")
	return u.refreshRegistrations(ctx, "", orDefault(message, registeredMessage)), nil
}

// AdminAssign registers a staff member on their behalf, checked or not
// depending on the configured policy.
func (u *workShiftUsecase) AdminAssign(ctx context.Context, req *dto.AssignShiftRequest) (*dto.RegistrationMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if u.assignPolicy == AssignGuarded {
		registered, err := u.isRegistered(ctx, req.StaffID, req.ShiftID, false)
		if err != nil {
			return nil, err
		}
		if registered {
			u.activity.LogRejected(ctx, identity.UserID, entity.KindWorkShift, req.ShiftID, "assign", ErrAlreadyRegistered)
			return nil, ErrAlreadyRegistered
		}
	}

	message, err := u.workShiftRepo.AdminCreate(ctx, &entity.NewWorkShiftRegistration{
		StaffID: req.StaffID,
		ShiftID: req.ShiftID,
	})
	if err != nil {
		u.log.Warnf("Failed to assign staff %s to shift %s: %+v", req.StaffID, req.ShiftID, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindWorkShift, req.ShiftID, "assign", err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, identity.UserID, entity.KindWorkShift, req.ShiftID, "assign")
	return u.refreshRegistrations(ctx, "", orDefault(message, assignedMessage)), nil
}

func (u *workShiftUsecase) Approve(ctx context.Context, id string) (*dto.RegistrationMutationResponse, error) {
	return u.decide(ctx, "approve", id, u.workShiftRepo.Approve, approvedMessage)
}

func (u *workShiftUsecase) Reject(ctx context.Context, id string) (*dto.RegistrationMutationResponse, error) {
	return u.decide(ctx, "reject", id, u.workShiftRepo.Reject, rejectedMessage)
}

// Cancel withdraws a pending registration. Staff may only cancel their own.
func (u *workShiftUsecase) Cancel(ctx context.Context, id string) (*dto.RegistrationMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	regs, err := u.workShiftRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list work shift registrations: %+v", err)
		return nil, err
	}

	var reg *entity.WorkShiftRegistration
	for i := range regs {
		if regs[i].ID == id {
			reg = &regs[i]
			break
		}
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}
	if entity.Role(identity.Role) == entity.RoleStaff && reg.StaffID.ID != "" && reg.StaffID.ID != identity.UserID {
		return nil, ErrRegistrationNotOwned
	}
	if !reg.CanCancel() {
		return nil, ErrRegistrationNotCancellable
	}

	return u.decide(ctx, "cancel", id, u.workShiftRepo.Cancel, cancelledMessage)
}

func (u *workShiftUsecase) decide(
	ctx context.Context,
	action string,
	id string,
	call func(ctx context.Context, id string) (string, error),
	fallback string,
) (*dto.RegistrationMutationResponse, error) {
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
		u.log.Warnf("Failed to %s work shift registration %s: %+v", action, id, err)
		u.activity.LogRejected(ctx, identity.UserID, entity.KindWorkShift, id, action, err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, identity.UserID, entity.KindWorkShift, id, action)
	return u.refreshRegistrations(ctx, id, orDefault(message, fallback)), nil
}

func (u *workShiftUsecase) registrationsFor(ctx context.Context) ([]entity.WorkShiftRegistration, error) {
	regs, err := u.workShiftRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list work shift registrations: %+v", err)
		return nil, err
	}

	identity, err := currentIdentity(ctx)
	if err != nil || entity.Role(identity.Role) != entity.RoleStaff {
		return regs, nil
	}

	own := make([]entity.WorkShiftRegistration, 0, len(regs))
	for _, reg := range regs {
		if reg.StaffID.ID == "" || reg.StaffID.ID == identity.UserID {
			own = append(own, reg)
		}
	}
	return own, nil
}

func (u *workShiftUsecase) refreshRegistrations(ctx context.Context, id, message string) *dto.RegistrationMutationResponse {
	resp := &dto.RegistrationMutationResponse{Message: message}

	if err := u.workShiftRepo.Invalidate(ctx, entity.KindWorkShift, id); err != nil {
		u.log.Warnf("Failed to invalidate work shift cache: %+v", err)
		resp.Stale = true
	}

	regs, err := u.registrationsFor(ctx)
	if err != nil {
		resp.Stale = true
		return resp
	}
	resp.Registrations = converter.RegistrationsToListResponse(regs)
	return resp
}

func (u *workShiftUsecase) refreshShifts(ctx context.Context, id, message string) *dto.ShiftMutationResponse {
	resp := &dto.ShiftMutationResponse{Message: message}

	if err := u.shiftRepo.Invalidate(ctx, entity.KindShift, id); err != nil {
		u.log.Warnf("Failed to invalidate shift cache: %+v", err)
		resp.Stale = true
	}

	shifts, err := u.ListShifts(ctx, "")
	if err != nil {
		resp.Stale = true
		return resp
	}
	resp.Shifts = shifts
	return resp
}

// hasActiveRegistration reports whether a pending or approved registration
// ties staffID to shiftID. A registration without a staff reference only
// counts when claimUnassigned is set, which is the case when staffID is the
// caller: the backend omits the reference on the caller's own list.
func hasActiveRegistration(regs []entity.WorkShiftRegistration, staffID, shiftID string, claimUnassigned bool) bool {
	for i := range regs {
		reg := &regs[i]
		if reg.ShiftID.ID != shiftID || !reg.IsActive() {
			continue
		}
		if reg.StaffID.ID == staffID || (claimUnassigned && reg.StaffID.ID == "") {
			return true
		}
	}
	return false
}
