package converter

import (
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
)

func ShiftToResponse(shift *entity.Shift) *dto.ShiftResponse {
	if shift == nil {
		return nil
	}
	return &dto.ShiftResponse{
		ID:        shift.ID,
		ShiftType: shift.ShiftType,
		Date:      shift.Day(),
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
		Max:       shift.Max,
	}
}

func ShiftsToResponses(shifts []entity.Shift) []dto.ShiftResponse {
	responses := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *ShiftToResponse(&shifts[i])
	}
	return responses
}

func RegistrationToResponse(reg *entity.WorkShiftRegistration) *dto.RegistrationResponse {
	if reg == nil {
		return nil
	}
	shiftName := reg.ShiftID.Name
	if shiftName == "" {
		shiftName = reg.ShiftID.ShiftType
	}
	return &dto.RegistrationResponse{
		ID:        reg.ID,
		StaffID:   reg.StaffID.ID,
		StaffName: reg.StaffID.Name,
		ShiftID:   reg.ShiftID.ID,
		ShiftName: shiftName,
		ShiftType: reg.ShiftID.ShiftType,
		ShiftDate: reg.ShiftID.Day(),
		StartTime: reg.ShiftID.StartTime,
		EndTime:   reg.ShiftID.EndTime,
		Status:    string(reg.Status),
		CanCancel: reg.CanCancel(),
	}
}

// RegistrationsToListResponse splits registrations into the pending queue and
// everything already decided.
func RegistrationsToListResponse(regs []entity.WorkShiftRegistration) *dto.RegistrationListResponse {
	list := &dto.RegistrationListResponse{
		Pending: []dto.RegistrationResponse{},
		History: []dto.RegistrationResponse{},
	}
	for i := range regs {
		resp := RegistrationToResponse(&regs[i])
		if regs[i].IsPending() {
			list.Pending = append(list.Pending, *resp)
		} else {
			list.History = append(list.History, *resp)
		}
	}
	return list
}
