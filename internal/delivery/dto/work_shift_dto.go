package dto

// Request DTOs

type RegisterShiftRequest struct {
	ShiftID string `json:"shiftId" validate:"required"`
}

type AssignShiftRequest struct {
	StaffID string `json:"staffId" validate:"required"`
	ShiftID string `json:"shiftId" validate:"required"`
}

type CreateShiftRequest struct {
	ShiftType string `json:"shiftType" validate:"required,max=100"`
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
	Max       int    `json:"max" validate:"gte=0"`
}

// Response DTOs

type ShiftResponse struct {
	ID        string `json:"id"`
	ShiftType string `json:"shift_type"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Max       int    `json:"max"`
}

type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Total  int             `json:"total"`
}

type RegistrationResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name,omitempty"`
	ShiftID   string `json:"shift_id"`
	ShiftName string `json:"shift_name,omitempty"`
	ShiftType string `json:"shift_type,omitempty"`
	ShiftDate string `json:"shift_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Status    string `json:"status"`
	CanCancel bool   `json:"can_cancel"`
}

type RegistrationListResponse struct {
	Pending []RegistrationResponse `json:"pending"`
	History []RegistrationResponse `json:"history"`
}

type RegistrationMutationResponse struct {
	Message       string                    `json:"-"`
	Stale         bool                      `json:"stale"`
	Registrations *RegistrationListResponse `json:"registrations,omitempty"`
}

type ShiftMutationResponse struct {
	Message string             `json:"-"`
	Stale   bool               `json:"stale"`
	Shifts  *ShiftListResponse `json:"shifts,omitempty"`
}
