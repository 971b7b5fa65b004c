package entity

// RegistrationStatus represents the status of a work shift registration
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
	RegistrationStatusCanceled RegistrationStatus = "canceled"
)

// WorkShiftRegistration is a staff member's claim on a shift.
type WorkShiftRegistration struct {
	ID      string             `json:"_id"`
	StaffID Ref                `json:"staffId"`
	ShiftID Ref                `json:"shiftId"`
	Status  RegistrationStatus `json:"status"`
}

func (w *WorkShiftRegistration) IsPending() bool {
	return w.Status == RegistrationStatusPending
}

// IsActive reports whether the registration still holds the shift.
func (w *WorkShiftRegistration) IsActive() bool {
	return w.Status == RegistrationStatusPending || w.Status == RegistrationStatusApproved
}

// CanCancel reports whether the owning staff member may cancel it.
func (w *WorkShiftRegistration) CanCancel() bool {
	return w.IsPending()
}

type NewWorkShiftRegistration struct {
	StaffID string `json:"staffId"`
	ShiftID string `json:"shiftId"`
}
