package entity

import "strings"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is exposed from s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// AppointmentAction is a remote transition the UI may offer for an appointment.
type AppointmentAction string

const (
	ActionConfirm  AppointmentAction = "confirm"
	ActionComplete AppointmentAction = "complete"
	ActionCancel   AppointmentAction = "cancel"
	ActionDelete   AppointmentAction = "delete"
)

// transitionMap lists the statuses each action may start from.
var transitionMap = map[AppointmentAction][]AppointmentStatus{
	ActionConfirm:  {AppointmentStatusPending},
	ActionComplete: {AppointmentStatusConfirmed},
	ActionCancel:   {AppointmentStatusPending, AppointmentStatusConfirmed},
	ActionDelete:   {AppointmentStatusPending, AppointmentStatusConfirmed},
}

// roleActions lists the actions each role is shown.
var roleActions = map[Role][]AppointmentAction{
	RoleAdmin:    {ActionConfirm, ActionComplete, ActionCancel, ActionDelete},
	RoleStaff:    {ActionConfirm, ActionComplete, ActionCancel},
	RoleCustomer: {ActionCancel},
}

// Target returns the status an action leads to. Delete has no target.
func (a AppointmentAction) Target() (AppointmentStatus, bool) {
	switch a {
	case ActionConfirm:
		return AppointmentStatusConfirmed, true
	case ActionComplete:
		return AppointmentStatusCompleted, true
	case ActionCancel:
		return AppointmentStatusCancelled, true
	}
	return "", false
}

// ValidTransition reports whether action may be applied to an appointment in status from.
func ValidTransition(action AppointmentAction, from AppointmentStatus) bool {
	for _, status := range transitionMap[action] {
		if status == from {
			return true
		}
	}
	return false
}

// Appointment is a scheduled service booking. The backend owns it; the web
// tier only holds copies fetched per request.
type Appointment struct {
	ID         string            `json:"_id"`
	CustomerID Ref               `json:"customerId"`
	StaffID    Ref               `json:"staffId"`
	ServiceID  Ref               `json:"serviceId"`
	Date       string            `json:"date"`
	StartTime  string            `json:"startTime"`
	TotalPrice int64             `json:"totalPrice"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	IsReviewed bool              `json:"isReviewed"`
	CreatedAt  string            `json:"createdAt,omitempty"`
}

// Day returns the calendar date part (YYYY-MM-DD) of Date, which the backend
// may send either bare or as a full ISO timestamp.
func (a *Appointment) Day() string {
	if i := strings.IndexByte(a.Date, 'T'); i >= 0 {
		return a.Date[:i]
	}
	return a.Date
}

func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsUpcoming reports whether the appointment belongs in the "upcoming" tab.
func (a *Appointment) IsUpcoming() bool {
	return !a.Status.IsTerminal()
}

// CanReview reports whether a review may be submitted for the appointment.
func (a *Appointment) CanReview() bool {
	return a.IsCompleted() && !a.IsReviewed
}

// AvailableActions returns the actions a viewer with role may trigger.
// Terminal appointments expose none.
func (a *Appointment) AvailableActions(role Role) []AppointmentAction {
	actions := []AppointmentAction{}
	if a.Status.IsTerminal() {
		return actions
	}
	for _, action := range roleActions[role] {
		if ValidTransition(action, a.Status) {
			actions = append(actions, action)
		}
	}
	return actions
}

// NewAppointment is the payload sent to the backend when booking.
type NewAppointment struct {
	AppointmentDate string  `json:"appointmentDate"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	Notes           string  `json:"notes"`
	CustomerID      string  `json:"customerId"`
	StaffID         *string `json:"staffId"`
	ServiceID       string  `json:"serviceId"`
	TotalPrice      int64   `json:"totalPrice"`
}
