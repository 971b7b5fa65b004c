package dto

// Request DTOs

type CreateAppointmentRequest struct {
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	StaffID   string `json:"staffId"`
	Notes     string `json:"notes"`
}

type AppointmentFilter struct {
	Status string
	Page   int
	Limit  int
}

// Response DTOs

type AppointmentResponse struct {
	ID             string   `json:"id"`
	CustomerID     string   `json:"customer_id"`
	CustomerName   string   `json:"customer_name,omitempty"`
	CustomerPhone  string   `json:"customer_phone,omitempty"`
	CustomerImage  string   `json:"customer_image,omitempty"`
	StaffID        string   `json:"staff_id,omitempty"`
	StaffName      string   `json:"staff_name,omitempty"`
	ServiceID      string   `json:"service_id"`
	ServiceName    string   `json:"service_name,omitempty"`
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	TotalPrice     int64    `json:"total_price"`
	FormattedPrice string   `json:"formatted_price"`
	Status         string   `json:"status"`
	Notes          string   `json:"notes,omitempty"`
	IsReviewed     bool     `json:"is_reviewed"`
	CanReview      bool     `json:"can_review"`
	Actions        []string `json:"actions"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

type MyAppointmentsResponse struct {
	Upcoming []AppointmentResponse `json:"upcoming"`
	History  []AppointmentResponse `json:"history"`
}

// AppointmentMutationResponse carries the refreshed list after a transition.
// Stale is set when the mutation succeeded but the refresh did not.
type AppointmentMutationResponse struct {
	Message      string                `json:"-"`
	Stale        bool                  `json:"stale"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type SendRemindersRequest struct {
	AppointmentIDs []string `json:"appointmentIds"`
}

type SendRemindersResponse struct {
	Message string `json:"-"`
	Sent    int    `json:"sent"`
}
