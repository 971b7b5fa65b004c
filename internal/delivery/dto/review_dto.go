package dto

type CreateReviewRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment" validate:"max=1000"`
}

type ReviewResponse struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	ServiceID     string `json:"service_id"`
	ServiceName   string `json:"service_name,omitempty"`
	StaffID       string `json:"staff_id,omitempty"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
