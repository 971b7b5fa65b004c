package entity

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID            string `json:"_id,omitempty"`
	AppointmentID Ref    `json:"appointmentId"`
	CustomerID    Ref    `json:"customerId"`
	ServiceID     Ref    `json:"serviceId"`
	StaffID       Ref    `json:"staffId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}
