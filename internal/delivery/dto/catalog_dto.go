package dto

// Request DTOs

type ServiceRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Price       int64  `json:"price" validate:"gte=0"`
	Duration    int    `json:"duration" validate:"gte=1"`
	Image       string `json:"image"`
	CategoryID  string `json:"category"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=admin staff customer"`
	Gender   string `json:"gender"`
	DOB      string `json:"dob" validate:"isodate"`
	Address  string `json:"address"`
}

type UpdateStaffRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Image   string `json:"image"`
	Gender  string `json:"gender"`
	DOB     string `json:"dob" validate:"isodate"`
	Address string `json:"address"`
}

// Response DTOs

type ServiceResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Price          int64   `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Duration       int     `json:"duration"`
	Image          string  `json:"image,omitempty"`
	Rating         float64 `json:"rating"`
	CategoryID     string  `json:"category_id,omitempty"`
	CategoryName   string  `json:"category_name,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Image   string `json:"image,omitempty"`
	Role    string `json:"role"`
	Gender  string `json:"gender,omitempty"`
	DOB     string `json:"dob,omitempty"`
	Address string `json:"address,omitempty"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
