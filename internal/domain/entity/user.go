package entity

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// User covers staff, customers and admins.
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Image   string `json:"image,omitempty"`
	Role    Role   `json:"role"`
	Gender  string `json:"gender,omitempty"`
	DOB     string `json:"dob,omitempty"`
	Address string `json:"address,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}

// NewUser is the payload for admin user creation.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
	Gender   string `json:"gender,omitempty"`
	DOB      string `json:"dob,omitempty"`
	Address  string `json:"address,omitempty"`
}

// SignUp is the payload for customer self-registration.
type SignUp struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfileUpdate is the editable part of a user's own profile.
type ProfileUpdate struct {
	UserID  string
	Name    string
	Phone   string
	Address string
	DOB     string
	Gender  string
}

// FormFields lays the update out as the backend's multipart form.
func (p *ProfileUpdate) FormFields() map[string]string {
	return map[string]string{
		"userId":  p.UserID,
		"name":    p.Name,
		"phone":   p.Phone,
		"address": p.Address,
		"dob":     p.DOB,
		"gender":  p.Gender,
	}
}

// Session is what the backend returns on login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
