package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"salon-booking/internal/domain/entity"
)

const (
	MissingName      ValidationKind = "MissingName"
	InvalidEmail     ValidationKind = "InvalidEmail"
	InvalidPhone     ValidationKind = "InvalidPhone"
	PasswordTooShort ValidationKind = "PasswordTooShort"
)

const MinPasswordLength = 6

var (
	signUpEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	signUpPhonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

var signUpMessages = map[ValidationKind]string{
	MissingName:      "Vui lòng nhập tên đầy đủ",
	InvalidEmail:     "Email không hợp lệ",
	InvalidPhone:     "Số điện thoại không hợp lệ",
	PasswordTooShort: "Mật khẩu phải có ít nhất 6 ký tự",
}

func newSignUpError(kind ValidationKind) FieldError {
	return FieldError{Kind: kind, Message: signUpMessages[kind]}
}

// ValidateSignUp checks a customer registration form. Every field is
// checked; an empty result means the form may be submitted.
func ValidateSignUp(form entity.SignUp) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(form.Name) == "" {
		errs["name"] = newSignUpError(MissingName)
	}
	if !signUpEmailPattern.MatchString(form.Email) {
		errs["email"] = newSignUpError(InvalidEmail)
	}
	if !signUpPhonePattern.MatchString(form.Phone) {
		errs["phone"] = newSignUpError(InvalidPhone)
	}
	if utf8.RuneCountInString(form.Password) < MinPasswordLength {
		errs["password"] = newSignUpError(PasswordTooShort)
	}

	return errs
}
