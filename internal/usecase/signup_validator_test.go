package usecase

import (
	"testing"

	"salon-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func validSignUp() entity.SignUp {
	return entity.SignUp{
		Name:     "Nguyễn Thị Lan",
		Email:    "lan@example.com",
		Phone:    "0901234567",
		Password: "secret",
	}
}

func TestValidateSignUp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.SignUp)
		want   map[string]string
	}{
		{"valid", func(*entity.SignUp) {}, map[string]string{}},
		{"blank name", func(f *entity.SignUp) { f.Name = "   " }, map[string]string{"name": "Vui lòng nhập tên đầy đủ"}},
		{"email without domain dot", func(f *entity.SignUp) { f.Email = "lan@example" }, map[string]string{"email": "Email không hợp lệ"}},
		{"email with space", func(f *entity.SignUp) { f.Email = "lan @example.com" }, map[string]string{"email": "Email không hợp lệ"}},
		{"phone too short", func(f *entity.SignUp) { f.Phone = "090123456" }, map[string]string{"phone": "Số điện thoại không hợp lệ"}},
		{"phone with separators", func(f *entity.SignUp) { f.Phone = "090-123-4567" }, map[string]string{"phone": "Số điện thoại không hợp lệ"}},
		{"phone of fifteen digits", func(f *entity.SignUp) { f.Phone = "849012345678901" }, map[string]string{}},
		{"short password", func(f *entity.SignUp) { f.Password = "12345" }, map[string]string{"password": "Mật khẩu phải có ít nhất 6 ký tự"}},
		{"password counted in characters", func(f *entity.SignUp) { f.Password = "mậtkhẩ" }, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSignUp()
			tt.mutate(&form)

			assert.Equal(t, tt.want, ValidateSignUp(form).Messages())
		})
	}
}

func TestValidateSignUp_ReportsEveryField(t *testing.T) {
	errs := ValidateSignUp(entity.SignUp{})

	assert.Len(t, errs, 4)
	assert.Equal(t, MissingName, errs["name"].Kind)
	assert.Equal(t, PasswordTooShort, errs["password"].Kind)
}
