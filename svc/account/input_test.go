package account_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobportal/pkg/validator"
	"github.com/dmitrymomot/jobportal/svc/account"
)

func TestRegisterInput_Validate(t *testing.T) {
	t.Parallel()

	t.Run("normalizes before checking", func(t *testing.T) {
		t.Parallel()
		in := validRegistration()
		in.Name = "  Jane Doe "
		in.Email = "  JANE@Example.COM "

		require.NoError(t, in.Validate())
		assert.Equal(t, "Jane Doe", in.Name)
		assert.Equal(t, "jane@example.com", in.Email)
		assert.Equal(t, account.RoleApplicant, in.Role)
	})

	tests := []struct {
		name    string
		mutate  func(*account.RegisterInput)
		field   string
		message string
	}{
		{"missing name", func(in *account.RegisterInput) { in.Name = " " }, "name", "Name is Required"},
		{"long name", func(in *account.RegisterInput) { in.Name = strings.Repeat("a", 256) }, "name", "Name must be less than 255 characters"},
		{"bad username", func(in *account.RegisterInput) { in.Username = "jane doe" }, "userName", "Username can Only Contain Letters, Numbers, Underscores & Hyphens"},
		{"bad email", func(in *account.RegisterInput) { in.Email = "jane" }, "email", "Valid Email Address is Required"},
		{"short password", func(in *account.RegisterInput) { in.Password, in.ConfirmPassword = "Ab1", "Ab1" }, "password", "Password is Required with Minimum 6 Characters"},
		{"weak password", func(in *account.RegisterInput) { in.Password, in.ConfirmPassword = "abcdefgh", "abcdefgh" }, "password", "Password must contain atleast one lowercase letter, one uppercase letter, one digit"},
		{"password over 72 bytes", func(in *account.RegisterInput) {
			in.Password = "Aa1" + strings.Repeat("x", 80)
			in.ConfirmPassword = in.Password
		}, "password", "Password must not exceed 72 bytes"},
		{"multibyte password over 72 bytes", func(in *account.RegisterInput) {
			in.Password = "Aa1" + strings.Repeat("é", 35)
			in.ConfirmPassword = in.Password
		}, "password", "Password must not exceed 72 bytes"},
		{"confirmation mismatch", func(in *account.RegisterInput) { in.ConfirmPassword = "Other123" }, "confirmPassword", "Passwords is not Matching"},
		{"admin role", func(in *account.RegisterInput) { in.Role = account.RoleAdmin }, "role", "Role must be Applicant or Employer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validRegistration()
			tt.mutate(&in)

			ve := validator.Extract(in.Validate())
			require.NotNil(t, ve)
			require.True(t, ve.Has(tt.field), "errors: %v", ve)
			for _, e := range ve {
				if e.Field == tt.field {
					assert.Equal(t, tt.message, e.Message)
				}
			}
		})
	}

	t.Run("72 byte password is accepted", func(t *testing.T) {
		t.Parallel()
		in := validRegistration()
		in.Password = "Aa1" + strings.Repeat("x", 69)
		in.ConfirmPassword = in.Password
		assert.NoError(t, in.Validate())
	})

	t.Run("confirmation is optional", func(t *testing.T) {
		t.Parallel()
		in := validRegistration()
		in.ConfirmPassword = ""
		assert.NoError(t, in.Validate())
	})
}

func TestRole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "employer", account.RoleEmployer.String())
}
