package account

import (
	"strings"

	"github.com/dmitrymomot/jobportal/pkg/validator"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string `json:"name" validate:"required,max=255"`
	Username        string `json:"userName" validate:"required,max=255,username"`
	Email           string `json:"email" validate:"required,max=255,email"`
	Password        string `json:"password" validate:"min=6,max_bytes=72,password_strength"`
	ConfirmPassword string `json:"confirmPassword,omitempty" validate:"omitempty,eqfield=Password"`
	Role            Role   `json:"role" validate:"omitempty,oneof=applicant employer"`
}

// bcrypt accepts at most 72 bytes of password.
const msgPasswordTooLong = "Password must not exceed 72 bytes"

var registerMessages = validator.Messages{
	"name.required":              "Name is Required",
	"name.max":                   "Name must be less than 255 characters",
	"userName.required":          "Username is Required",
	"userName.max":               "Username must be less than 255 characters",
	"userName.username":          "Username can Only Contain Letters, Numbers, Underscores & Hyphens",
	"email.required":             "Email is Required",
	"email.max":                  "Email must be less than 255 characters",
	"email.email":                "Valid Email Address is Required",
	"password.min":               "Password is Required with Minimum 6 Characters",
	"password.max_bytes":         msgPasswordTooLong,
	"password.password_strength": "Password must contain atleast one lowercase letter, one uppercase letter, one digit",
	"confirmPassword.eqfield":    "Passwords is not Matching",
	"role.oneof":                 "Role must be Applicant or Employer",
}

// normalize trims the text fields, lowercases the email and applies the
// default role.
func (in *RegisterInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	if in.Role == "" {
		in.Role = RoleApplicant
	}
}

// Validate normalizes the input in place and checks it.
func (in *RegisterInput) Validate() error {
	in.normalize()
	return validator.Struct(in, registerMessages)
}

// LoginInput is the login form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,max=255,email"`
	Password string `json:"password" validate:"min=6,max_bytes=72"`
}

var loginMessages = validator.Messages{
	"email.required":     "Email is Required",
	"email.max":          "Email must be less than 255 characters",
	"email.email":        "Valid Email Address is Required",
	"password.min":       "Password is Required with Minimum 6 Characters",
	"password.max_bytes": msgPasswordTooLong,
}

// Validate normalizes the input in place and checks it.
func (in *LoginInput) Validate() error {
	in.Email = normalizeEmail(in.Email)
	return validator.Struct(in, loginMessages)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
