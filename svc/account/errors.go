package account

import "errors"

var (
	ErrUsernameTaken      = errors.New("account.username_taken")
	ErrEmailTaken         = errors.New("account.email_taken")
	ErrInvalidCredentials = errors.New("account.invalid_credentials")
	ErrUnsupportedRole    = errors.New("account.unsupported_role")
	ErrRegistration       = errors.New("account.registration_failed")
	ErrLogin              = errors.New("account.login_failed")
)

// User facing messages returned by the HTTP handlers.
const (
	msgRegistered         = "Registration Successful"
	msgLoggedIn           = "Login Successful"
	msgLoggedOut          = "Logout Successful"
	msgRegistrationFailed = "Registration Failed"
	msgLoginFailed        = "Login Failed"
	msgInvalidCredentials = "Invalid Credentials"
	msgUsernameTaken      = "Username Already Exists"
	msgEmailTaken         = "Email Already Exists"
	msgInvalidBody        = "Invalid request body"
	msgUnauthorized       = "Unauthorized"
	msgTooManyRequests    = "Too many requests, try again later"
)
