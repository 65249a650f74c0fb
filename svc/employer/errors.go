package employer

import "errors"

var (
	ErrNotEmployer     = errors.New("employer.not_employer")
	ErrProfileNotFound = errors.New("employer.profile_not_found")
	ErrUpdateFailed    = errors.New("employer.update_failed")
)

const (
	msgUnauthorized    = "Unauthorized Employer"
	msgUpdated         = "Profile Updated Successfully"
	msgUpdateFailed    = "Something went Wrong, Profile not Updated"
	msgProfileNotFound = "Employer Profile Not Found"
	msgLoadFailed      = "Something went Wrong, Profile not Loaded"
	msgInvalidBody     = "Invalid request body"
)
