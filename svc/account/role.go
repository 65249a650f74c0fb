package account

// Role is the flat role tag stored on a user.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleEmployer  Role = "employer"
	// RoleAdmin exists on stored records only; it cannot be chosen at registration.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}
