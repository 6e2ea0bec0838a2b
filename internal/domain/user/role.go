package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is a closed set. Anything outside it is rejected at the boundary,
// never stored.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleRecruiter Role = "recruiter"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleApplicant:
		return RoleApplicant, nil
	case RoleRecruiter:
		return RoleRecruiter, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
