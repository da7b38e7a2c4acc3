package auth

import "fmt"

// Role is the closed set of principal kinds. Anything else coming out of the
// store or a token is rejected at parse time.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

func (r Role) String() string {
	return string(r)
}
