package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles.
type Role int

const (
	RoleStandard Role = iota
	RoleMentor
)

// ErrUnknownRole is returned by ParseRole for values outside the set.
type ErrUnknownRole string

func (e ErrUnknownRole) Error() string {
	return fmt.Sprintf("unknown role %q", string(e))
}

// ParseRole accepts "standard", "mentor" and the legacy alias "user".
// An empty string yields RoleStandard.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "user":
		return RoleStandard, nil
	case "mentor":
		return RoleMentor, nil
	default:
		return RoleStandard, ErrUnknownRole(s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleMentor:
		return "mentor"
	default:
		return "standard"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
