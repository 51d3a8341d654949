package user

import "errors"

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrMissingBranch   = errors.New("employee must belong to a branch")
	ErrBranchForbidden = errors.New("branch outside of actor scope")
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
