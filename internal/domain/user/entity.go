package user

import (
	"github.com/google/uuid"
)

// Actor is the authenticated staff member on whose behalf a command or query runs.
// Employees are pinned to a single branch; admins see every branch.
type Actor struct {
	userID   uuid.UUID
	role     Role
	branchID *uuid.UUID
}

func NewActor(userID uuid.UUID, role Role, branchID *uuid.UUID) (Actor, error) {
	if !role.IsValid() {
		return Actor{}, ErrInvalidRole
	}
	if role == RoleEmployee && (branchID == nil || *branchID == uuid.Nil) {
		return Actor{}, ErrMissingBranch
	}
	if branchID != nil {
		id := *branchID
		branchID = &id
	}
	return Actor{userID: userID, role: role, branchID: branchID}, nil
}

// SystemActor is used by jobs and the payment webhook.
func SystemActor() Actor {
	return Actor{userID: uuid.Nil, role: RoleAdmin}
}

func (a Actor) UserID() uuid.UUID    { return a.userID }
func (a Actor) Role() Role           { return a.role }
func (a Actor) BranchID() *uuid.UUID { return a.branchID }
func (a Actor) IsAdmin() bool        { return a.role == RoleAdmin }

func (a Actor) CanAccessBranch(branchID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return a.branchID != nil && *a.branchID == branchID
}

// ScopeBranch resolves the branch filter a list query may use.
// Admins get what they asked for (nil means all branches); employees always get their own branch.
func (a Actor) ScopeBranch(requested *uuid.UUID) (*uuid.UUID, error) {
	if a.IsAdmin() {
		return requested, nil
	}
	if a.branchID == nil {
		return nil, ErrMissingBranch
	}
	if requested != nil && *requested != *a.branchID {
		return nil, ErrBranchForbidden
	}
	own := *a.branchID
	return &own, nil
}
