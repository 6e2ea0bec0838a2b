// Package policy holds the authorization decisions. Every permission check
// in the service layer goes through these functions; none of them touch
// storage or carry state.
package policy

import (
	"errors"

	"github.com/google/uuid"

	"hireboard/internal/domain/user"
)

var ErrForbidden = errors.New("forbidden")

// AllowRole permits the caller when its role is in the allowed set.
func AllowRole(role user.Role, allowed ...user.Role) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return ErrForbidden
}

// AllowOwner permits the caller only when it owns the resource.
func AllowOwner(callerID, ownerID uuid.UUID) error {
	if callerID == uuid.Nil || callerID != ownerID {
		return ErrForbidden
	}
	return nil
}
