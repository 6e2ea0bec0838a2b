package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Location    string
	Salary      int64
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Update carries a partial change set; nil fields are left untouched.
// OwnerID is deliberately absent, ownership never changes after creation.
type Update struct {
	Title       *string
	Description *string
	Location    *string
	Salary      *int64
	Deadline    *time.Time
}
