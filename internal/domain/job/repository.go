package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Job, error)
	Update(ctx context.Context, j Job) error

	// DeleteCascade removes the job and every application referencing it
	// in a single transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}
