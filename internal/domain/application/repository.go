package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")
)

type Repository interface {
	// Create fails with ErrDuplicate when an application for the same
	// (job, applicant) pair already exists. The composite unique index on
	// (job_id, applicant_id) makes this hold under concurrent writers.
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]WithJob, error)
	ListByJobOwner(ctx context.Context, ownerID uuid.UUID) ([]ForRecruiter, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Application, error)
}
