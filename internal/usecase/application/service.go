package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hireboard/internal/domain/application"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/policy"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type Service struct {
	applications application.Repository
	jobs         job.Repository
}

func NewService(applications application.Repository, jobs job.Repository) *Service {
	return &Service{applications: applications, jobs: jobs}
}

func (s *Service) Apply(ctx context.Context, callerID uuid.UUID, callerRole user.Role, jobID uuid.UUID, coverLetter string) (application.Application, error) {
	if err := policy.AllowRole(callerRole, user.RoleApplicant); err != nil {
		return application.Application{}, err
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, job.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	exists, err := s.applications.ExistsByJobAndApplicant(ctx, jobID, callerID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, application.ErrDuplicate
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: callerID,
		CoverLetter: strings.TrimSpace(coverLetter),
		Status:      application.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.applications.Create(ctx, a); err != nil {
		// Concurrent submits slip past the existence check; the composite
		// unique index turns the loser into ErrDuplicate.
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, application.ErrDuplicate
		}
		return application.Application{}, ErrInternal
	}

	return a, nil
}

// ListForApplicant returns the caller's applications joined with their jobs,
// most recent first. No applications is a successful empty result.
func (s *Service) ListForApplicant(ctx context.Context, callerID uuid.UUID) ([]application.WithJob, error) {
	list, err := s.applications.ListByApplicant(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (s *Service) ListForRecruiter(ctx context.Context, callerID uuid.UUID, callerRole user.Role) ([]application.ForRecruiter, error) {
	if err := policy.AllowRole(callerRole, user.RoleRecruiter); err != nil {
		return nil, err
	}

	list, err := s.applications.ListByJobOwner(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

// UpdateStatus lets the recruiter who owns the parent job move an application
// to any status in the closed set.
func (s *Service) UpdateStatus(ctx context.Context, callerID uuid.UUID, applicationID uuid.UUID, rawStatus string) (application.Application, error) {
	status, err := application.ParseStatus(strings.TrimSpace(rawStatus))
	if err != nil {
		return application.Application{}, application.ErrInvalidStatus
	}

	a, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	parent, err := s.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if err := policy.AllowOwner(callerID, parent.OwnerID); err != nil {
		return application.Application{}, err
	}

	updated, err := s.applications.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}
	return updated, nil
}
