package usecase

import (
	"context"

	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	ucjob "hireboard/internal/usecase/job"

	"github.com/google/uuid"
)

type JobUsecase interface {
	ListAll(ctx context.Context) ([]job.Job, error)
	ListOwned(ctx context.Context, callerID uuid.UUID, callerRole user.Role) ([]job.Job, error)
	Create(ctx context.Context, callerID uuid.UUID, callerRole user.Role, in ucjob.CreateInput) (job.Job, error)
	Update(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID, in job.Update) (job.Job, error)
	Delete(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID) error
}

type Job struct {
	svc *ucjob.Service
}

func NewJobUsecase(jobs job.Repository, cache ucjob.ListingCache) *Job {
	return &Job{svc: ucjob.NewService(jobs, cache)}
}

func (u *Job) ListAll(ctx context.Context) ([]job.Job, error) {
	return u.svc.ListAll(ctx)
}

func (u *Job) ListOwned(ctx context.Context, callerID uuid.UUID, callerRole user.Role) ([]job.Job, error) {
	return u.svc.ListOwned(ctx, callerID, callerRole)
}

func (u *Job) Create(ctx context.Context, callerID uuid.UUID, callerRole user.Role, in ucjob.CreateInput) (job.Job, error) {
	return u.svc.Create(ctx, callerID, callerRole, in)
}

func (u *Job) Update(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID, in job.Update) (job.Job, error) {
	return u.svc.Update(ctx, callerID, jobID, in)
}

func (u *Job) Delete(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID) error {
	return u.svc.Delete(ctx, callerID, jobID)
}
