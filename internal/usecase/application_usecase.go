package usecase

import (
	"context"

	"hireboard/internal/domain/application"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	ucapp "hireboard/internal/usecase/application"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, callerID uuid.UUID, callerRole user.Role, jobID uuid.UUID, coverLetter string) (application.Application, error)
	ListForApplicant(ctx context.Context, callerID uuid.UUID) ([]application.WithJob, error)
	ListForRecruiter(ctx context.Context, callerID uuid.UUID, callerRole user.Role) ([]application.ForRecruiter, error)
	UpdateStatus(ctx context.Context, callerID uuid.UUID, applicationID uuid.UUID, rawStatus string) (application.Application, error)
}

type Application struct {
	svc *ucapp.Service
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository) *Application {
	return &Application{svc: ucapp.NewService(applications, jobs)}
}

func (u *Application) Apply(ctx context.Context, callerID uuid.UUID, callerRole user.Role, jobID uuid.UUID, coverLetter string) (application.Application, error) {
	return u.svc.Apply(ctx, callerID, callerRole, jobID, coverLetter)
}

func (u *Application) ListForApplicant(ctx context.Context, callerID uuid.UUID) ([]application.WithJob, error) {
	return u.svc.ListForApplicant(ctx, callerID)
}

func (u *Application) ListForRecruiter(ctx context.Context, callerID uuid.UUID, callerRole user.Role) ([]application.ForRecruiter, error) {
	return u.svc.ListForRecruiter(ctx, callerID, callerRole)
}

func (u *Application) UpdateStatus(ctx context.Context, callerID uuid.UUID, applicationID uuid.UUID, rawStatus string) (application.Application, error) {
	return u.svc.UpdateStatus(ctx, callerID, applicationID, rawStatus)
}
