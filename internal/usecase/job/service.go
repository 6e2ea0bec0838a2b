package job

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/policy"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type CreateInput struct {
	Title       string
	Description string
	Location    string
	Salary      int64
	Deadline    *time.Time
}

// ListingCache fronts the public listing; the redis implementation degrades
// to a no-op when unavailable.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

const cacheKeyAll = "jobs:all"

type Service struct {
	jobs  job.Repository
	cache ListingCache
}

func NewService(jobs job.Repository, cache ListingCache) *Service {
	return &Service{jobs: jobs, cache: cache}
}

// ListAll is the public listing, readable without authentication.
func (s *Service) ListAll(ctx context.Context) ([]job.Job, error) {
	if s.cache != nil {
		var cached []job.Job
		if hit, err := s.cache.GetJSON(ctx, cacheKeyAll, &cached); err == nil && hit {
			return cached, nil
		}
	}

	all, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKeyAll, all)
	}
	return all, nil
}

func (s *Service) ListOwned(ctx context.Context, callerID uuid.UUID, callerRole user.Role) ([]job.Job, error) {
	if err := policy.AllowRole(callerRole, user.RoleRecruiter); err != nil {
		return nil, err
	}

	owned, err := s.jobs.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}
	return owned, nil
}

func (s *Service) Create(ctx context.Context, callerID uuid.UUID, callerRole user.Role, in CreateInput) (job.Job, error) {
	if err := policy.AllowRole(callerRole, user.RoleRecruiter); err != nil {
		return job.Job{}, err
	}

	title := strings.TrimSpace(in.Title)
	location := strings.TrimSpace(in.Location)
	if title == "" || location == "" {
		return job.Job{}, ErrInvalidInput
	}

	j := job.Job{
		ID:          uuid.New(),
		OwnerID:     callerID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Location:    location,
		Salary:      in.Salary,
		Deadline:    in.Deadline,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	s.invalidateListing(ctx)
	return j, nil
}

func (s *Service) Update(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID, in job.Update) (job.Job, error) {
	current, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	if err := policy.AllowOwner(callerID, current.OwnerID); err != nil {
		return job.Job{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return job.Job{}, ErrInvalidInput
		}
		current.Title = title
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Location != nil {
		location := strings.TrimSpace(*in.Location)
		if location == "" {
			return job.Job{}, ErrInvalidInput
		}
		current.Location = location
	}
	if in.Salary != nil {
		current.Salary = *in.Salary
	}
	if in.Deadline != nil {
		current.Deadline = in.Deadline
	}

	if err := s.jobs.Update(ctx, current); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	s.invalidateListing(ctx)
	return current, nil
}

func (s *Service) Delete(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID) error {
	current, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}

	if err := policy.AllowOwner(callerID, current.OwnerID); err != nil {
		return err
	}

	if err := s.jobs.DeleteCascade(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *Service) invalidateListing(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, cacheKeyAll)
	}
}
