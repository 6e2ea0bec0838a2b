package application

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"hireboard/internal/domain/application"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/policy"
)

type fakeJobRepo struct {
	byID map[uuid.UUID]job.Job
}

func newFakeJobRepo(jobs ...job.Job) *fakeJobRepo {
	r := &fakeJobRepo{byID: map[uuid.UUID]job.Job{}}
	for _, j := range jobs {
		r.byID[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) error {
	r.byID[j.ID] = j
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) ListAll(ctx context.Context) ([]job.Job, error) { return nil, nil }

func (r *fakeJobRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]job.Job, error) {
	return nil, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) error { return nil }

func (r *fakeJobRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeApplicationRepo struct {
	byID map[uuid.UUID]application.Application
	jobs *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: map[uuid.UUID]application.Application{}, jobs: jobs}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a application.Application) error {
	for _, cur := range r.byID {
		if cur.JobID == a.JobID && cur.ApplicantID == a.ApplicantID {
			return application.ErrDuplicate
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (r *fakeApplicationRepo) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	for _, cur := range r.byID {
		if cur.JobID == jobID && cur.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.WithJob, error) {
	out := make([]application.WithJob, 0)
	for _, a := range r.byID {
		if a.ApplicantID != applicantID {
			continue
		}
		j := r.jobs.byID[a.JobID]
		out = append(out, application.WithJob{
			Application: a,
			JobTitle:    j.Title,
			JobLocation: j.Location,
			JobSalary:   j.Salary,
			JobOwnerID:  j.OwnerID,
		})
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) ListByJobOwner(ctx context.Context, ownerID uuid.UUID) ([]application.ForRecruiter, error) {
	out := make([]application.ForRecruiter, 0)
	for _, a := range r.byID {
		j, ok := r.jobs.byID[a.JobID]
		if !ok || j.OwnerID != ownerID {
			continue
		}
		out = append(out, application.ForRecruiter{
			Application: a,
			JobTitle:    j.Title,
			JobLocation: j.Location,
		})
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.Status = status
	r.byID[id] = a
	return a, nil
}

func newTestService(jobs ...job.Job) (*Service, *fakeApplicationRepo) {
	jobRepo := newFakeJobRepo(jobs...)
	appRepo := newFakeApplicationRepo(jobRepo)
	return NewService(appRepo, jobRepo), appRepo
}

func TestApply(t *testing.T) {
	j := job.Job{ID: uuid.New(), OwnerID: uuid.New(), Title: "Eng", Location: "NYC"}
	svc, _ := newTestService(j)
	applicant := uuid.New()

	a, err := svc.Apply(context.Background(), applicant, user.RoleApplicant, j.ID, "hi")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if a.Status != application.StatusPending {
		t.Errorf("status = %q, want pending", a.Status)
	}
	if a.JobID != j.ID || a.ApplicantID != applicant {
		t.Errorf("application references wrong entities: %+v", a)
	}
}

func TestApplyMissingJob(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Apply(context.Background(), uuid.New(), user.RoleApplicant, uuid.New(), "hi")
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("err = %v, want job.ErrNotFound", err)
	}
}

func TestApplyTwiceSamePair(t *testing.T) {
	j := job.Job{ID: uuid.New(), OwnerID: uuid.New(), Title: "Eng", Location: "NYC"}
	svc, repo := newTestService(j)
	applicant := uuid.New()
	ctx := context.Background()

	if _, err := svc.Apply(ctx, applicant, user.RoleApplicant, j.ID, "hi"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := svc.Apply(ctx, applicant, user.RoleApplicant, j.ID, "hi again"); !errors.Is(err, application.ErrDuplicate) {
		t.Fatalf("second apply: err = %v, want ErrDuplicate", err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("applications stored = %d, want exactly 1", len(repo.byID))
	}
}

func TestApplyRequiresApplicantRole(t *testing.T) {
	j := job.Job{ID: uuid.New(), OwnerID: uuid.New(), Title: "Eng", Location: "NYC"}
	svc, _ := newTestService(j)

	_, err := svc.Apply(context.Background(), uuid.New(), user.RoleRecruiter, j.ID, "hi")
	if !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("recruiter apply: err = %v, want ErrForbidden", err)
	}
}

func TestListForApplicantNewestFirst(t *testing.T) {
	owner := uuid.New()
	j1 := job.Job{ID: uuid.New(), OwnerID: owner, Title: "First", Location: "NYC"}
	j2 := job.Job{ID: uuid.New(), OwnerID: owner, Title: "Second", Location: "NYC"}
	jobRepo := newFakeJobRepo(j1, j2)
	appRepo := newFakeApplicationRepo(jobRepo)
	svc := NewService(appRepo, jobRepo)

	applicant := uuid.New()
	now := time.Now()
	appRepo.byID[uuid.New()] = application.Application{
		ID: uuid.New(), JobID: j1.ID, ApplicantID: applicant,
		Status: application.StatusPending, CreatedAt: now.Add(-time.Hour),
	}
	appRepo.byID[uuid.New()] = application.Application{
		ID: uuid.New(), JobID: j2.ID, ApplicantID: applicant,
		Status: application.StatusPending, CreatedAt: now,
	}

	list, err := svc.ListForApplicant(context.Background(), applicant)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].JobTitle != "Second" || list[1].JobTitle != "First" {
		t.Errorf("order = [%s, %s], want newest first", list[0].JobTitle, list[1].JobTitle)
	}
}

func TestListForApplicantEmpty(t *testing.T) {
	svc, _ := newTestService()

	list, err := svc.ListForApplicant(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("empty list is not an error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len = %d, want 0", len(list))
	}
}

func TestListForRecruiterRequiresRole(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ListForRecruiter(context.Background(), uuid.New(), user.RoleApplicant)
	if !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestUpdateStatusOwnerOnly(t *testing.T) {
	owner := uuid.New()
	j := job.Job{ID: uuid.New(), OwnerID: owner, Title: "Eng", Location: "NYC"}
	svc, repo := newTestService(j)
	ctx := context.Background()

	a, err := svc.Apply(ctx, uuid.New(), user.RoleApplicant, j.ID, "hi")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, uuid.New(), a.ID, "accepted"); !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("non-owner status update: err = %v, want ErrForbidden", err)
	}

	updated, err := svc.UpdateStatus(ctx, owner, a.ID, "accepted")
	if err != nil {
		t.Fatalf("owner status update: %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Errorf("status = %q, want accepted", updated.Status)
	}
	if repo.byID[a.ID].Status != application.StatusAccepted {
		t.Error("status change not persisted")
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	owner := uuid.New()
	j := job.Job{ID: uuid.New(), OwnerID: owner, Title: "Eng", Location: "NYC"}
	svc, _ := newTestService(j)
	ctx := context.Background()

	a, err := svc.Apply(ctx, uuid.New(), user.RoleApplicant, j.ID, "hi")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, owner, a.ID, "hired"); !errors.Is(err, application.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusMissingApplication(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), "accepted")
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("err = %v, want application.ErrNotFound", err)
	}
}
