package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"hireboard/internal/domain/job"
	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/policy"
)

type fakeJobRepo struct {
	byID    map[uuid.UUID]job.Job
	order   []uuid.UUID
	deleted []uuid.UUID
}

func newFakeJobRepo(jobs ...job.Job) *fakeJobRepo {
	r := &fakeJobRepo{byID: map[uuid.UUID]job.Job{}}
	for _, j := range jobs {
		r.byID[j.ID] = j
		r.order = append(r.order, j.ID)
	}
	return r
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) error {
	r.byID[j.ID] = j
	r.order = append(r.order, j.ID)
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) ListAll(ctx context.Context) ([]job.Job, error) {
	out := make([]job.Job, 0, len(r.order))
	for _, id := range r.order {
		if j, ok := r.byID[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for _, id := range r.order {
		if j, ok := r.byID[id]; ok && j.OwnerID == ownerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) error {
	if _, ok := r.byID[j.ID]; !ok {
		return job.ErrNotFound
	}
	r.byID[j.ID] = j
	return nil
}

func (r *fakeJobRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return job.ErrNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeCache struct {
	store   map[string][]byte
	deletes []string
	sets    []string
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if _, ok := c.store[key]; !ok {
		return false, nil
	}
	c.hits++
	return false, nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any) error {
	c.store[key] = []byte("set")
	c.sets = append(c.sets, key)
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	c.deletes = append(c.deletes, key)
	return nil
}

func TestCreateRequiresRecruiter(t *testing.T) {
	svc := NewService(newFakeJobRepo(), nil)

	_, err := svc.Create(context.Background(), uuid.New(), user.RoleApplicant, CreateInput{Title: "Eng", Location: "NYC"})
	if !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("applicant create: err = %v, want ErrForbidden", err)
	}
}

func TestCreateRoundTrip(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewService(repo, nil)
	recruiter := uuid.New()
	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(context.Background(), recruiter, user.RoleRecruiter, CreateInput{
		Title:    "Eng",
		Location: "NYC",
		Salary:   100000,
		Deadline: &deadline,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("created job has no id")
	}
	if created.OwnerID != recruiter {
		t.Errorf("owner = %s, want %s", created.OwnerID, recruiter)
	}

	fetched, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("fetch created: %v", err)
	}
	if fetched.Title != "Eng" || fetched.Location != "NYC" || fetched.Salary != 100000 {
		t.Errorf("fetched job does not match input: %+v", fetched)
	}
	if fetched.Deadline == nil || !fetched.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", fetched.Deadline, deadline)
	}
}

func TestListOwnedRequiresRecruiter(t *testing.T) {
	svc := NewService(newFakeJobRepo(), nil)

	_, err := svc.ListOwned(context.Background(), uuid.New(), user.RoleApplicant)
	if !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestUpdateOwnershipAndPartialFields(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	existing := job.Job{ID: uuid.New(), OwnerID: owner, Title: "Eng", Description: "desc", Location: "NYC", Salary: 100000}
	svc := NewService(newFakeJobRepo(existing), nil)
	ctx := context.Background()

	if _, err := svc.Update(ctx, other, existing.ID, job.Update{Title: strPtr("Hacked")}); !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("non-owner update: err = %v, want ErrForbidden", err)
	}

	salary := int64(120000)
	updated, err := svc.Update(ctx, owner, existing.ID, job.Update{Salary: &salary})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Salary != 120000 {
		t.Errorf("salary = %d, want 120000", updated.Salary)
	}
	if updated.Title != "Eng" || updated.Location != "NYC" || updated.Description != "desc" {
		t.Errorf("unsupplied fields changed: %+v", updated)
	}
	if updated.OwnerID != owner {
		t.Errorf("owner changed on update: %s", updated.OwnerID)
	}
}

func TestUpdateMissingJob(t *testing.T) {
	svc := NewService(newFakeJobRepo(), nil)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), job.Update{Title: strPtr("x")})
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("err = %v, want job.ErrNotFound", err)
	}
}

func TestDeleteOwnership(t *testing.T) {
	owner := uuid.New()
	existing := job.Job{ID: uuid.New(), OwnerID: owner, Title: "Eng", Location: "NYC"}
	repo := newFakeJobRepo(existing)
	svc := NewService(repo, nil)
	ctx := context.Background()

	if err := svc.Delete(ctx, uuid.New(), existing.ID); !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("non-owner delete: err = %v, want ErrForbidden", err)
	}

	if err := svc.Delete(ctx, owner, existing.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != existing.ID {
		t.Errorf("cascade delete not invoked for %s", existing.ID)
	}

	if err := svc.Delete(ctx, owner, existing.ID); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("second delete: err = %v, want job.ErrNotFound", err)
	}
}

func TestMutationsInvalidateListingCache(t *testing.T) {
	owner := uuid.New()
	cache := newFakeCache()
	svc := NewService(newFakeJobRepo(), cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, user.RoleRecruiter, CreateInput{Title: "Eng", Location: "NYC"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ctx, owner, created.ID, job.Update{Title: strPtr("Eng II")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Delete(ctx, owner, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(cache.deletes) != 3 {
		t.Errorf("cache invalidations = %d, want 3", len(cache.deletes))
	}
	for _, k := range cache.deletes {
		if k != cacheKeyAll {
			t.Errorf("invalidated key = %q, want %q", k, cacheKeyAll)
		}
	}
}

func TestListAllPopulatesCache(t *testing.T) {
	owner := uuid.New()
	cache := newFakeCache()
	repo := newFakeJobRepo(job.Job{ID: uuid.New(), OwnerID: owner, Title: "Eng", Location: "NYC"})
	svc := NewService(repo, cache)

	if _, err := svc.ListAll(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cache.sets) != 1 || cache.sets[0] != cacheKeyAll {
		t.Errorf("cache sets = %v, want [%s]", cache.sets, cacheKeyAll)
	}
}

func strPtr(s string) *string { return &s }
