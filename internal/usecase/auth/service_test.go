package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hireboard/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]user.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, cur := range r.byEmail {
		if cur.ID == u.ID {
			delete(r.byEmail, email)
			r.byEmail[u.Email] = u
			return nil
		}
	}
	return user.ErrNotFound
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "Ada@X.com", Password: "secret1", Role: "applicant"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "ada@x.com" {
		t.Errorf("email = %q, want normalized lowercase", u.Email)
	}
	if u.Role != user.RoleApplicant {
		t.Errorf("role = %q, want applicant", u.Role)
	}
	if u.PasswordHash != "" {
		t.Error("returned user leaks the password hash")
	}

	stored, err := repo.GetByEmail(ctx, "ada@x.com")
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if stored.PasswordHash == "secret1" || stored.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	in := RegisterInput{Name: "Ada", Email: "ada@x.com", Password: "secret1", Role: "applicant"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in.Name = "Someone Else"
	if _, err := svc.Register(ctx, in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("second register: err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Ada", Email: "ada@x.com", Password: "secret1", Role: "admin"})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Rex", Email: "rex@x.com", Password: "secret1", Role: "recruiter"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := svc.Login(ctx, LoginInput{Email: "REX@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Role != user.RoleRecruiter {
		t.Errorf("role = %q, want recruiter", u.Role)
	}
	if u.PasswordHash != "" {
		t.Error("login result leaks the password hash")
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Rex", Email: "rex@x.com", Password: "secret1", Role: "recruiter"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, errUnknown := svc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "secret1"})
	_, errWrongPw := svc.Login(ctx, LoginInput{Email: "rex@x.com", Password: "wrong"})

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", errWrongPw)
	}
}
