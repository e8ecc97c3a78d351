package customer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	custrepo "github.com/Bart563/KBZ-Computers/internal/repository/customer"
)

type stubRepo struct {
	customers map[string]domain.Customer
	nextID    int
}

func newStubRepo() *stubRepo {
	return &stubRepo{customers: make(map[string]domain.Customer)}
}

func (r *stubRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	for _, existing := range r.customers {
		if existing.Email == c.Email {
			return nil, custrepo.ErrEmailTaken
		}
	}
	r.nextID++
	c.ID = fmt.Sprintf("cust-%d", r.nextID)
	c.CreatedAt = time.Now()
	r.customers[c.ID] = c
	return &c, nil
}

func (r *stubRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *stubRepo) Update(_ context.Context, in domain.Customer) (*domain.Customer, error) {
	c, ok := r.customers[in.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Phone = in.Phone
	r.customers[c.ID] = c
	return &c, nil
}

func TestRegisterLoginVerifyRoundTrip(t *testing.T) {
	svc := New(newStubRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		Email:     " Aye.Chan@Example.com ",
		Password:  "correct horse",
		FirstName: "Aye",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Email != "aye.chan@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.PasswordHash == "correct horse" || created.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}

	logged, token, err := svc.Login(ctx, "aye.chan@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != created.ID {
		t.Fatalf("expected customer %q, got %q", created.ID, logged.ID)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	userID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if userID != created.ID {
		t.Fatalf("token carries %q, want %q", userID, created.ID)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := New(newStubRepo(), "test-secret", time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "short"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["password"]; !ok {
		t.Fatalf("expected password flagged, got %v", verr.Fields)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := New(newStubRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "correct horse"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(ctx, "a@b.com", "wrong horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := New(newStubRepo(), "test-secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "nobody@b.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyTokenRejectsForgedAndExpired(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "correct horse"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}

	// A token signed under a different secret must not verify.
	otherSvc := New(repo, "other-secret", time.Hour)
	_, forged, err := otherSvc.Login(ctx, "a@b.com", "correct horse")
	if err != nil {
		t.Fatalf("login against other service: %v", err)
	}
	if _, err := svc.VerifyToken(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for forged token, got %v", err)
	}

	// An expired token must not verify.
	expiredSvc := New(repo, "test-secret", time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	_, expired, err := expiredSvc.Login(ctx, "a@b.com", "correct horse")
	if err != nil {
		t.Fatalf("login with backdated clock: %v", err)
	}
	if _, err := svc.VerifyToken(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := New(newStubRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	updated, err := svc.UpdateProfile(ctx, created.ID, ProfileInput{FirstName: " Aye ", LastName: "Chan", Phone: "0977123456"})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FirstName != "Aye" || updated.LastName != "Chan" {
		t.Fatalf("expected trimmed names, got %q %q", updated.FirstName, updated.LastName)
	}

	got, err := svc.Profile(ctx, created.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if got.Phone != "0977123456" {
		t.Fatalf("expected persisted phone, got %q", got.Phone)
	}
}
