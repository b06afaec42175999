package services

import (
	"context"
	"testing"
	"time"

	"github.com/nlitvin/pytrail/internal/models"
)

type authStubStore struct {
	users  map[string]*models.User
	emails map[string]bool
	nextID int64
}

func newAuthStubStore() *authStubStore {
	return &authStubStore{users: map[string]*models.User{}, emails: map[string]bool{}}
}

func (s *authStubStore) CreateUser(_ context.Context, u *models.User) error {
	if _, ok := s.users[u.Username]; ok {
		return ErrDuplicateUser
	}
	if s.emails[u.Email] {
		return ErrDuplicateUser
	}
	s.nextID++
	u.ID = s.nextID
	copy := *u
	s.users[u.Username] = &copy
	s.emails[u.Email] = true
	return nil
}

func (s *authStubStore) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := s.users[username]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func TestAuthRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newAuthStubStore())
	svc.now = func() time.Time { return time.Unix(0, 0).UTC() }

	u, err := svc.Register(ctx, "alice", "a@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.ID == 0 || u.Username != "alice" || u.Email != "a@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	// same username again
	_, err = svc.Register(ctx, "alice", "other@example.com", "secret1")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorConflict {
		t.Fatalf("expected conflict on duplicate username, got %v", err)
	}
	// same email again
	_, err = svc.Register(ctx, "bob", "a@example.com", "secret1")
	if se, ok := AsServiceError(err); !ok || se.Code != ErrorConflict {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}

	logged, err := svc.Login(ctx, "alice", "secret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if logged.ID != u.ID {
		t.Fatalf("login returned wrong user: %+v", logged)
	}
}

func TestAuthLoginDoesNotLeakExistence(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newAuthStubStore())
	if _, err := svc.Register(ctx, "alice", "a@example.com", "secret1"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, errWrongPass := svc.Login(ctx, "alice", "wrong-password")
	_, errNoUser := svc.Login(ctx, "nobody", "wrong-password")

	seA, okA := AsServiceError(errWrongPass)
	seB, okB := AsServiceError(errNoUser)
	if !okA || !okB {
		t.Fatalf("expected service errors, got %v / %v", errWrongPass, errNoUser)
	}
	if seA.Code != ErrorUnauthorized || seB.Code != ErrorUnauthorized {
		t.Fatalf("expected unauthorized for both, got %q / %q", seA.Code, seB.Code)
	}
	if seA.Message != seB.Message {
		t.Fatalf("error messages differ: %q vs %q", seA.Message, seB.Message)
	}
}

func TestAuthValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newAuthStubStore())

	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"all empty", "", "", ""},
		{"missing email", "alice", "", "secret1"},
		{"missing password", "alice", "a@example.com", ""},
		{"short password", "alice", "a@example.com", "abc"},
	}
	for _, tc := range cases {
		_, err := svc.Register(ctx, tc.username, tc.email, tc.password)
		se, ok := AsServiceError(err)
		if !ok || se.Code != ErrorInvalid {
			t.Fatalf("%s: expected invalid error, got %v", tc.name, err)
		}
	}

	if _, err := svc.Login(ctx, "", ""); err == nil {
		t.Fatalf("expected validation error on empty login")
	}
}
