package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nlitvin/pytrail/internal/models"
)

// ErrDuplicateUser is returned by AuthStore.CreateUser when the username or
// email collides with an existing row.
var ErrDuplicateUser = errors.New("duplicate user")

type AuthStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthService struct {
	store AuthStore
	now   func() time.Time
}

const minPasswordLen = 6

// dummyHash is compared against when the username does not exist, so a login
// for a missing user costs the same as one with a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func NewAuthService(store AuthStore) *AuthService {
	return &AuthService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, NewInvalidError("username, email and password are required")
	}
	if len(password) < minPasswordLen {
		return nil, NewInvalidError("password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, NewConflictError("username or email already exists")
		}
		return nil, err
	}
	return u, nil
}

// Login deliberately reports the same error for a missing user and a wrong
// password, so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, NewInvalidError("username and password are required")
	}
	u, err := s.store.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	return u, nil
}
