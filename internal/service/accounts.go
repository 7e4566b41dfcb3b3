package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/puchie21/curren/internal/hasher"
	"github.com/puchie21/curren/internal/models"
	"github.com/puchie21/curren/internal/repository"
)

// Domain errors for account flows.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountsService handles registration and login.
type AccountsService struct {
	users repository.Users
}

func NewAccountsService(users repository.Users) *AccountsService {
	return &AccountsService{users: users}
}

var _ Accounts = (*AccountsService)(nil)

// Register hashes the password and creates a new user.
// Returns ErrUsernameTaken if the username is already present.
func (s *AccountsService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, errors.New("username is empty")
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	stored, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := models.User{
		Username:  username,
		Email:     strings.TrimSpace(in.Email),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Password:  stored,
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return &u, nil
}

// Login verifies credentials and returns the user.
// An absent user and a wrong password are indistinguishable to the caller:
// both return ErrInvalidCredentials. A malformed stored hash is surfaced
// as-is so it maps to an internal error, not an auth failure.
func (s *AccountsService) Login(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := hasher.Verify(password, u.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password for %q: %w", username, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
