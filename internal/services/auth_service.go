package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/apperr"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/auth"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
)

var (
	// ErrInvalidCredential means the password did not match the stored hash.
	ErrInvalidCredential  = errors.New("invalid credential")
	// ErrMissingCredentials means the email or password was empty.
	ErrMissingCredentials = errors.New("email and password are required")
)

// UserStore is the credential store used by AuthService.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
}

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Register(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyToken(token string) (*auth.Claims, error)
}

// AuthService provides registration, login and token verification.
type AuthService struct {
	users    UserStore
	tokens   *auth.TokenManager
	hashCost int
}

// NewAuthService creates a new AuthService. A zero hashCost selects
// bcrypt.DefaultCost.
func NewAuthService(users UserStore, tokens *auth.TokenManager, hashCost int) *AuthService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, hashCost: hashCost}
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return apperr.Invalid(ErrMissingCredentials)
	}
	return nil
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return models.User{}, apperr.Conflict(models.ErrEmailTaken)
	case !errors.Is(err, models.ErrUserNotFound):
		return models.User{}, apperr.Internal(err, "failed to look up email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, apperr.Invalid(err)
	}
	if err != nil {
		return models.User{}, apperr.Internal(err, "failed to hash password")
	}

	user, err := s.users.Create(ctx, email, string(hash))
	if errors.Is(err, models.ErrEmailTaken) {
		// Lost a race with a concurrent registration.
		return models.User{}, apperr.Conflict(err)
	}
	if err != nil {
		return models.User{}, apperr.Internal(err, "failed to create user")
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		return "", apperr.NotFound(err)
	}
	if err != nil {
		return "", apperr.Internal(err, "failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthorized(fmt.Errorf("%w: %v", ErrInvalidCredential, err))
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", apperr.Internal(err, "failed to issue token")
	}
	return token, nil
}

// VerifyToken validates a bearer token and returns its claims.
func (s *AuthService) VerifyToken(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}
