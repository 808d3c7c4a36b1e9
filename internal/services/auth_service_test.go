package services_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/apperr"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/auth"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/repositories"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/services"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/testutil"
)

type AuthServiceTestSuite struct {
	suite.Suite
	users   *repositories.UserRepository
	service *services.AuthService
	ctx     context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	testutil.QuietLogs()
	s.ctx = context.Background()
	s.users = repositories.NewUserRepository(testutil.NewDB(s.T()))

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	s.Require().NoError(err)
	s.service = services.NewAuthService(s.users, tokens, bcrypt.MinCost)
}

func (s *AuthServiceTestSuite) TestRegisterThenLogin() {
	user, err := s.service.Register(s.ctx, "ana@example.com", "s3cret")
	s.Require().NoError(err)
	s.NotZero(user.ID)
	s.Empty(user.PasswordHash)

	stored, err := s.users.GetByEmail(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.NotEqual("s3cret", stored.PasswordHash)
	s.True(strings.HasPrefix(stored.PasswordHash, "$2"))

	token, err := s.service.Login(s.ctx, "ana@example.com", "s3cret")
	s.Require().NoError(err)

	claims, err := s.service.VerifyToken(token)
	s.Require().NoError(err)
	s.Equal(user.ID, claims.UserID)
	s.Equal("ana@example.com", claims.Email)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	_, err := s.service.Register(s.ctx, "ana@example.com", "one")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "ana@example.com", "two")
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrEmailTaken))
	s.True(apperr.Is(err, apperr.CodeConflict))
	s.Equal(http.StatusBadRequest, apperr.Status(err))

	// The original password still works, so no second row replaced it.
	_, err = s.service.Login(s.ctx, "ana@example.com", "one")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestRegisterRequiresCredentials() {
	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"  ", "pw"},
		{"ana@example.com", ""},
	} {
		_, err := s.service.Register(s.ctx, tc.email, tc.password)
		s.Error(err)
		s.Equal(http.StatusBadRequest, apperr.Status(err))
	}
}

func (s *AuthServiceTestSuite) TestRegisterRejectsOverlongPassword() {
	_, err := s.service.Register(s.ctx, "ana@example.com", strings.Repeat("x", 100))
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, apperr.Status(err))
}

func (s *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "pw")
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrUserNotFound))
	s.Equal(http.StatusNotFound, apperr.Status(err))
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.service.Register(s.ctx, "ana@example.com", "right")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "ana@example.com", "wrong")
	s.Require().Error(err)
	s.True(errors.Is(err, services.ErrInvalidCredential))
	s.Equal(http.StatusUnauthorized, apperr.Status(err))
}

func (s *AuthServiceTestSuite) TestLoginIsCaseSensitiveOnEmail() {
	_, err := s.service.Register(s.ctx, "ana@example.com", "pw")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "Ana@Example.com", "pw")
	s.Equal(http.StatusNotFound, apperr.Status(err))
}

func (s *AuthServiceTestSuite) TestVerifyTokenRejectsGarbage() {
	_, err := s.service.VerifyToken("garbage")
	s.Require().Error(err)
	s.True(errors.Is(err, auth.ErrInvalidToken))
	s.Equal(http.StatusForbidden, apperr.Status(err))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
