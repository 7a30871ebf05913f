// internal/service/identity/service.go

package identity

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"trendscope/internal/domain/identity"
)

// Service authenticates users against the user repository and issues session
// tokens.
type Service struct {
	users       identity.Repository
	tokens      identity.TokenManager
	tokenExpiry time.Duration
	logger      zerolog.Logger
}

// Config holds dependencies for the identity service.
type Config struct {
	Users       identity.Repository
	Tokens      identity.TokenManager
	TokenExpiry time.Duration
}

// NewService creates a new identity service.
func NewService(cfg Config, logger zerolog.Logger) *Service {
	return &Service{
		users:       cfg.Users,
		tokens:      cfg.Tokens,
		tokenExpiry: cfg.TokenExpiry,
		logger:      logger,
	}
}

// Login verifies the credentials and returns a signed token plus the user.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(email, password string) (string, *identity.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return "", nil, identity.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, identity.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, s.tokenExpiry)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Verify validates a bearer token and resolves the authenticated user.
func (s *Service) Verify(token string) (*identity.User, error) {
	userID, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, identity.ErrInvalidToken
	}

	return user, nil
}
