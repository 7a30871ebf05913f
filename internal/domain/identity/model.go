// internal/domain/identity/model.go

package identity

import (
	"errors"
	"time"
)

// User represents a registered user of the system. PasswordHash is a bcrypt
// hash and is never serialized.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	PasswordHash string `json:"-"`
}

// Common identity errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

// TokenManager handles authentication tokens.
type TokenManager interface {
	// GenerateToken generates a signed token for a user.
	GenerateToken(userID string, ttl time.Duration) (string, error)

	// ValidateToken validates a token and returns the user ID.
	ValidateToken(token string) (string, error)
}

// Repository provides access to stored users.
type Repository interface {
	GetByEmail(email string) (*User, error)
	GetByID(id string) (*User, error)
}
