// internal/adapter/storage/user_store.go

package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trendscope/internal/domain/identity"
)

// UserStore is an in-memory user repository. The service deliberately has no
// persistent storage; accounts live for the lifetime of the process.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*identity.User
	byEmail map[string]*identity.User
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*identity.User),
		byEmail: make(map[string]*identity.User),
	}
}

// Add registers a user with a bcrypt-hashed password. Emails are unique and
// matched case-insensitively.
func (s *UserStore) Add(email, name, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[key]; exists {
		return fmt.Errorf("user already exists: %s", email)
	}

	user := &identity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
		PasswordHash: string(hash),
	}

	s.byID[user.ID] = user
	s.byEmail[key] = user
	return nil
}

// GetByEmail looks a user up by email.
func (s *UserStore) GetByEmail(email string) (*identity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, identity.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// GetByID looks a user up by ID.
func (s *UserStore) GetByID(id string) (*identity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, identity.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}
