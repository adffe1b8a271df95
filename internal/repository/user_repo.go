package repository

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "smartparking/internal/errors"
)

type User struct {
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepository interface {
	GetByUsername(username string) (*User, error)
	Create(username, email, password string) error
}

// userRepository keeps accounts in memory; the demo has no database and
// accounts live only for the life of the process.
type userRepository struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewUserRepository() UserRepository {
	return &userRepository{users: make(map[string]*User)}
}

func (r *userRepository) GetByUsername(username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *userRepository) Create(username, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[username]; exists {
		return apperrors.ErrDuplicateUsername
	}
	r.users[username] = &User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}
	return nil
}
