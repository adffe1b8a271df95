package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "smartparking/internal/errors"
	"smartparking/internal/repository"
)

const sessionDuration = 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, username, password string) (*repository.Session, string, error)
	Register(ctx context.Context, username, email, password string) error
	Logout(sessionID string) error
	Verify(tokenString string) (*repository.Session, error)
}

type authService struct {
	users        repository.UserRepository
	sessions     repository.SessionRepository
	jwtSecret    []byte
	demoPassword string
	latency      time.Duration
}

// NewAuthService builds the mock credential-check service. demoPassword is
// the fixed secret that lets any unregistered username in; latency mimics
// the original sign-in delay.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, jwtSecret []byte, demoPassword string, latency time.Duration) AuthService {
	return &authService{
		users:        users,
		sessions:     sessions,
		jwtSecret:    jwtSecret,
		demoPassword: demoPassword,
		latency:      latency,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*repository.Session, string, error) {
	if err := sleep(ctx, s.latency); err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, "", err
	}

	email := ""
	switch {
	case user != nil:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		email = user.Email
	case password == s.demoPassword && s.demoPassword != "":
		// Demo policy: any username signs in with the fixed demo password.
	default:
		return nil, "", apperrors.ErrInvalidCredentials
	}

	session := &repository.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		LoginTime: time.Now().UTC(),
	}
	if err := s.sessions.Save(session); err != nil {
		return nil, "", err
	}

	claims := jwt.MapClaims{
		"jti":      session.ID,
		"username": session.Username,
		"email":    session.Email,
		"exp":      time.Now().Add(sessionDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return session, signed, nil
}

func (s *authService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || password == "" {
		return apperrors.ErrInvalidCredentials
	}
	if err := sleep(ctx, s.latency); err != nil {
		return err
	}
	return s.users.Create(username, email, password)
}

func (s *authService) Logout(sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// Verify checks a bearer token and returns the live session it names.
// Tokens whose session was logged out no longer verify.
func (s *authService) Verify(tokenString string) (*repository.Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	sessionID, _ := claims["jti"].(string)
	if sessionID == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return session, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
