package service

import (
	"fmt"
	"sync"
	"time"

	"smartparking/internal/entities"
)

const notificationTTL = 3 * time.Second

type notification struct {
	entities.Notification
	expiresAt time.Time
}

// NotifyService collects the transient toasts the dashboard shows after each
// operation. Entries dismiss themselves after notificationTTL; reads only
// ever see live ones.
type NotifyService struct {
	mu      sync.Mutex
	entries []notification
	ttl     time.Duration
	now     func() time.Time
}

func NewNotifyService() *NotifyService {
	return &NotifyService{ttl: notificationTTL, now: time.Now}
}

// Success records a success toast.
func (s *NotifyService) Success(format string, args ...interface{}) {
	s.push("success", fmt.Sprintf(format, args...))
}

// Error records an error toast.
func (s *NotifyService) Error(format string, args ...interface{}) {
	s.push("error", fmt.Sprintf(format, args...))
}

func (s *NotifyService) push(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(s.now())
	s.entries = append(s.entries, notification{
		Notification: entities.Notification{Message: message, Type: kind},
		expiresAt:    s.now().Add(s.ttl),
	})
}

// Active returns the notifications that have not yet dismissed themselves.
func (s *NotifyService) Active() []entities.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(s.now())
	out := make([]entities.Notification, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry.Notification)
	}
	return out
}

func (s *NotifyService) pruneLocked(now time.Time) {
	live := s.entries[:0]
	for _, entry := range s.entries {
		if entry.expiresAt.After(now) {
			live = append(live, entry)
		}
	}
	s.entries = live
}
