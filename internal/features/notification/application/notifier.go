package application

import (
	"log"
	"sync"
	"time"

	"promptcraft/backend/internal/features/notification/domain"
)

// Notifier is the port other features use to report outcomes to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ToastService keeps the active toasts and expires each one after a fixed
// duration.
type ToastService struct {
	mu       sync.Mutex
	duration time.Duration
	nextID   int64
	toasts   []domain.Toast
}

// NewToastService returns a service whose toasts live for duration.
// A non-positive duration uses domain.DefaultDuration.
func NewToastService(duration time.Duration) *ToastService {
	if duration <= 0 {
		duration = domain.DefaultDuration
	}
	return &ToastService{duration: duration}
}

func (s *ToastService) Success(message string) { s.Push(domain.KindSuccess, message) }
func (s *ToastService) Error(message string)   { s.Push(domain.KindError, message) }

// Push adds a toast and schedules its removal.
func (s *ToastService) Push(kind domain.Kind, message string) domain.Toast {
	s.mu.Lock()
	s.nextID++
	t := domain.Toast{ID: s.nextID, Message: message, Kind: kind}
	s.toasts = append(s.toasts, t)
	s.mu.Unlock()

	if kind == domain.KindError {
		log.Printf("[WARN] toast: %s", message)
	}
	time.AfterFunc(s.duration, func() { s.dismiss(t.ID) })
	return t
}

func (s *ToastService) dismiss(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the toasts that have not expired yet, oldest first.
func (s *ToastService) Active() []domain.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Toast{}, s.toasts...)
}
