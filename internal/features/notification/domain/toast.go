package domain

import "time"

// Kind is the tone of a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 3300 * time.Millisecond

// Toast is a transient, never persisted, user-facing message.
type Toast struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Kind    Kind   `json:"type"`
}
