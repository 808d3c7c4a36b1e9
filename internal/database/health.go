package database

import (
	"context"
	"database/sql"
	"sync"
	"time"
)

// State is the observable connection state of the database.
type State int32

const (
	StateConnecting State = iota
	StateUp
	StateDown
)

func (s State) String() string {
	switch s {
	case StateUp:
		return "up"
	case StateDown:
		return "down"
	default:
		return "connecting"
	}
}

// Health tracks database reachability for readiness probes and metrics.
// A nil *Health is valid and records nothing.
type Health struct {
	mu    sync.RWMutex
	db    *sql.DB
	state State
}

// NewHealth returns a Health in the connecting state.
func NewHealth() *Health {
	return &Health{state: StateConnecting}
}

// State returns the last observed state.
func (h *Health) State() State {
	if h == nil {
		return StateConnecting
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Check pings the database, once one is attached, and records the outcome.
func (h *Health) Check(ctx context.Context) State {
	if h == nil {
		return StateConnecting
	}
	h.mu.RLock()
	db := h.db
	h.mu.RUnlock()
	if db == nil {
		return h.State()
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		h.set(StateDown)
		return StateDown
	}
	h.set(StateUp)
	return StateUp
}

func (h *Health) set(s State) {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.state = s
	h.mu.Unlock()
}

func (h *Health) attach(db *sql.DB) {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.db = db
	h.state = StateUp
	h.mu.Unlock()
}
