package reorder

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/ayoisaiah/yogi/internal/models"
)

// Persister stores a new order for a saved session.
type Persister interface {
	Reorder(sessionID string, order []string) (models.Session, error)
}

// Engine owns the card order of one session view. It is the only component
// that mutates the order.
type Engine struct {
	store     Persister
	onChange  func(order []string)
	sessionID string
	order     []string
	mu        sync.Mutex
	transient bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithPersister persists every change to a stored session.
func WithPersister(sessionID string, p Persister) EngineOption {
	return func(e *Engine) {
		e.sessionID = sessionID
		e.store = p
		e.transient = false
	}
}

// OnOrderChange registers a hook invoked with the new order after every
// change.
func OnOrderChange(fn func(order []string)) EngineOption {
	return func(e *Engine) {
		e.onChange = fn
	}
}

// NewEngine creates an engine for order. Without a persister the session is
// treated as transient and the order lives only in memory.
func NewEngine(order []string, opts ...EngineOption) *Engine {
	e := &Engine{
		order:     slices.Clone(order),
		transient: true,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Order returns a copy of the current order.
func (e *Engine) Order() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.order)
}

// Len returns the number of ids in the order.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.order)
}

// Transient reports whether changes stay in memory.
func (e *Engine) Transient() bool {
	return e.transient
}

// Move relocates the id at from to index to. It reports whether the order
// changed.
func (e *Engine) Move(from, to int) (bool, error) {
	return e.apply(func(order []string) []string {
		return Move(order, from, to)
	})
}

// Insert places id at index at, appending when at is out of range.
func (e *Engine) Insert(id string, at int) (bool, error) {
	return e.apply(func(order []string) []string {
		return Insert(order, at, id)
	})
}

// Append adds id to the end of the order.
func (e *Engine) Append(id string) (bool, error) {
	return e.Insert(id, -1)
}

// Remove drops the id at index at.
func (e *Engine) Remove(at int) (bool, error) {
	return e.apply(func(order []string) []string {
		return Remove(order, at)
	})
}

func (e *Engine) apply(fn func([]string) []string) (bool, error) {
	e.mu.Lock()

	next := fn(e.order)
	if slices.Equal(next, e.order) {
		e.mu.Unlock()
		return false, nil
	}

	if !e.transient && e.store != nil {
		if _, err := e.store.Reorder(e.sessionID, next); err != nil {
			slog.Error("persisting session order failed",
				slog.String("session", e.sessionID),
				slog.Any("error", err),
			)

			e.mu.Unlock()

			return false, err
		}
	}

	e.order = slices.Clone(next)
	onChange := e.onChange

	e.mu.Unlock()

	if onChange != nil {
		onChange(slices.Clone(next))
	}

	return true, nil
}
