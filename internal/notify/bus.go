// Package notify is the transient notification channel. Mutation handlers
// publish short messages to a Bus; presentation layers read the active ones
// and let them expire.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 3
	DefaultTTL   = 5 * time.Second
)

type Variant uint8

const (
	VariantDefault Variant = iota
	VariantDestructive
)

// Notification is a fire-and-forget message with a title and a body.
type Notification struct {
	ID        string
	Title     string
	Body      string
	Variant   Variant
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether n is no longer shown at now.
func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// Publisher is the side of the bus seen by mutation handlers.
type Publisher interface {
	Publish(title, body string, opts ...PublishOption) Notification
}

type PublishOption func(*Notification)

// Destructive marks a notification as a warning about a destructive action.
func Destructive() PublishOption {
	return func(n *Notification) { n.Variant = VariantDestructive }
}

// Bus is a bounded queue of notifications. When full, publishing drops the
// oldest entry. It is safe for concurrent use because bubbletea commands
// run on their own goroutines.
type Bus struct {
	mu    sync.Mutex
	limit int
	ttl   time.Duration
	now   func() time.Time
	queue []Notification
	total int
}

type Option func(*Bus)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bus) { b.now = now }
}

// NewBus returns a bus holding at most limit notifications, each living for
// ttl. Non-positive values fall back to DefaultLimit and DefaultTTL.
func NewBus(limit int, ttl time.Duration, opts ...Option) *Bus {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b := &Bus{limit: limit, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bus) Publish(title, body string, opts ...PublishOption) Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	n := Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		ExpiresAt: now.Add(b.ttl),
	}
	for _, opt := range opts {
		opt(&n)
	}

	b.pruneLocked(now)
	if len(b.queue) >= b.limit {
		b.queue = append(b.queue[:0], b.queue[len(b.queue)-b.limit+1:]...)
	}
	b.queue = append(b.queue, n)
	b.total++
	return n
}

// Active returns unexpired notifications, newest first.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked(b.now())
	out := make([]Notification, len(b.queue))
	for i, n := range b.queue {
		out[len(b.queue)-1-i] = n
	}
	return out
}

// Latest returns the most recently published notification that has not
// expired or been dismissed.
func (b *Bus) Latest() (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pruneLocked(b.now())
	if len(b.queue) == 0 {
		return Notification{}, false
	}
	return b.queue[len(b.queue)-1], true
}

// Dismiss removes the notification with the given id.
func (b *Bus) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, n := range b.queue {
		if n.ID == id {
			b.queue = append(b.queue[:i], b.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Published counts every notification ever published, including dropped
// and expired ones.
func (b *Bus) Published() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}

func (b *Bus) pruneLocked(now time.Time) {
	kept := b.queue[:0]
	for _, n := range b.queue {
		if !n.Expired(now) {
			kept = append(kept, n)
		}
	}
	b.queue = kept
}
