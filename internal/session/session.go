package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// AdminClickThreshold is the number of logo clicks that unlocks
	// the admin view. Reaching exactly this count flips the flag;
	// further clicks keep counting but never re-trigger it.
	AdminClickThreshold = 7

	// DefaultTTL is how long an idle session lives before the janitor
	// drops it
	DefaultTTL = 30 * time.Minute

	// DefaultCleanupInterval is how often the background janitor runs
	DefaultCleanupInterval = time.Minute
)

// Session is one browser session's server-side state: the admin gate
// and a last-seen timestamp for expiry. The cart itself lives in the
// cart store, keyed by the session id.
type Session struct {
	ID         string
	LogoClicks int
	Admin      bool
	LastSeen   time.Time
}

// Manager owns all live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	onExpire func(sessionID string)

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// SetOnExpire registers a hook called with the id of every session
// the janitor drops, so dependent state (the session's cart) can be
// dropped too.
func (m *Manager) SetOnExpire(hook func(sessionID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = hook
}

// NewManager creates a session manager and starts its background
// janitor.
func NewManager(ttl, cleanupInterval time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	m := &Manager{
		sessions:    make(map[string]*Session),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop(cleanupInterval)

	return m
}

func (m *Manager) cleanupLoop(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.expireSessions()
		case <-m.stopCleanup:
			return
		}
	}
}

// expireSessions drops every session idle longer than the TTL. Expiry
// hooks run after the lock is released.
func (m *Manager) expireSessions() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.LastSeen.Before(cutoff) {
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	hook := m.onExpire
	m.mu.Unlock()

	if hook != nil {
		for _, id := range expired {
			hook(id)
		}
	}
}

// Ensure returns a valid session id, creating a new session when the
// given id is empty or unknown, and touches the session's last-seen
// time.
func (m *Manager) Ensure(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.LastSeen = time.Now()
			return id
		}
	}

	s := &Session{
		ID:       uuid.New().String(),
		LastSeen: time.Now(),
	}
	m.sessions[s.ID] = s
	return s.ID
}

// Click registers a logo click for the session and reports the new
// count plus whether this click was the one that unlocked admin mode.
func (m *Manager) Click(id string) (clicks int, becameAdmin bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return 0, false
	}

	s.LogoClicks++
	s.LastSeen = time.Now()
	if s.LogoClicks == AdminClickThreshold && !s.Admin {
		s.Admin = true
		return s.LogoClicks, true
	}
	return s.LogoClicks, false
}

// IsAdmin reports whether the session has unlocked the admin view.
// This is a UI affordance, not an access-control check.
func (m *Manager) IsAdmin(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return ok && s.Admin
}

// ExitAdmin leaves the admin view and resets the click counter to 0.
func (m *Manager) ExitAdmin(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		s.Admin = false
		s.LogoClicks = 0
		s.LastSeen = time.Now()
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the background janitor and waits for it to finish.
func (m *Manager) Close() error {
	close(m.stopCleanup)
	m.wg.Wait()
	return nil
}
