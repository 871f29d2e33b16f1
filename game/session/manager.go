package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fukimorihigh/server/cache"
)

// Session records one authenticated client attached to a world.
type Session struct {
	Token       string    `json:"-"`
	AccountID   int64     `json:"account_id"`
	WorldID     string    `json:"world_id"`
	ConnectedAt time.Time `json:"connected_at"`
}

// Manager serializes mutations per world and keeps the registry of
// attached sessions. Reads bypass the world locks.
type Manager struct {
	mu       sync.RWMutex
	locks    map[string]*sync.Mutex
	sessions map[string]*Session // token → session
	cache    cache.Cache
	logger   *zap.Logger
}

// NewManager creates an empty session Manager. The cache backs the
// cross-replica world lease; with a LocalCache the lease is a formality
// and the in-process mutex does the work.
func NewManager(c cache.Cache, logger *zap.Logger) *Manager {
	return &Manager{
		locks:    make(map[string]*sync.Mutex),
		sessions: make(map[string]*Session),
		cache:    c,
		logger:   logger,
	}
}

const (
	// worldLockTTL bounds how long a crashed holder can wedge a world.
	worldLockTTL       = 15 * time.Second
	worldLockRetryWait = 25 * time.Millisecond
)

func worldLockKey(worldID string) string {
	return "lock:world:" + worldID
}

// Do runs fn while holding the world's mutation lock. At most one fn is
// in flight per world across every replica sharing the cache: the local
// mutex serializes goroutines on this node, the SetNX lease serializes
// nodes. Distinct worlds never contend.
func (m *Manager) Do(ctx context.Context, worldID string, fn func() error) error {
	lock := m.lockFor(worldID)
	lock.Lock()
	defer lock.Unlock()

	key := worldLockKey(worldID)
	for {
		ok, err := m.cache.SetNX(ctx, key, "1", worldLockTTL)
		if err != nil {
			return fmt.Errorf("session: world lock %s: %w", worldID, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(worldLockRetryWait):
		}
	}
	// Release on Background: the lease must be dropped even when the
	// request context is already cancelled. The TTL covers a crash.
	defer func() {
		if err := m.cache.Del(context.Background(), key); err != nil {
			m.logger.Warn("world lock release failed",
				zap.String("world_id", worldID), zap.Error(err))
		}
	}()
	return fn()
}

func (m *Manager) lockFor(worldID string) *sync.Mutex {
	m.mu.RLock()
	lock, ok := m.locks[worldID]
	m.mu.RUnlock()
	if ok {
		return lock
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if lock, ok = m.locks[worldID]; ok {
		return lock
	}
	lock = &sync.Mutex{}
	m.locks[worldID] = lock
	return lock
}

// Register adds a session. A previous session for the same token is
// displaced (handles re-login with a reused token).
func (m *Manager) Register(token string, accountID int64, worldID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[token]; ok {
		m.logger.Info("duplicate session displaced",
			zap.Int64("account_id", accountID))
	}
	m.sessions[token] = &Session{
		Token:       token,
		AccountID:   accountID,
		WorldID:     worldID,
		ConnectedAt: time.Now(),
	}
	m.logger.Info("session registered",
		zap.Int64("account_id", accountID),
		zap.String("world_id", worldID))
}

// Unregister removes the session for a token.
func (m *Manager) Unregister(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[token]; ok {
		delete(m.sessions, token)
		m.logger.Info("session unregistered",
			zap.Int64("account_id", s.AccountID))
	}
}

// Get returns the session for a token, or nil if not found.
func (m *Manager) Get(token string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[token]
}

// IsAttached reports whether any session is attached to the world.
func (m *Manager) IsAttached(worldID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.WorldID == worldID {
			return true
		}
	}
	return false
}

// Count returns the number of attached sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// All returns a snapshot of the current sessions.
func (m *Manager) All() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}
