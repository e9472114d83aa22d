package cache

import (
	"context"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"

	"github.com/yeongbeomSong/CourseEnroll/models"
)

// SnapshotSource abstracts the registry reads the caches are filled from.
type SnapshotSource interface {
	Catalog(ctx context.Context) ([]models.Course, error)
	Memberships(ctx context.Context, token string) ([]models.MembershipRecord, error)
	WaitingPositions(ctx context.Context, token string) ([]models.WaitlistEntry, error)
}

// Options tunes the manager.
type Options struct {
	// CatalogPollInterval bounds seat-count staleness while anyone is looking
	// at the catalog. Zero disables polling.
	CatalogPollInterval time.Duration
	// SessionIdleTTL is how long a student session survives without requests.
	SessionIdleTTL time.Duration
	// JanitorInterval overrides the eviction sweep cadence (mainly for tests).
	JanitorInterval time.Duration
}

// Manager owns the shared catalog resource and the per-student session caches
// for memberships and waitlist positions. Sessions observe the catalog, so the
// poller runs exactly while at least one student session is alive.
type Manager struct {
	source  SnapshotSource
	catalog *Resource[[]models.Course]
	idleTTL time.Duration

	mu       sync.Mutex
	sessions map[int64]*Session

	stopJanitor chan struct{}
	janitorOnce sync.Once
}

// NewManager builds a manager whose catalog loader runs under the service
// account (catalog data is not caller-specific).
func NewManager(source SnapshotSource, opts Options) *Manager {
	m := &Manager{
		source:      source,
		idleTTL:     opts.SessionIdleTTL,
		sessions:    make(map[int64]*Session),
		stopJanitor: make(chan struct{}),
	}
	m.catalog = NewResource("catalog", func(ctx context.Context) ([]models.Course, error) {
		return source.Catalog(ctx)
	}, WithPollInterval(opts.CatalogPollInterval))

	if m.idleTTL > 0 {
		interval := opts.JanitorInterval
		if interval <= 0 {
			interval = time.Minute
		}
		go m.janitor(interval)
	}
	return m
}

// Catalog exposes the shared catalog resource.
func (m *Manager) Catalog() *Resource[[]models.Course] {
	return m.catalog
}

// Session returns the cache session for a student, creating it on first use.
// The caller's bearer token is refreshed on every access so session loaders
// always authenticate with the latest credentials.
func (m *Manager) Session(studentID int64, token string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[studentID]
	if !ok {
		s = newSession(m, studentID)
		m.sessions[studentID] = s
	}
	s.touch(token)
	return s
}

// Close stops the janitor and releases every session. Used by tests and
// graceful shutdown.
func (m *Manager) Close() {
	m.janitorOnce.Do(func() { close(m.stopJanitor) })
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.releaseCatalog()
		delete(m.sessions, id)
	}
}

func (m *Manager) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopJanitor:
			return
		case now := <-ticker.C:
			m.evictIdle(now)
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen()) < m.idleTTL {
			continue
		}
		s.releaseCatalog()
		delete(m.sessions, id)
		logs.Info("cache: evicted idle session for student %d", id)
	}
}

// Session holds the caller-specific resources. It implements the invalidation
// surface the mutation coordinator declares against.
type Session struct {
	studentID      int64
	manager        *Manager
	Memberships    *Resource[[]models.MembershipRecord]
	Waitlist       *Resource[[]models.WaitlistEntry]
	releaseCatalog func()

	mu    sync.Mutex
	token string
	seen  time.Time
}

func newSession(m *Manager, studentID int64) *Session {
	s := &Session{
		studentID: studentID,
		manager:   m,
	}
	s.Memberships = NewResource("memberships", func(ctx context.Context) ([]models.MembershipRecord, error) {
		return m.source.Memberships(ctx, s.currentToken())
	})
	s.Waitlist = NewResource("waitlist", func(ctx context.Context) ([]models.WaitlistEntry, error) {
		return m.source.WaitingPositions(ctx, s.currentToken())
	})
	s.releaseCatalog = m.catalog.Observe()
	return s
}

func (s *Session) touch(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != "" {
		s.token = token
	}
	s.seen = time.Now()
}

func (s *Session) currentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) lastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen
}

// InvalidateCatalog marks the shared catalog stale.
func (s *Session) InvalidateCatalog() {
	s.manager.catalog.Invalidate()
}

// InvalidateMemberships marks this caller's membership snapshot stale.
func (s *Session) InvalidateMemberships() {
	s.Memberships.Invalidate()
}

// InvalidateWaitlist marks this caller's waitlist snapshot stale.
func (s *Session) InvalidateWaitlist() {
	s.Waitlist.Invalidate()
}
