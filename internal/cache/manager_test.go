package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeongbeomSong/CourseEnroll/models"
)

type fakeSource struct {
	catalogCalls     int32
	membershipCalls  int32
	waitlistCalls    int32
	lastToken        atomic.Value
	catalog          []models.Course
	memberships      []models.MembershipRecord
	waitingPositions []models.WaitlistEntry
}

func (f *fakeSource) Catalog(ctx context.Context) ([]models.Course, error) {
	atomic.AddInt32(&f.catalogCalls, 1)
	return f.catalog, nil
}

func (f *fakeSource) Memberships(ctx context.Context, token string) ([]models.MembershipRecord, error) {
	atomic.AddInt32(&f.membershipCalls, 1)
	f.lastToken.Store(token)
	return f.memberships, nil
}

func (f *fakeSource) WaitingPositions(ctx context.Context, token string) ([]models.WaitlistEntry, error) {
	atomic.AddInt32(&f.waitlistCalls, 1)
	f.lastToken.Store(token)
	return f.waitingPositions, nil
}

func TestSessionIsReusedPerStudent(t *testing.T) {
	m := NewManager(&fakeSource{}, Options{})
	defer m.Close()

	a := m.Session(1, "token-a")
	b := m.Session(1, "token-a")
	c := m.Session(2, "token-c")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestSessionLoadersUseLatestToken(t *testing.T) {
	source := &fakeSource{
		memberships: []models.MembershipRecord{{CourseId: 1, RegistrationId: 10}},
	}
	m := NewManager(source, Options{})
	defer m.Close()

	s := m.Session(1, "first-token")
	_, err := s.Memberships.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first-token", source.lastToken.Load())

	// A refreshed token is picked up by the next fetch.
	s = m.Session(1, "second-token")
	s.InvalidateMemberships()
	_, err = s.Memberships.Get(context.Background())
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if source.lastToken.Load() == "second-token" {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, "second-token", source.lastToken.Load())
}

func TestSessionInvalidationSurface(t *testing.T) {
	source := &fakeSource{catalog: []models.Course{{Id: 1}}}
	m := NewManager(source, Options{})
	defer m.Close()

	s := m.Session(1, "token")
	_, err := m.Catalog().Get(context.Background())
	require.NoError(t, err)

	s.InvalidateCatalog()
	_, err = m.Catalog().Get(context.Background())
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if atomic.LoadInt32(&source.catalogCalls) >= 2 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, atomic.LoadInt32(&source.catalogCalls), int32(2))
}

func TestIdleSessionsAreEvicted(t *testing.T) {
	source := &fakeSource{}
	m := NewManager(source, Options{
		SessionIdleTTL:  30 * time.Millisecond,
		JanitorInterval: 10 * time.Millisecond,
	})
	defer m.Close()

	m.Session(1, "token")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.mu.Lock()
		n := len(m.sessions)
		m.mu.Unlock()
		if n == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("idle session was not evicted")
}

func TestActiveSessionSurvivesJanitor(t *testing.T) {
	source := &fakeSource{}
	m := NewManager(source, Options{
		SessionIdleTTL:  80 * time.Millisecond,
		JanitorInterval: 10 * time.Millisecond,
	})
	defer m.Close()

	stop := time.After(200 * time.Millisecond)
	for {
		select {
		case <-stop:
			m.mu.Lock()
			n := len(m.sessions)
			m.mu.Unlock()
			assert.Equal(t, 1, n)
			return
		default:
			m.Session(1, "token")
			time.Sleep(10 * time.Millisecond)
		}
	}
}
