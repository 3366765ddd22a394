package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store keeps the open sessions in memory. A session is dropped once it
// reaches the terminal step, is closed, or sits idle longer than the TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     Deps
	ttl      time.Duration
}

// NewStore returns an empty store. A zero ttl keeps idle sessions forever.
func NewStore(deps Deps, ttl time.Duration) *Store {
	return &Store{sessions: make(map[string]*Session), deps: deps, ttl: ttl}
}

// Open starts a new session. userID may be empty for anonymous visitors.
func (st *Store) Open(userID string) *Session {
	id := uuid.NewString()
	s := NewSession(id, userID, st.deps)
	s.onDone = func() { st.remove(id) }

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return s
}

// Get returns the open session with the given id. An idle session past its
// TTL is evicted and reported as not found.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if st.expired(s, st.deps.now()) {
		st.remove(id)
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Close discards the session with the given id.
func (st *Store) Close(id string) error {
	s, err := st.Get(id)
	if err != nil {
		return err
	}
	s.Close()
	return nil
}

// Len is the number of open sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Reap evicts every idle session past the TTL and returns how many went.
func (st *Store) Reap() int {
	if st.ttl <= 0 {
		return 0
	}
	now := st.deps.now()
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		if st.expired(s, now) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Run reaps idle sessions every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	if st.ttl <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := st.Reap(); n > 0 {
				log.Debug().Int("evicted", n).Int("open", st.Len()).Msg("idle wizard sessions evicted")
			}
		}
	}
}

func (st *Store) expired(s *Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(s.LastActive()) > st.ttl
}

func (st *Store) remove(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
