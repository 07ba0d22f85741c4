package hubui

import (
	"context"
	"sync"
	"time"

	"hubboard/internal/logs"

	"github.com/google/uuid"
)

type SessionOptions struct {
	TTL   time.Duration // простой сессии до удаления; 0 — без истечения
	Max   int           // 0 — без ограничения
	Clock Clock
}

type session struct {
	board    *Board
	lastSeen time.Time
}

// Sessions — in-memory реестр досок по id сессии.
type Sessions struct {
	mu   sync.RWMutex
	byID map[string]*session
	ttl  time.Duration
	max  int
	now  Clock
}

func NewSessions(opts SessionOptions) *Sessions {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Sessions{
		byID: make(map[string]*session),
		ttl:  opts.TTL,
		max:  opts.Max,
		now:  now,
	}
}

// Get returns the board of a live session and marks it as used.
func (s *Sessions) Get(id string) (*Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(ss, now) {
		delete(s.byID, id)
		return nil, false
	}
	ss.lastSeen = now
	return ss.board, true
}

// Create starts a session with a freshly seeded board.
func (s *Sessions) Create() (string, *Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.byID) >= s.max {
		s.evictOldestLocked()
	}
	id := uuid.NewString()
	b := NewBoard(s.now)
	s.byID[id] = &session{board: b, lastSeen: s.now()}
	return id, b
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Sweep drops idle sessions and reports how many went away.
func (s *Sessions) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, ss := range s.byID {
		if s.expired(ss, now) {
			delete(s.byID, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				logs.Logger.WithField("evicted", n).Debug("sessions swept")
			}
		}
	}
}

func (s *Sessions) expired(ss *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(ss.lastSeen) > s.ttl
}

func (s *Sessions) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, ss := range s.byID {
		if oldestID == "" || ss.lastSeen.Before(oldest) {
			oldestID, oldest = id, ss.lastSeen
		}
	}
	if oldestID != "" {
		delete(s.byID, oldestID)
	}
}
