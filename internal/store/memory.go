// Package store keeps the authoritative in-session state: users with their
// habits and check-in log. Persistence is best-effort and lives elsewhere.
package store

import (
	"slices"
	"sync"

	"github.com/anonymity12/habitplanet/pkg/entity"
	"github.com/google/uuid"
)

// Session is one user's state. It is not safe for concurrent use, callers
// serialize access with the per-user section of KeyedMutex.
type Session struct {
	user     *entity.User
	habits   map[uuid.UUID]*entity.Habit
	checkIns []entity.CheckInRecord
}

func NewSession(user *entity.User, habits []*entity.Habit, checkIns []*entity.CheckInRecord) *Session {
	s := &Session{
		user:     user.Clone(),
		habits:   make(map[uuid.UUID]*entity.Habit, len(habits)),
		checkIns: make([]entity.CheckInRecord, 0, len(checkIns)),
	}
	for _, h := range habits {
		s.habits[h.ID] = h.Clone()
	}
	for _, rec := range checkIns {
		s.checkIns = append(s.checkIns, *rec)
	}
	return s
}

func (s *Session) User() *entity.User {
	return s.user.Clone()
}

func (s *Session) SetUser(u *entity.User) {
	s.user = u.Clone()
}

func (s *Session) Habit(id uuid.UUID) (*entity.Habit, bool) {
	h, ok := s.habits[id]
	if !ok {
		return nil, false
	}
	return h.Clone(), true
}

// Habits returns the user's habits, newest first.
func (s *Session) Habits() []*entity.Habit {
	result := make([]*entity.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		result = append(result, h.Clone())
	}
	slices.SortFunc(result, func(a, b *entity.Habit) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return result
}

func (s *Session) PutHabit(h *entity.Habit) {
	s.habits[h.ID] = h.Clone()
}

func (s *Session) DeleteHabit(id uuid.UUID) bool {
	if _, ok := s.habits[id]; !ok {
		return false
	}
	delete(s.habits, id)
	return true
}

// CheckIns returns the log in append order.
func (s *Session) CheckIns() []*entity.CheckInRecord {
	result := make([]*entity.CheckInRecord, 0, len(s.checkIns))
	for i := range s.checkIns {
		rec := s.checkIns[i]
		result = append(result, &rec)
	}
	return result
}

// CountCheckIns returns how many records reference habitID.
func (s *Session) CountCheckIns(habitID uuid.UUID) int {
	n := 0
	for i := range s.checkIns {
		if s.checkIns[i].HabitID == habitID {
			n++
		}
	}
	return n
}

// CommitCheckIn applies the habit update, the new record and the user update
// together.
func (s *Session) CommitCheckIn(h *entity.Habit, rec *entity.CheckInRecord, u *entity.User) {
	s.habits[h.ID] = h.Clone()
	s.checkIns = append(s.checkIns, *rec)
	s.user = u.Clone()
}

// Memory indexes sessions by user id.
type Memory struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[uuid.UUID]*Session)}
}

func (m *Memory) Load(uid uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[uid]
	return s, ok
}

func (m *Memory) Store(uid uuid.UUID, s *Session) {
	m.mu.Lock()
	m.sessions[uid] = s
	m.mu.Unlock()
}

func (m *Memory) Forget(uid uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, uid)
	m.mu.Unlock()
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
