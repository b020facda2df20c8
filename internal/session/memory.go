package session

import "sync"

// MemoryStore is an in-memory Store backed by a mutex-guarded map.
// Concurrent events for the same user are last-write-wins; there is no
// ordering guarantee between them.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*Session),
	}
}

func (s *MemoryStore) Get(userID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Session{State: StateIdle, Data: map[string]interface{}{}}
	}

	// Copy so callers cannot mutate the stored map without going through SetData
	data := make(map[string]interface{}, len(sess.Data))
	for k, v := range sess.Data {
		data[k] = v
	}
	return Session{State: sess.State, Data: data}
}

func (s *MemoryStore) SetState(userID int64, state State, data map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.ensure(userID)
	sess.State = state
	for k, v := range data {
		sess.Data[k] = v
	}
}

func (s *MemoryStore) ClearState(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.ensure(userID)
	sess.State = StateIdle
	sess.Data = make(map[string]interface{})
}

func (s *MemoryStore) GetData(userID int64) map[string]interface{} {
	return s.Get(userID).Data
}

func (s *MemoryStore) GetValue(userID int64, key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}
	value, ok := sess.Data[key]
	return value, ok
}

func (s *MemoryStore) SetData(userID int64, key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure(userID).Data[key] = value
}

// ensure returns the stored session for a user, creating it if needed.
// Callers must hold the write lock.
func (s *MemoryStore) ensure(userID int64) *Session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{State: StateIdle, Data: make(map[string]interface{})}
		s.sessions[userID] = sess
	}
	return sess
}
