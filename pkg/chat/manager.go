package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Session is one connected websocket chat visitor.
type Session struct {
	ID   string
	Conn *websocket.Conn
	Send chan any      // frames queued for the write loop
	Done chan struct{} // closed when the session ends
	once sync.Once
}

func (s *Session) close() {
	s.once.Do(func() { close(s.Done) })
}

// ConnectionManager tracks the open chat sessions.
type ConnectionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		sessions: make(map[string]*Session),
	}
}

// AddSession registers a connection under id, replacing any previous session with that id.
func (cm *ConnectionManager) AddSession(id string, conn *websocket.Conn) *Session {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if existing, ok := cm.sessions[id]; ok {
		existing.close()
		existing.Conn.Close()
	}

	s := &Session{
		ID:   id,
		Conn: conn,
		Send: make(chan any, 16),
		Done: make(chan struct{}),
	}
	cm.sessions[id] = s
	return s
}

// RemoveSession unregisters s if it is still the current session for its id.
func (cm *ConnectionManager) RemoveSession(s *Session) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	s.close()
	if cur, ok := cm.sessions[s.ID]; ok && cur == s {
		delete(cm.sessions, s.ID)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.sessions)
}

// CloseAll ends every session. Used on shutdown.
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for id, s := range cm.sessions {
		s.close()
		s.Conn.Close()
		delete(cm.sessions, id)
	}
}

// Deliver queues a frame for s. It reports false when the session has ended or its queue is full.
func (s *Session) Deliver(frame any) bool {
	select {
	case <-s.Done:
		return false
	default:
	}

	select {
	case s.Send <- frame:
		return true
	case <-s.Done:
		return false
	default:
		return false
	}
}
