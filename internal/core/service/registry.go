package service

import (
	"log"
	"sync"
	"time"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
	"github.com/namhbcf1/smartpos-sub005/internal/port"
)

const msgInventoryUpdate = "inventory_update"

// Session is one live client connection, bound to exactly one store for its
// lifetime.
type Session struct {
	ID          string
	StoreID     string
	ClientID    string
	Conn        port.Connection
	ConnectedAt time.Time
	LastSeenAt  time.Time
}

// ConnectionRegistry tracks live sessions per store and fans deltas out to
// them. Sessions of one store are never visible to a broadcast for another.
type ConnectionRegistry struct {
	mu      sync.Mutex
	byStore map[string]map[string]*Session
	byID    map[string]*Session
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		byStore: make(map[string]map[string]*Session),
		byID:    make(map[string]*Session),
	}
}

func (r *ConnectionRegistry) Register(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store := r.byStore[s.StoreID]
	if store == nil {
		store = make(map[string]*Session)
		r.byStore[s.StoreID] = store
	}
	store[s.ID] = s
	r.byID[s.ID] = s
}

func (r *ConnectionRegistry) Unregister(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(sessionID)
}

func (r *ConnectionRegistry) removeLocked(sessionID string) {
	s, ok := r.byID[sessionID]
	if !ok {
		return
	}
	delete(r.byID, sessionID)
	if store := r.byStore[s.StoreID]; store != nil {
		delete(store, sessionID)
		if len(store) == 0 {
			delete(r.byStore, s.StoreID)
		}
	}
}

// Touch records client activity (e.g. a ping) on a session.
func (r *ConnectionRegistry) Touch(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byID[sessionID]; ok {
		s.LastSeenAt = time.Now()
	}
}

// SessionCount returns the number of live sessions for a store.
func (r *ConnectionRegistry) SessionCount(storeID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byStore[storeID])
}

// Broadcast delivers the delta to every live session of the store and
// returns the number of successful deliveries. A failed send evicts that
// session and closes its connection; the remaining sessions still receive
// the delta. Sessions of other stores are never iterated.
func (r *ConnectionRegistry) Broadcast(storeID string, delta domain.BroadcastDelta) int {
	r.mu.Lock()
	targets := make([]*Session, 0, len(r.byStore[storeID]))
	for _, s := range r.byStore[storeID] {
		targets = append(targets, s)
	}
	r.mu.Unlock()

	delivered := 0
	for _, s := range targets {
		if err := s.Conn.Send(msgInventoryUpdate, delta); err != nil {
			log.Printf("registry: evicting session %s (store %s): %v", s.ID, storeID, err)
			r.Unregister(s.ID)
			s.Conn.Close()
			continue
		}
		delivered++
	}
	return delivered
}
