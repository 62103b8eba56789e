// Package session persists the active identity in a single key-value slot.
// Absence of the slot means "no active session"; unreadable data is treated
// the same way. Every write replaces the whole record (last-writer-wins).
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/eduforge/backend/internal/app/models"
)

// SlotKey is the fixed key the serialized identity lives under.
const SlotKey = "eduforgeUser"

// Store holds at most one active identity.
type Store interface {
	// Save replaces the persisted identity.
	Save(ctx context.Context, identity *models.Identity) error
	// Load returns the persisted identity, or nil when the slot is empty
	// or holds data that cannot be decoded.
	Load(ctx context.Context) (*models.Identity, error)
	// Clear removes the persisted identity. Clearing an empty slot is a no-op.
	Clear(ctx context.Context) error
}

// MemoryStore is the in-process Store used by default and in tests.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, identity *models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = raw
	s.mu.Unlock()
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context) (*models.Identity, error) {
	s.mu.Lock()
	raw := s.data
	s.mu.Unlock()
	return decode(raw), nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
	return nil
}

// decode unmarshals a stored record, mapping corrupt data to "no session".
func decode(raw []byte) *models.Identity {
	if len(raw) == 0 {
		return nil
	}
	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil
	}
	if identity.ID == "" {
		return nil
	}
	return &identity
}
