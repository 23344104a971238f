package leads

import (
	"errors"
	"sync"

	"github.com/vinyloveschody/storefront-api/internal/models"
)

// The storefront's lead funnel stages contact data in two named slots:
// the homepage micro-form and the realization-interest micro-form. The
// main contact form reads both back opportunistically; missing slots are
// silently ignored.
const (
	SlotContact     = "contact"
	SlotRealization = "realization"
)

var ErrUnknownSlot = errors.New("unknown prefill slot")

// PrefillStore keeps session-scoped prefill data in memory, keyed by the
// cart session key. The data is short-lived hand-off state, not a record.
type PrefillStore struct {
	mu    sync.Mutex
	slots map[string]map[string]models.LeadPrefill
}

func NewPrefillStore() *PrefillStore {
	return &PrefillStore{slots: make(map[string]map[string]models.LeadPrefill)}
}

// Put stages prefill data under one of the named slots.
func (s *PrefillStore) Put(sessionKey, slot string, data models.LeadPrefill) error {
	if slot != SlotContact && slot != SlotRealization {
		return ErrUnknownSlot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slots[sessionKey] == nil {
		s.slots[sessionKey] = make(map[string]models.LeadPrefill)
	}
	s.slots[sessionKey][slot] = data
	return nil
}

// Get returns all staged slots for a session. Sessions that never staged
// anything get an empty map.
func (s *PrefillStore) Get(sessionKey string) map[string]models.LeadPrefill {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.LeadPrefill, len(s.slots[sessionKey]))
	for slot, data := range s.slots[sessionKey] {
		out[slot] = data
	}
	return out
}

// Clear drops all staged slots for a session, called after the main
// contact form consumed them.
func (s *PrefillStore) Clear(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, sessionKey)
}
