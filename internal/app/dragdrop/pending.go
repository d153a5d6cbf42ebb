package dragdrop

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// PendingUpdate is a stage change sent to the CRM API and not yet confirmed.
type PendingUpdate struct {
	LeadID    string
	SessionID string
	From      lead.Stage
	To        lead.Stage
	StartedAt time.Time
}

// PendingSet tracks in-flight updates, at most one per lead.
type PendingSet struct {
	mu      sync.Mutex
	entries map[string]PendingUpdate
}

// NewPendingSet creates an empty set.
func NewPendingSet() *PendingSet {
	return &PendingSet{entries: make(map[string]PendingUpdate)}
}

// Add records an update. Returns domain.ErrItemPending if the lead already
// has one in flight.
func (p *PendingSet) Add(u PendingUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.entries[u.LeadID]; ok {
		return fmt.Errorf("lead %s: %w", u.LeadID, domain.ErrItemPending)
	}
	p.entries[u.LeadID] = u
	return nil
}

// Remove drops the update for a lead. Removing an absent lead is a no-op.
func (p *PendingSet) Remove(leadID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, leadID)
}

// Has reports whether a lead has an update in flight.
func (p *PendingSet) Has(leadID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.entries[leadID]
	return ok
}

// Get returns the in-flight update for a lead.
func (p *PendingSet) Get(leadID string) (PendingUpdate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.entries[leadID]
	return u, ok
}

// List returns all in-flight updates ordered by lead ID.
func (p *PendingSet) List() []PendingUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]PendingUpdate, 0, len(p.entries))
	for _, u := range p.entries {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b PendingUpdate) int { return strings.Compare(a.LeadID, b.LeadID) })
	return out
}

// Len returns the number of in-flight updates.
func (p *PendingSet) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
