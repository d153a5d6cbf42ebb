// Package pipeline holds the client-side view of every lead on the board.
//
// The Store is the only shared mutable resource of the drag-and-drop engine.
// It is mutated exclusively through its own API (ApplyLocalMutation, Commit,
// Confirm, Rollback, Load, Insert) and notifies observers once per logical change.
// Per-stage order is the relative order of a stage's leads in one global list.
package pipeline

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// Store is the speculative local copy of the pipeline. It is safe for
// concurrent use: reconciliation results arrive on their own goroutines.
type Store struct {
	mu         sync.RWMutex
	items      []lead.Lead
	baseline   map[string]lead.Stage
	settledAt  map[string]uint64
	generation uint64
	epoch      uint64
	version    uint64

	obsMu     sync.Mutex
	observers []subscriber
	nextSub   Subscription
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		baseline:  make(map[string]lead.Stage),
		settledAt: make(map[string]uint64),
	}
}

// Load replaces the whole list with server data, making every stage durable.
// Snapshots taken before a Load become stale and their rollback is skipped.
func (s *Store) Load(items []lead.Lead) error {
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		if !items[i].Stage.IsValid() {
			return fmt.Errorf("lead %q: invalid stage %d: %w", items[i].ID, int(items[i].Stage), domain.ErrValidation)
		}
		if _, dup := seen[items[i].ID]; dup {
			return fmt.Errorf("duplicate lead id %q: %w", items[i].ID, domain.ErrConflict)
		}
		seen[items[i].ID] = struct{}{}
	}

	s.mu.Lock()
	s.items = slices.Clone(items)
	s.baseline = make(map[string]lead.Stage, len(items))
	for _, l := range items {
		s.baseline[l.ID] = l.Stage
	}
	s.settledAt = make(map[string]uint64)
	s.generation++
	s.version++
	c := Change{Reason: ReasonLoad, Version: s.version}
	s.mu.Unlock()

	s.notify(c)
	return nil
}

// Insert adds a server-created lead at the end of its stage.
func (s *Store) Insert(l lead.Lead) error {
	if !l.Stage.IsValid() {
		return fmt.Errorf("lead %q: invalid stage %d: %w", l.ID, int(l.Stage), domain.ErrValidation)
	}

	s.mu.Lock()
	if s.indexLocked(l.ID) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("lead %q already on the board: %w", l.ID, domain.ErrConflict)
	}
	s.items = insertAt(s.items, l, len(s.items))
	s.baseline[l.ID] = l.Stage
	s.version++
	c := Change{Reason: ReasonInsert, LeadIDs: []string{l.ID}, Version: s.version}
	s.mu.Unlock()

	s.notify(c)
	return nil
}

// ByStage returns the leads of one stage in board order.
func (s *Store) ByStage(stage lead.Stage) []lead.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterStage(s.items, stage)
}

// Items returns a copy of the full list in board order.
func (s *Store) Items() []lead.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Get returns a lead by ID.
func (s *Store) Get(id string) (lead.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return lead.Lead{}, false
	}
	return s.items[i], true
}

// Position returns the lead's current stage and its index within that stage.
func (s *Store) Position(id string) (lead.Stage, int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return positionOf(s.items, id)
}

// Durable reports whether the lead's current stage matches the last
// server-confirmed stage.
func (s *Store) Durable(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	return s.baseline[id] == s.items[i].Stage
}

// Version returns a counter bumped by every logical change.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot captures an immutable deep copy of the full list.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		items:      slices.Clone(s.items),
		generation: s.generation,
		epoch:      s.epoch,
	}
}

// SettledSince returns the IDs committed or restored after the given epoch.
func (s *Store) SettledSince(epoch uint64) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, at := range s.settledAt {
		if at > epoch {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// ApplyLocalMutation speculatively moves a lead to stage at targetIndex
// within that stage (clamped to the stage bounds). It never touches the
// network. Unknown leads and invalid stages are silently ignored. Returns
// whether anything changed.
func (s *Store) ApplyLocalMutation(id string, stage lead.Stage, targetIndex int) bool {
	if !stage.IsValid() {
		return false
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	moved := s.items[i]
	rest := slices.Delete(slices.Clone(s.items), i, i+1)
	fromStage := moved.Stage
	fromIndex := len(filterStage(s.items[:i], fromStage))

	targetIndex = clampIndex(targetIndex, len(filterStage(rest, stage)))
	if fromStage == stage && fromIndex == targetIndex {
		s.mu.Unlock()
		return false
	}

	moved.Stage = stage
	s.items = insertAt(rest, moved, globalIndex(rest, stage, targetIndex))
	s.version++
	c := Change{Reason: ReasonMove, LeadIDs: []string{id}, Version: s.version}
	s.mu.Unlock()

	s.notify(c)
	return true
}

// Commit marks the lead's current local stage as the durable baseline.
// Unknown leads are ignored, so a late confirmation for a lead that vanished
// in a reload is harmless.
func (s *Store) Commit(id string) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.baseline[id] = s.items[i].Stage
	s.epoch++
	s.settledAt[id] = s.epoch
	s.version++
	c := Change{Reason: ReasonCommit, LeadIDs: []string{id}, Version: s.version}
	s.mu.Unlock()

	s.notify(c)
	return true
}

// Confirm records a server-confirmed stage as durable. A lead found in a
// different stage, typically because a reload landed while the update was in
// flight, is first moved to the end of the confirmed stage. Unknown leads and
// invalid stages are ignored.
func (s *Store) Confirm(id string, stage lead.Stage) bool {
	if !stage.IsValid() {
		return false
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	if s.items[i].Stage != stage {
		moved := s.items[i]
		moved.Stage = stage
		rest := slices.Delete(slices.Clone(s.items), i, i+1)
		s.items = insertAt(rest, moved, globalIndex(rest, stage, len(filterStage(rest, stage))))
	}
	s.baseline[id] = stage
	s.epoch++
	s.settledAt[id] = s.epoch
	s.version++
	c := Change{Reason: ReasonCommit, LeadIDs: []string{id}, Version: s.version}
	s.mu.Unlock()

	s.notify(c)
	return true
}

// Rollback atomically replaces the whole list with the snapshot. Observers
// see a single transition. Rolling back to a snapshot taken before the last
// Load is skipped because the reload already reflects the server, and a
// rollback that changes nothing notifies nobody. Returns whether the list
// was replaced.
func (s *Store) Rollback(snap Snapshot) bool {
	s.mu.Lock()
	if snap.generation != s.generation {
		s.mu.Unlock()
		return false
	}
	if slices.Equal(s.items, snap.items) {
		s.mu.Unlock()
		return false
	}

	changed := diffIDs(s.items, snap.items)
	s.items = slices.Clone(snap.items)
	s.version++
	c := Change{Reason: ReasonRollback, LeadIDs: changed, Version: s.version}
	s.mu.Unlock()

	s.notify(c)
	return true
}

// Restore rolls subject back to where snap had it, in one step. The
// snapshot is first rebased onto the current list: leads settled after the
// snapshot was taken, leads selected by keep, and leads inserted since
// capture keep their current placement; every other lead also returns to
// where the snapshot had it. subject counts as settled afterwards, so older
// snapshots restored later leave it alone. keep runs with the store locked
// and must not call back into the store.
func (s *Store) Restore(snap Snapshot, subject string, keep func(id string) bool) bool {
	s.mu.Lock()
	if snap.generation != s.generation {
		s.mu.Unlock()
		return false
	}

	target := snap.Rebase(s.items, func(id string) bool {
		if id == subject {
			return false
		}
		if s.settledAt[id] > snap.epoch {
			return true
		}
		return keep != nil && keep(id)
	})
	s.epoch++
	s.settledAt[subject] = s.epoch
	if slices.Equal(s.items, target.items) {
		s.mu.Unlock()
		return false
	}

	changed := diffIDs(s.items, target.items)
	s.items = target.items
	s.version++
	c := Change{Reason: ReasonRollback, LeadIDs: changed, Version: s.version}
	s.mu.Unlock()

	s.notify(c)
	return true
}

// indexLocked must be called with s.mu held.
func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.items, func(l lead.Lead) bool { return l.ID == id })
}
