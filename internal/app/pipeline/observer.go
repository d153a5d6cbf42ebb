package pipeline

import "slices"

// Reason names the logical change an observer is told about.
type Reason string

const (
	ReasonLoad     Reason = "load"
	ReasonInsert   Reason = "insert"
	ReasonMove     Reason = "move"
	ReasonCommit   Reason = "commit"
	ReasonRollback Reason = "rollback"
)

// Change describes one logical store transition. Observers receive exactly one
// Change per transition, after the store has reached its new state.
type Change struct {
	Reason  Reason
	LeadIDs []string
	Version uint64
}

// Observer is notified after every logical change.
type Observer interface {
	BoardChanged(Change)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Change)

// BoardChanged calls f(c).
func (f ObserverFunc) BoardChanged(c Change) { f(c) }

// Subscription identifies a registered observer.
type Subscription uint64

// Subscribe registers an observer and returns the handle used to remove it.
func (s *Store) Subscribe(o Observer) Subscription {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.observers = append(s.observers, subscriber{id: id, observer: o})
	return id
}

// Unsubscribe removes an observer. Unknown handles are ignored.
func (s *Store) Unsubscribe(id Subscription) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	s.observers = slices.DeleteFunc(s.observers, func(sub subscriber) bool { return sub.id == id })
}

type subscriber struct {
	id       Subscription
	observer Observer
}

// notify delivers c to every observer in subscription order. It must be
// called without s.mu held so observers may read the store.
func (s *Store) notify(c Change) {
	s.obsMu.Lock()
	subs := slices.Clone(s.observers)
	s.obsMu.Unlock()

	for _, sub := range subs {
		sub.observer.BoardChanged(c)
	}
}
