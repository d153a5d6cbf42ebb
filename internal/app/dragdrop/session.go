// Package dragdrop drives a single drag gesture from pickup to drop and the
// optimistic reconciliation that follows it.
//
// A Controller owns at most one active Session. Hover events re-order the
// pipeline store speculatively; a drop either restores the pre-drag board,
// keeps an intra-stage reorder locally, or hands the session to a Reconciler
// that confirms the stage change with the CRM API in the background. Once
// handed off the session no longer occupies the controller, so other leads
// can be dragged while the confirmation is in flight.
package dragdrop

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/leadboard/internal/app/collision"
	"github.com/jsamuelsen11/leadboard/internal/app/pipeline"
	"github.com/jsamuelsen11/leadboard/internal/domain/geom"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// State is the lifecycle phase of a drag session.
type State int32

// Session states. Idle is both the initial and the terminal state.
const (
	StateIdle State = iota
	StateDragging
	StateResolving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Session is one drag gesture. Fields other than state are only touched by
// the controller under its lock until the session is handed to a reconciler,
// after which they are read-only.
type Session struct {
	id          string
	leadID      string
	state       atomic.Int32
	snapshot    pipeline.Snapshot
	originStage lead.Stage
	originIndex int
	startedAt   time.Time

	lastRect     geom.Rect
	target       collision.Target
	scrollLocked bool
}

func newSession(leadID string, snap pipeline.Snapshot, stage lead.Stage, index int, rect geom.Rect, now time.Time) *Session {
	s := &Session{
		id:          uuid.NewString(),
		leadID:      leadID,
		snapshot:    snap,
		originStage: stage,
		originIndex: index,
		startedAt:   now,
		lastRect:    rect,
	}
	s.setState(StateDragging)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// LeadID returns the dragged lead.
func (s *Session) LeadID() string { return s.leadID }

// State returns the current lifecycle phase.
func (s *Session) State() State { return State(s.state.Load()) }

// Snapshot returns the board as it was when the drag started.
func (s *Session) Snapshot() pipeline.Snapshot { return s.snapshot }

// Origin returns the stage and within-stage index the lead was picked up from.
func (s *Session) Origin() (lead.Stage, int) { return s.originStage, s.originIndex }

// StartedAt returns when the gesture began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Target returns the most recent hover resolution.
func (s *Session) Target() collision.Target { return s.target }

// ScrollLocked reports whether the last pointer position was in an edge band
// of the scroll container.
func (s *Session) ScrollLocked() bool { return s.scrollLocked }

func (s *Session) setState(st State) { s.state.Store(int32(st)) }
