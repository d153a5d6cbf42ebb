package ports

import (
	"context"

	"github.com/jsamuelsen11/leadboard/internal/domain/geom"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// BoardService defines the service port for the lead pipeline board.
// Implemented by the application layer; called by inbound adapters (handlers).
type BoardService interface {
	// Reload replaces the local board with the CRM API's current leads.
	// Concurrent reloads share a single downstream fetch.
	Reload(ctx context.Context) error

	// Board returns the current board view: one column per stage in
	// pipeline order.
	Board(ctx context.Context) (*BoardView, error)

	// SetLayout replaces the droppable regions and the scroll container
	// bounds used for hit-testing.
	SetLayout(ctx context.Context, layout Layout) error

	// StartDrag begins a drag session on a lead.
	// Returns domain.ErrAlreadyDragging, domain.ErrItemPending or
	// domain.ErrNotFound.
	StartDrag(ctx context.Context, leadID string, rect geom.Rect) (*SessionView, error)

	// Hover feeds a pointer move into the active session.
	// Returns domain.ErrNotDragging outside a session.
	Hover(ctx context.Context, pointer geom.Point, rect geom.Rect) (*HoverResult, error)

	// Drop releases the active session. A drop that resolves no target is a
	// cancellation, reported through DropResult.Outcome, not as an error.
	Drop(ctx context.Context, pointer geom.Point, rect geom.Rect) (*DropResult, error)

	// CancelDrag aborts the active session and restores the pre-drag board.
	CancelDrag(ctx context.Context) error

	// AddLead creates a lead directly in a stage, bypassing drag entirely.
	AddLead(ctx context.Context, l *lead.Lead) (*lead.Lead, error)

	// OpenLead handles a non-drag click. Returns domain.ErrAlreadyDragging
	// while a drag session is active so no details view opens mid-gesture.
	OpenLead(ctx context.Context, leadID string) (*lead.Lead, error)
}

// BoardView is the read model rendered by the board.
type BoardView struct {
	Columns []ColumnView
	Session *SessionView
	Version uint64
}

// ColumnView is one stage column.
type ColumnView struct {
	Stage lead.Stage
	Cards []CardView
}

// CardView is one lead card. Pending is set while a stage change for the
// lead awaits server confirmation; such cards cannot be dragged.
type CardView struct {
	Lead    lead.Lead
	Pending bool
	Durable bool
}

// SessionView describes the active drag session.
type SessionView struct {
	ID           string
	LeadID       string
	State        string
	TargetID     string
	ScrollLocked bool
}

// Layout is the droppable geometry reported by the view layer. Region order
// is registration order.
type Layout struct {
	Container geom.Rect
	Regions   []LayoutRegion
}

// LayoutRegion is one droppable area: a stage column when LeadID is empty,
// otherwise a lead card.
type LayoutRegion struct {
	ID     string
	Stage  lead.Stage
	LeadID string
	Rect   geom.Rect
}

// HoverResult reports what a pointer move resolved to.
type HoverResult struct {
	TargetID     string
	Moved        bool
	ScrollLocked bool
}

// DropOutcome classifies how a drop ended.
type DropOutcome string

const (
	// DropCancelled: no target resolved; the board was restored.
	DropCancelled DropOutcome = "cancelled"
	// DropUnchanged: the lead ended where it started; nothing to confirm.
	DropUnchanged DropOutcome = "unchanged"
	// DropLocal: intra-stage reorder, kept locally with no network call.
	DropLocal DropOutcome = "local"
	// DropPending: a stage change was sent to the CRM API.
	DropPending DropOutcome = "pending"
)

// DropResult reports the outcome of a drop.
type DropResult struct {
	Outcome DropOutcome
	LeadID  string
	From    lead.Stage
	To      lead.Stage
	Index   int
}
