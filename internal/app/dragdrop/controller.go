package dragdrop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/leadboard/internal/app/collision"
	"github.com/jsamuelsen11/leadboard/internal/app/pipeline"
	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/geom"
	"github.com/jsamuelsen11/leadboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

// Info is a point-in-time view of the active session.
type Info struct {
	ID           string
	LeadID       string
	State        State
	TargetID     string
	ScrollLocked bool
}

// Controller owns the single active drag session and feeds it pointer
// events. All gesture methods are serialized.
type Controller struct {
	mu         sync.Mutex
	store      *pipeline.Store
	resolver   *collision.Resolver
	reconciler *Reconciler
	active     *Session
	activeLead atomic.Pointer[string]
	logger     *slog.Logger
	metrics    *telemetry.Metrics
	now        func() time.Time
}

// NewController creates a Controller. A nil logger discards output and nil
// metrics disables recording.
func NewController(
	store *pipeline.Store,
	resolver *collision.Resolver,
	reconciler *Reconciler,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		store:      store,
		resolver:   resolver,
		reconciler: reconciler,
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
	// A failed confirmation must not yank the card the user is holding.
	reconciler.protect = c.isActiveLead
	return c
}

// Start picks up a lead. rect is the lead card's bounding box.
//
// Returns domain.ErrAlreadyDragging if a session is active,
// domain.ErrItemPending if the lead has an unconfirmed move in flight and
// domain.ErrNotFound if the board has no such lead.
func (c *Controller) Start(ctx context.Context, leadID string, rect geom.Rect) (Info, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return Info{}, domain.ErrAlreadyDragging
	}
	if c.reconciler.pending.Has(leadID) {
		return Info{}, fmt.Errorf("lead %s: %w", leadID, domain.ErrItemPending)
	}
	stage, index, ok := c.store.Position(leadID)
	if !ok {
		return Info{}, fmt.Errorf("lead %s: %w", leadID, domain.ErrNotFound)
	}

	sess := newSession(leadID, c.store.Snapshot(), stage, index, rect, c.now())
	c.active = sess
	c.activeLead.Store(&leadID)

	c.logger.DebugContext(ctx, "drag started",
		slog.String("session_id", sess.id),
		slog.String("lead_id", leadID),
		slog.String("stage", stage.String()),
	)
	return sess.info(), nil
}

// Hover resolves the pointer against the registered regions and, when the
// resolved region changed, moves the lead there speculatively. rect is the
// dragged card's current bounding box; an empty rect reuses the last one.
func (c *Controller) Hover(ctx context.Context, pointer geom.Point, rect geom.Rect) (ports.HoverResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.active
	if sess == nil {
		return ports.HoverResult{}, domain.ErrNotDragging
	}

	moved := c.track(sess, pointer, rect)
	if moved {
		c.logger.DebugContext(ctx, "drag moved",
			slog.String("session_id", sess.id),
			slog.String("target_id", sess.target.Region.ID),
		)
	}
	return ports.HoverResult{
		TargetID:     sess.target.Region.ID,
		Moved:        moved,
		ScrollLocked: sess.scrollLocked,
	}, nil
}

// Drop releases the lead. A drop that resolves no target restores the
// pre-drag board and reports DropCancelled. Otherwise the session is handed
// to the reconciler and the controller is immediately free for a new drag.
func (c *Controller) Drop(ctx context.Context, pointer geom.Point, rect geom.Rect) (ports.DropResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.active
	if sess == nil {
		return ports.DropResult{}, domain.ErrNotDragging
	}

	c.track(sess, pointer, rect)
	c.release()

	if !sess.target.Found() {
		c.reconciler.restore(sess)
		sess.setState(StateIdle)
		c.logger.DebugContext(ctx, "drop cancelled",
			slog.String("session_id", sess.id),
			slog.Any("reason", domain.ErrNoDropTarget),
		)
		c.recordDrag(ctx, ports.DropCancelled)
		return ports.DropResult{Outcome: ports.DropCancelled, LeadID: sess.leadID}, nil
	}

	sess.setState(StateResolving)
	res, err := c.reconciler.Reconcile(ctx, sess)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to reconcile drop",
			slog.String("operation", "Drop"),
			slog.String("session_id", sess.id),
			slog.Any("error", err),
		)
	}
	c.recordDrag(ctx, res.Outcome)
	return res, err
}

// Cancel aborts the active session and restores the pre-drag board.
func (c *Controller) Cancel(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return domain.ErrNotDragging
	}
	c.cancelLocked(ctx)
	return nil
}

// Reset ends any active session, restoring the pre-drag board, and then
// runs replace while gestures are still blocked. A hover that arrives
// meanwhile sees no session instead of moving a card on the replaced data.
// replace must not call back into the Controller.
func (c *Controller) Reset(ctx context.Context, replace func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		c.cancelLocked(ctx)
	}
	return replace()
}

// cancelLocked must be called with c.mu held and a session active.
func (c *Controller) cancelLocked(ctx context.Context) {
	sess := c.active
	c.release()
	c.reconciler.restore(sess)
	sess.setState(StateIdle)
	c.logger.DebugContext(ctx, "drag cancelled", slog.String("session_id", sess.id))
	c.recordDrag(ctx, ports.DropCancelled)
}

// Active returns the active session, if any.
func (c *Controller) Active() (Info, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return Info{}, false
	}
	return c.active.info(), true
}

// Dragging reports whether a session is active. Card clicks are suppressed
// while it is true.
func (c *Controller) Dragging() bool {
	return c.activeLead.Load() != nil
}

// Pending reports whether a lead has an unconfirmed stage change.
func (c *Controller) Pending(leadID string) bool {
	return c.reconciler.pending.Has(leadID)
}

// track updates the session from a pointer event and applies a speculative
// move when the resolved region differs from the previous one. Must be
// called with c.mu held.
func (c *Controller) track(sess *Session, pointer geom.Point, rect geom.Rect) bool {
	if !rect.IsEmpty() {
		sess.lastRect = rect
	}
	sess.scrollLocked = c.resolver.ScrollLocked(pointer)

	target := c.resolver.Resolve(pointer, sess.lastRect)
	prev := sess.target
	sess.target = target
	if !target.Found() || target.Region.ID == prev.Region.ID {
		return false
	}
	return c.apply(sess.leadID, target.Region)
}

// apply maps a region to a stage and within-stage index. Over a column the
// lead joins the end of that stage unless it is already in it; over a card
// it takes that card's slot.
func (c *Controller) apply(leadID string, region collision.Region) bool {
	switch region.Kind {
	case collision.KindColumn:
		current, _, ok := c.store.Position(leadID)
		if !ok || current == region.Stage {
			return false
		}
		return c.store.ApplyLocalMutation(leadID, region.Stage, len(c.store.ByStage(region.Stage)))
	case collision.KindCard:
		if region.LeadID == leadID {
			return false
		}
		stage, index, ok := c.store.Position(region.LeadID)
		if !ok {
			return false
		}
		return c.store.ApplyLocalMutation(leadID, stage, index)
	default:
		return false
	}
}

// release frees the session slot. Must be called with c.mu held.
func (c *Controller) release() {
	c.active = nil
	c.activeLead.Store(nil)
}

func (c *Controller) isActiveLead(id string) bool {
	p := c.activeLead.Load()
	return p != nil && *p == id
}

func (c *Controller) recordDrag(ctx context.Context, outcome ports.DropOutcome) {
	if c.metrics == nil {
		return
	}
	c.metrics.DragTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOutcome.String(string(outcome))))
}

func (s *Session) info() Info {
	return Info{
		ID:           s.id,
		LeadID:       s.leadID,
		State:        s.State(),
		TargetID:     s.target.Region.ID,
		ScrollLocked: s.scrollLocked,
	}
}
