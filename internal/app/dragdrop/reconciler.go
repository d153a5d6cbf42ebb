package dragdrop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/leadboard/internal/app/pipeline"
	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
	"github.com/jsamuelsen11/leadboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

// DefaultReconcileTimeout bounds a single server confirmation.
const DefaultReconcileTimeout = 10 * time.Second

// ReconcilerConfig holds reconciliation settings.
type ReconcilerConfig struct {
	// Timeout bounds each UpdateLeadStage call. A timeout is a failure.
	Timeout time.Duration
	// Precondition asks the CRM API to reject the change unless the lead is
	// still in the stage it was dragged from.
	Precondition bool
}

// Reconciler confirms dropped stage changes with the CRM API. Each change
// runs on its own goroutine and ends in exactly one of commit or rollback.
type Reconciler struct {
	store    *pipeline.Store
	client   ports.LeadClient
	notifier ports.Notifier
	pending  *PendingSet
	cfg      ReconcilerConfig
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	tracer   trace.Tracer
	now      func() time.Time

	// protect selects leads, besides pending and recently committed ones,
	// whose current placement must survive a rollback.
	protect func(id string) bool

	wg sync.WaitGroup
}

// NewReconciler creates a Reconciler. A nil logger discards output and nil
// metrics disables recording.
func NewReconciler(
	store *pipeline.Store,
	client ports.LeadClient,
	notifier ports.Notifier,
	pending *PendingSet,
	cfg ReconcilerConfig,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *Reconciler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultReconcileTimeout
	}
	return &Reconciler{
		store:    store,
		client:   client,
		notifier: notifier,
		pending:  pending,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		tracer:   otel.Tracer("github.com/jsamuelsen11/leadboard/internal/app/dragdrop"),
		now:      time.Now,
	}
}

// Pending returns the set of in-flight updates.
func (r *Reconciler) Pending() *PendingSet { return r.pending }

// Wait blocks until every in-flight confirmation has committed or rolled back.
func (r *Reconciler) Wait() { r.wg.Wait() }

// Reconcile decides what a drop means for the server. The session must have
// been resolved to a target and already be in its final local position.
//
// A drop that leaves the lead in its origin stage never touches the network:
// a changed position is committed locally and an unchanged one is a no-op.
// A cross-stage drop records a PendingUpdate and starts one background
// confirmation; Reconcile returns without waiting for it.
func (r *Reconciler) Reconcile(ctx context.Context, sess *Session) (ports.DropResult, error) {
	stage, index, ok := r.store.Position(sess.leadID)
	if !ok {
		// The lead vanished in a reload while it was being dragged.
		sess.setState(StateIdle)
		return ports.DropResult{Outcome: ports.DropCancelled, LeadID: sess.leadID}, nil
	}

	res := ports.DropResult{LeadID: sess.leadID, From: sess.originStage, To: stage, Index: index}

	if stage == sess.originStage {
		sess.setState(StateIdle)
		if index == sess.originIndex {
			res.Outcome = ports.DropUnchanged
			return res, nil
		}
		r.store.Commit(sess.leadID)
		res.Outcome = ports.DropLocal
		return res, nil
	}

	update := PendingUpdate{
		LeadID:    sess.leadID,
		SessionID: sess.id,
		From:      sess.originStage,
		To:        stage,
		StartedAt: r.now(),
	}
	if err := r.pending.Add(update); err != nil {
		r.restore(sess)
		sess.setState(StateIdle)
		return ports.DropResult{Outcome: ports.DropCancelled, LeadID: sess.leadID}, err
	}
	sess.setState(StateResolving)
	r.addPending(ctx, 1)

	act := &moveAction{
		r:    r,
		sess: sess,
		change: lead.StageChange{
			LeadID:      sess.leadID,
			From:        sess.originStage,
			To:          stage,
			RequireFrom: r.cfg.Precondition,
		},
	}

	r.logger.InfoContext(ctx, "reconciling drop",
		slog.String("session_id", sess.id),
		slog.String("action", act.Description()),
	)

	// The confirmation outlives the request that dropped the card.
	bg := context.WithoutCancel(ctx)
	r.wg.Add(1)
	go r.run(bg, act, update)

	res.Outcome = ports.DropPending
	return res, nil
}

func (r *Reconciler) run(ctx context.Context, act *moveAction, update PendingUpdate) {
	defer r.wg.Done()

	ctx, span := r.tracer.Start(ctx, "board.reconcile", trace.WithAttributes(
		attribute.String("lead.id", update.LeadID),
		attribute.String("board.stage.from", update.From.String()),
		attribute.String("board.stage.to", update.To.String()),
	))
	defer span.End()

	callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	err := act.Execute(callCtx)
	cancel()

	result := telemetry.ResultCommitted
	if err == nil {
		r.store.Confirm(update.LeadID, act.confirmed)
		r.logger.InfoContext(ctx, "stage change confirmed", slog.String("action", act.Description()))
	} else {
		result = telemetry.ResultRolledBack
		if errors.Is(err, context.DeadlineExceeded) {
			result = telemetry.ResultTimeout
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		r.logger.ErrorContext(ctx, "stage change rejected, rolling back",
			slog.String("operation", "Reconcile"),
			slog.String("action", act.Description()),
			slog.Any("error", err),
		)
		_ = act.Rollback(ctx)
		r.notifyFailure(ctx, update, err)
	}

	// Release the lead only once the store reflects the outcome, so a new
	// drag of it starts from settled state.
	r.pending.Remove(update.LeadID)
	act.sess.setState(StateIdle)
	r.addPending(ctx, -1)
	r.record(ctx, result, r.now().Sub(update.StartedAt))
}

// restore rolls the board back to the session snapshot while keeping every
// other in-flight or confirmed move.
func (r *Reconciler) restore(sess *Session) bool {
	return r.store.Restore(sess.snapshot, sess.leadID, func(id string) bool {
		if r.pending.Has(id) {
			return true
		}
		return r.protect != nil && r.protect(id)
	})
}

func (r *Reconciler) notifyFailure(ctx context.Context, update PendingUpdate, cause error) {
	if r.notifier == nil {
		return
	}
	msg := fmt.Sprintf("Could not move lead to %s; it was returned to %s.", update.To, update.From)
	if errors.Is(cause, domain.ErrConflict) {
		msg = fmt.Sprintf("Lead was changed elsewhere and could not be moved to %s.", update.To)
	}
	r.notifier.Notify(ctx, ports.Notification{
		ID:      uuid.NewString(),
		Level:   ports.LevelError,
		LeadID:  update.LeadID,
		Message: msg,
		At:      r.now(),
	})
}

func (r *Reconciler) addPending(ctx context.Context, delta int64) {
	if r.metrics == nil {
		return
	}
	r.metrics.PendingUpdates.Add(ctx, delta)
}

func (r *Reconciler) record(ctx context.Context, result string, d time.Duration) {
	if r.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(result))
	r.metrics.ReconcileTotal.Add(ctx, 1, attrs)
	r.metrics.ReconcileDuration.Record(ctx, d.Seconds(), attrs)
}

// moveAction is one server-confirmed stage change.
type moveAction struct {
	r      *Reconciler
	sess   *Session
	change lead.StageChange

	// confirmed is the stage the CRM reported after a successful Execute.
	confirmed lead.Stage
}

var _ domain.Action = (*moveAction)(nil)

func (a *moveAction) Execute(ctx context.Context) error {
	updated, err := a.r.client.UpdateLeadStage(ctx, a.change)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrReconciliation, err)
	}
	a.confirmed = a.change.To
	if updated != nil && updated.Stage.IsValid() {
		a.confirmed = updated.Stage
	}
	return nil
}

func (a *moveAction) Rollback(context.Context) error {
	a.r.restore(a.sess)
	return nil
}

func (a *moveAction) Description() string {
	return fmt.Sprintf("move lead %s from %s to %s", a.change.LeadID, a.change.From, a.change.To)
}
