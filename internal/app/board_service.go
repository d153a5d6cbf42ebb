// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/leadboard/internal/app/collision"
	"github.com/jsamuelsen11/leadboard/internal/app/dragdrop"
	"github.com/jsamuelsen11/leadboard/internal/app/fanout"
	"github.com/jsamuelsen11/leadboard/internal/app/pipeline"
	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/geom"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

const (
	// DefaultLoadConcurrency bounds parallel per-stage fetches during a reload.
	DefaultLoadConcurrency = 5
	// DefaultReloadTimeout bounds a shared reload once it no longer follows
	// the context of the caller that started it.
	DefaultReloadTimeout = 30 * time.Second
)

// BoardDeps groups the collaborators of a BoardService.
type BoardDeps struct {
	Client     ports.LeadClient
	Notifier   ports.Notifier
	Store      *pipeline.Store
	Registry   *collision.Registry
	Controller *dragdrop.Controller
}

// BoardConfig holds reload settings.
type BoardConfig struct {
	// LoadConcurrency bounds parallel per-stage fetches.
	LoadConcurrency int
	// ReloadTimeout bounds one shared fetch.
	ReloadTimeout time.Duration
}

// BoardService implements ports.BoardService. It loads the pipeline from
// the CRM API, exposes the board read model and forwards gestures to the
// drag controller.
type BoardService struct {
	client     ports.LeadClient
	notifier   ports.Notifier
	store      *pipeline.Store
	registry   *collision.Registry
	controller *dragdrop.Controller
	logger     *slog.Logger

	cfg     BoardConfig
	reloads singleflight.Group
}

// NewBoardService creates a BoardService. A nil logger discards output and
// non-positive settings fall back to DefaultLoadConcurrency and
// DefaultReloadTimeout.
func NewBoardService(deps BoardDeps, cfg BoardConfig, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.LoadConcurrency <= 0 {
		cfg.LoadConcurrency = DefaultLoadConcurrency
	}
	if cfg.ReloadTimeout <= 0 {
		cfg.ReloadTimeout = DefaultReloadTimeout
	}
	return &BoardService{
		client:     deps.Client,
		notifier:   deps.Notifier,
		store:      deps.Store,
		registry:   deps.Registry,
		controller: deps.Controller,
		logger:     logger,
		cfg:        cfg,
	}
}

// Reload fetches every stage in parallel and replaces the local board.
// A failure on any stage leaves the current board untouched. Concurrent
// callers share one fetch; it runs detached from any single caller, so a
// caller that gives up returns its own context error without failing the
// others.
func (s *BoardService) Reload(ctx context.Context) error {
	ch := s.reloads.DoChan("board", func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ReloadTimeout)
		defer cancel()
		return nil, s.load(loadCtx)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.logger.DebugContext(ctx, "joined in-flight board reload")
		}
		return res.Err
	}
}

func (s *BoardService) load(ctx context.Context) error {
	s.logger.InfoContext(ctx, "loading board", slog.Int("stages", lead.StageCount))

	results := fanout.Run(ctx, s.cfg.LoadConcurrency, lead.Stages(),
		func(ctx context.Context, st lead.Stage) ([]lead.Lead, error) {
			return s.client.ListLeads(ctx, lead.Filter{Stage: st})
		})
	perStage, err := fanout.Collect(results)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load board",
			slog.String("operation", "Reload"),
			slog.Any("error", err),
		)
		return err
	}

	// A gesture that started on the old data cannot be resolved against
	// the new one, so it ends before the swap and none can start during it.
	items := slices.Concat(perStage...)
	if err := s.controller.Reset(ctx, func() error { return s.store.Load(items) }); err != nil {
		s.logger.ErrorContext(ctx, "rejected board data",
			slog.String("operation", "Reload"),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "board loaded", slog.Int("leads", len(items)))
	return nil
}

// Board returns the current board view.
func (s *BoardService) Board(_ context.Context) (*ports.BoardView, error) {
	view := &ports.BoardView{
		Columns: make([]ports.ColumnView, 0, lead.StageCount),
		Version: s.store.Version(),
	}
	for _, st := range lead.Stages() {
		leads := s.store.ByStage(st)
		col := ports.ColumnView{Stage: st, Cards: make([]ports.CardView, 0, len(leads))}
		for _, l := range leads {
			col.Cards = append(col.Cards, ports.CardView{
				Lead:    l,
				Pending: s.controller.Pending(l.ID),
				Durable: s.store.Durable(l.ID),
			})
		}
		view.Columns = append(view.Columns, col)
	}
	if info, ok := s.controller.Active(); ok {
		view.Session = sessionView(info)
	}
	return view, nil
}

// SetLayout replaces the droppable regions. Regions with a lead ID are
// cards; the rest are stage columns.
func (s *BoardService) SetLayout(ctx context.Context, layout ports.Layout) error {
	regions := make([]collision.Region, 0, len(layout.Regions))
	for _, r := range layout.Regions {
		kind := collision.KindColumn
		if r.LeadID != "" {
			kind = collision.KindCard
		}
		regions = append(regions, collision.Region{
			ID:     r.ID,
			Kind:   kind,
			Stage:  r.Stage,
			LeadID: r.LeadID,
			Rect:   r.Rect,
		})
	}

	if err := s.registry.Replace(regions, layout.Container); err != nil {
		s.logger.WarnContext(ctx, "rejected board layout",
			slog.String("operation", "SetLayout"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// StartDrag begins a drag session on a lead.
func (s *BoardService) StartDrag(ctx context.Context, leadID string, rect geom.Rect) (*ports.SessionView, error) {
	info, err := s.controller.Start(ctx, leadID, rect)
	if err != nil {
		s.logger.InfoContext(ctx, "drag start rejected",
			slog.String("lead_id", leadID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return sessionView(info), nil
}

// Hover feeds a pointer move into the active session.
func (s *BoardService) Hover(ctx context.Context, pointer geom.Point, rect geom.Rect) (*ports.HoverResult, error) {
	res, err := s.controller.Hover(ctx, pointer, rect)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Drop releases the active session.
func (s *BoardService) Drop(ctx context.Context, pointer geom.Point, rect geom.Rect) (*ports.DropResult, error) {
	res, err := s.controller.Drop(ctx, pointer, rect)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "lead dropped",
		slog.String("lead_id", res.LeadID),
		slog.String("outcome", string(res.Outcome)),
	)
	return &res, nil
}

// CancelDrag aborts the active session.
func (s *BoardService) CancelDrag(ctx context.Context) error {
	return s.controller.Cancel(ctx)
}

// AddLead validates and creates a lead in the CRM API, then shows it on the
// board. It works during a drag: a cancelled or refused drag leaves the new
// lead in place.
func (s *BoardService) AddLead(ctx context.Context, l *lead.Lead) (*lead.Lead, error) {
	s.logger.InfoContext(ctx, "creating lead", slog.String("stage", l.Stage.String()))

	if err := l.Validate(); err != nil {
		return nil, err
	}

	created, err := s.client.CreateLead(ctx, l)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create lead",
			slog.String("operation", "AddLead"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.store.Insert(*created); err != nil {
		// A reload that raced the create already shows the lead.
		s.logger.WarnContext(ctx, "created lead already on board",
			slog.String("lead_id", created.ID),
			slog.Any("error", err),
		)
	}
	return created, nil
}

// OpenLead reports a card click. Clicks are suppressed mid-drag.
func (s *BoardService) OpenLead(ctx context.Context, leadID string) (*lead.Lead, error) {
	if s.controller.Dragging() {
		return nil, domain.ErrAlreadyDragging
	}
	l, ok := s.store.Get(leadID)
	if !ok {
		return nil, fmt.Errorf("lead %s: %w", leadID, domain.ErrNotFound)
	}
	s.notifier.LeadOpened(ctx, l)
	return &l, nil
}

func sessionView(info dragdrop.Info) *ports.SessionView {
	return &ports.SessionView{
		ID:           info.ID,
		LeadID:       info.LeadID,
		State:        info.State.String(),
		TargetID:     info.TargetID,
		ScrollLocked: info.ScrollLocked,
	}
}
