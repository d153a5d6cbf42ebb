// Package events fans board events out to connected view-layer subscribers.
//
// The Hub is both the [ports.Notifier] used by the application layer and a
// [pipeline.Observer] subscribed to the PipelineStore. It never blocks the
// caller: every subscriber owns a bounded buffer and events that do not fit
// are dropped for that subscriber only. Clients recover by re-reading the
// board, whose version tells them how much they missed.
package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/leadboard/internal/app/pipeline"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Notifier    = (*Hub)(nil)
	_ pipeline.Observer = (*Hub)(nil)
)

// Event types as they appear on the SSE stream.
const (
	TypeBoard        = "board"
	TypeNotification = "notification"
	TypeOpen         = "open"
)

// DefaultBuffer is the per-subscriber queue length used when none is given.
const DefaultBuffer = 16

// Event is one message delivered to subscribers. Data is JSON-encodable.
type Event struct {
	ID   string
	Type string
	Data any
}

// BoardPayload is the data of a TypeBoard event.
type BoardPayload struct {
	Reason  string   `json:"reason"`
	LeadIDs []string `json:"lead_ids,omitempty"`
	Version uint64   `json:"version"`
}

// OpenPayload is the data of a TypeOpen event.
type OpenPayload struct {
	LeadID      string    `json:"lead_id"`
	DisplayName string    `json:"display_name"`
	Stage       string    `json:"stage"`
	At          time.Time `json:"at"`
}

type subscriber struct {
	ch chan Event
}

// Hub broadcasts events to subscribers.
type Hub struct {
	mu      sync.RWMutex
	subs    map[*subscriber]struct{}
	closed  bool
	buffer  int
	dropped atomic.Uint64
	logger  *slog.Logger
	now     func() time.Time
}

// NewHub creates a Hub whose subscribers each buffer up to buffer events.
// A non-positive buffer selects DefaultBuffer.
func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		subs:   make(map[*subscriber]struct{}),
		buffer: buffer,
		logger: logger,
		now:    time.Now,
	}
}

// Subscribe registers a subscriber. The returned channel is closed by the
// cancel func or by Close; cancel is idempotent. Subscribing to a closed Hub
// yields an already-closed channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, h.buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() { h.remove(sub) })
	}
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
}

// SubscriberCount returns the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped returns how many deliveries were skipped because a subscriber's
// buffer was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close disconnects every subscriber. Later publishes are discarded.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		close(sub.ch)
	}
	h.subs = make(map[*subscriber]struct{})
}

// Notify implements [ports.Notifier].
func (h *Hub) Notify(ctx context.Context, n ports.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.At.IsZero() {
		n.At = h.now()
	}
	h.publish(ctx, Event{ID: n.ID, Type: TypeNotification, Data: n})
}

// LeadOpened implements [ports.Notifier].
func (h *Hub) LeadOpened(ctx context.Context, l lead.Lead) {
	h.publish(ctx, Event{
		ID:   uuid.NewString(),
		Type: TypeOpen,
		Data: OpenPayload{
			LeadID:      l.ID,
			DisplayName: l.DisplayName,
			Stage:       l.Stage.Slug(),
			At:          h.now(),
		},
	})
}

// BoardChanged implements [pipeline.Observer]. It runs on the goroutine that
// mutated the store and only enqueues.
func (h *Hub) BoardChanged(c pipeline.Change) {
	h.publish(context.Background(), Event{
		ID:   uuid.NewString(),
		Type: TypeBoard,
		Data: BoardPayload{
			Reason:  string(c.Reason),
			LeadIDs: c.LeadIDs,
			Version: c.Version,
		},
	})
}

func (h *Hub) publish(ctx context.Context, e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}
	for sub := range h.subs {
		select {
		case sub.ch <- e:
		default:
			h.dropped.Add(1)
			h.logger.DebugContext(ctx, "dropping event for slow subscriber",
				slog.String("event_type", e.Type),
				slog.String("event_id", e.ID),
			)
		}
	}
}
