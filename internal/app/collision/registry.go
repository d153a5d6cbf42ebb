// Package collision maps pointer positions to drop intents. Droppable regions
// are registered in a Registry; the Resolver hit-tests a pointer against them
// with a containment phase followed by a nearest-intersection fallback.
//
// Everything here is pure geometry: no toolkit types leak in, so the same
// resolver serves pointer and keyboard sensors alike.
package collision

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/geom"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// Kind distinguishes stage-column sentinels from card regions.
type Kind int

const (
	// KindColumn is a whole stage column; dropping on it appends to the stage.
	KindColumn Kind = iota + 1
	// KindCard is a single lead card; dropping on it takes the card's slot.
	KindCard
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindCard:
		return "card"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Region is a registered droppable area.
type Region struct {
	ID     string
	Kind   Kind
	Stage  lead.Stage
	LeadID string // set for KindCard only
	Rect   geom.Rect
}

// Validate checks that the region is well formed.
func (r *Region) Validate() error {
	fields := make(map[string]string)

	if r.ID == "" {
		fields["id"] = domain.MsgRequired
	}
	if !r.Stage.IsValid() {
		fields["stage"] = fmt.Sprintf("invalid: %d", int(r.Stage))
	}
	switch r.Kind {
	case KindColumn:
		if r.LeadID != "" {
			fields["lead_id"] = "must be empty for column regions"
		}
	case KindCard:
		if r.LeadID == "" {
			fields["lead_id"] = "is required for card regions"
		}
	default:
		fields["kind"] = fmt.Sprintf("invalid: %d", int(r.Kind))
	}
	if r.Rect.Width < 0 || r.Rect.Height < 0 {
		fields["rect"] = "must not have negative dimensions"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Registry holds droppable regions in registration order together with the
// bounds of the scrollable board container. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	regions   []Region
	container geom.Rect
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a region. Re-registering an existing ID updates it in
// place and keeps its original registration position.
func (r *Registry) Register(region Region) error {
	if err := region.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(region.ID); i >= 0 {
		r.regions[i] = region
		return nil
	}
	r.regions = append(r.regions, region)
	return nil
}

// Unregister removes a region by ID. Unknown IDs are ignored.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.regions = slices.Delete(r.regions, i, i+1)
	}
}

// Replace swaps the whole layout atomically. Slice order becomes
// registration order. Duplicate IDs are rejected.
func (r *Registry) Replace(regions []Region, container geom.Rect) error {
	seen := make(map[string]struct{}, len(regions))
	var errs []error
	for i := range regions {
		if err := regions[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("regions[%d]: %w", i, err))
			continue
		}
		if _, dup := seen[regions[i].ID]; dup {
			errs = append(errs, &domain.ValidationError{
				Fields: map[string]string{fmt.Sprintf("regions[%d].id", i): "duplicate " + regions[i].ID},
			})
		}
		seen[regions[i].ID] = struct{}{}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.regions = slices.Clone(regions)
	r.container = container
	return nil
}

// SetContainer records the bounds of the scrollable board container.
func (r *Registry) SetContainer(rect geom.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.container = rect
}

// Container returns the bounds of the scrollable board container.
func (r *Registry) Container() geom.Rect {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.container
}

// Regions returns a copy of the registered regions in registration order.
func (r *Registry) Regions() []Region {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.regions)
}

// Len returns the number of registered regions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.regions)
}

// indexOf must be called with r.mu held.
func (r *Registry) indexOf(id string) int {
	return slices.IndexFunc(r.regions, func(reg Region) bool { return reg.ID == id })
}
