package collision

import (
	"math"

	"github.com/jsamuelsen11/leadboard/internal/domain/geom"
)

const (
	// DefaultMargin inflates every region during the containment phase to
	// tolerate touch imprecision and fast pointer movement.
	DefaultMargin = 8.0

	// DefaultEdgeThreshold is the distance from the container's left or right
	// edge inside which auto-scroll is suppressed.
	DefaultEdgeThreshold = 40.0
)

// Phase records which resolution phase produced a target.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseContainment
	PhaseOverlap
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseContainment:
		return "containment"
	case PhaseOverlap:
		return "overlap"
	default:
		return "none"
	}
}

// Target is the outcome of a resolution: exactly one region, or none.
type Target struct {
	Region Region
	Phase  Phase
}

// Found reports whether a region was resolved.
func (t Target) Found() bool {
	return t.Phase != PhaseNone
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMargin sets the containment inflation margin in pixels.
func WithMargin(m float64) Option {
	return func(r *Resolver) { r.margin = m }
}

// WithEdgeThreshold sets the scroll-lock edge threshold in pixels.
func WithEdgeThreshold(t float64) Option {
	return func(r *Resolver) { r.edgeThreshold = t }
}

// Resolver hit-tests pointer positions against a Registry.
type Resolver struct {
	registry      *Registry
	margin        float64
	edgeThreshold float64
}

// NewResolver creates a Resolver reading regions from registry.
func NewResolver(registry *Registry, opts ...Option) *Resolver {
	r := &Resolver{
		registry:      registry,
		margin:        DefaultMargin,
		edgeThreshold: DefaultEdgeThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps a pointer position to a drop target.
//
// Containment phase: the first region, in registration order, whose rect
// inflated by the margin contains pointer wins.
//
// Overlap phase: when nothing contains the pointer, the region sharing the
// largest area with dragged (the active card's last known bounds) wins. Ties
// go to the earlier registration. No overlap at all resolves nothing.
func (r *Resolver) Resolve(pointer geom.Point, dragged geom.Rect) Target {
	regions := r.registry.Regions()

	for _, reg := range regions {
		if reg.Rect.Inflate(r.margin).Contains(pointer) {
			return Target{Region: reg, Phase: PhaseContainment}
		}
	}

	best := -1
	bestArea := 0.0
	for i, reg := range regions {
		area := dragged.OverlapArea(reg.Rect)
		if area > bestArea {
			best, bestArea = i, area
		}
	}
	if best < 0 {
		return Target{}
	}
	return Target{Region: regions[best], Phase: PhaseOverlap}
}

// ScrollLocked reports whether pointer is within the edge threshold of the
// container's left or right edge. An unset container never locks.
func (r *Resolver) ScrollLocked(pointer geom.Point) bool {
	c := r.registry.Container()
	if c.IsEmpty() {
		return false
	}
	return math.Abs(pointer.X-c.Left()) <= r.edgeThreshold ||
		math.Abs(c.Right()-pointer.X) <= r.edgeThreshold
}
