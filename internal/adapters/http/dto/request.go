package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/geom"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

const (
	msgRequired    = "is required"
	msgNonNegative = "must not be negative"
)

// RectRequest is a rectangle in board coordinates.
type RectRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToRect converts the request to a geom.Rect.
func (r RectRequest) ToRect() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (r RectRequest) validate(field string, fields map[string]string) {
	if r.Width < 0 {
		fields[field+".width"] = msgNonNegative
	}
	if r.Height < 0 {
		fields[field+".height"] = msgNonNegative
	}
}

// StartDragRequest is the JSON body of POST /api/v1/board/drag.
type StartDragRequest struct {
	LeadID string      `json:"lead_id"`
	Rect   RectRequest `json:"rect"`
}

// Validate checks that the lead is named and the rect is well-formed.
func (r *StartDragRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.LeadID) == "" {
		fields["lead_id"] = msgRequired
	}
	r.Rect.validate("rect", fields)

	return validationResult(fields)
}

// PointerRequest is the JSON body of the hover and drop endpoints: the
// pointer position plus the dragged card's current rectangle.
type PointerRequest struct {
	X    float64     `json:"x"`
	Y    float64     `json:"y"`
	Rect RectRequest `json:"rect"`
}

// Validate checks that the rect is well-formed.
func (r *PointerRequest) Validate() error {
	fields := make(map[string]string)
	r.Rect.validate("rect", fields)
	return validationResult(fields)
}

// Point returns the pointer position.
func (r *PointerRequest) Point() geom.Point {
	return geom.Point{X: r.X, Y: r.Y}
}

// RegionRequest is one droppable region. A region without lead_id is a
// stage column; one with lead_id is a card inside that stage.
type RegionRequest struct {
	ID     string      `json:"id"`
	Stage  string      `json:"stage"`
	LeadID string      `json:"lead_id,omitempty"`
	Rect   RectRequest `json:"rect"`
}

// LayoutRequest is the JSON body of PUT /api/v1/board/regions. Region order
// is registration order and breaks collision ties.
type LayoutRequest struct {
	Container RectRequest     `json:"container"`
	Regions   []RegionRequest `json:"regions"`
}

// Validate checks every region for an ID, a known stage and a well-formed
// rect. Region IDs must be unique.
func (r *LayoutRequest) Validate() error {
	fields := make(map[string]string)

	r.Container.validate("container", fields)

	seen := make(map[string]struct{}, len(r.Regions))
	for i, region := range r.Regions {
		prefix := fmt.Sprintf("regions[%d]", i)
		switch id := strings.TrimSpace(region.ID); {
		case id == "":
			fields[prefix+".id"] = msgRequired
		default:
			if _, dup := seen[id]; dup {
				fields[prefix+".id"] = fmt.Sprintf("duplicate id %q", id)
			}
			seen[id] = struct{}{}
		}
		if _, err := lead.ParseStage(region.Stage); err != nil {
			fields[prefix+".stage"] = fmt.Sprintf("invalid: %q", region.Stage)
		}
		region.Rect.validate(prefix+".rect", fields)
	}

	return validationResult(fields)
}

// ToLayout converts a validated request to the service's Layout.
func (r *LayoutRequest) ToLayout() ports.Layout {
	layout := ports.Layout{
		Container: r.Container.ToRect(),
		Regions:   make([]ports.LayoutRegion, len(r.Regions)),
	}
	for i, region := range r.Regions {
		stage, _ := lead.ParseStage(region.Stage)
		layout.Regions[i] = ports.LayoutRegion{
			ID:     strings.TrimSpace(region.ID),
			Stage:  stage,
			LeadID: region.LeadID,
			Rect:   region.Rect.ToRect(),
		}
	}
	return layout
}

// CreateLeadRequest is the JSON body of POST /api/v1/leads. An empty stage
// places the lead in the first column.
type CreateLeadRequest struct {
	DisplayName string `json:"display_name"`
	Stage       string `json:"stage,omitempty"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ValueCents  int64  `json:"value_cents,omitempty"`
}

// Validate checks the request shape. Business rules such as e-mail syntax are
// enforced by lead.Lead.Validate in the service.
func (r *CreateLeadRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.DisplayName) == "" {
		fields["display_name"] = msgRequired
	}
	if r.Stage != "" {
		if _, err := lead.ParseStage(r.Stage); err != nil {
			fields["stage"] = fmt.Sprintf("invalid: %q", r.Stage)
		}
	}
	if r.ValueCents < 0 {
		fields["value_cents"] = msgNonNegative
	}

	return validationResult(fields)
}

// ToLead converts a validated request to a domain Lead without an ID.
func (r *CreateLeadRequest) ToLead() *lead.Lead {
	stage := lead.StageNew
	if r.Stage != "" {
		stage, _ = lead.ParseStage(r.Stage)
	}
	return &lead.Lead{
		DisplayName: strings.TrimSpace(r.DisplayName),
		Stage:       stage,
		Company:     r.Company,
		Email:       r.Email,
		Phone:       r.Phone,
		ValueCents:  r.ValueCents,
	}
}

func validationResult(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
