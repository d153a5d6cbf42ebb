package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/leadboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/domain/geom"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestStartDragRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.StartDragRequest
		wantField string
	}{
		{
			name: "valid request passes",
			req:  dto.StartDragRequest{LeadID: "c1", Rect: dto.RectRequest{Width: 160, Height: 60}},
		},
		{
			name:      "missing lead id",
			req:       dto.StartDragRequest{LeadID: "  "},
			wantField: "lead_id",
		},
		{
			name:      "negative width",
			req:       dto.StartDragRequest{LeadID: "c1", Rect: dto.RectRequest{Width: -1}},
			wantField: "rect.width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestPointerRequest(t *testing.T) {
	t.Parallel()

	req := dto.PointerRequest{X: 12, Y: 34, Rect: dto.RectRequest{X: 1, Y: 2, Width: 3, Height: 4}}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if got := req.Point(); got != (geom.Point{X: 12, Y: 34}) {
		t.Errorf("Point() = %v, want {12 34}", got)
	}
	if got := req.Rect.ToRect(); got != (geom.Rect{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Errorf("ToRect() = %v, want {1 2 3 4}", got)
	}

	bad := dto.PointerRequest{Rect: dto.RectRequest{Height: -5}}
	requireValidationField(t, bad.Validate(), "rect.height")
}

func TestLayoutRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.LayoutRequest
		wantField string
	}{
		{
			name: "valid layout passes",
			req: dto.LayoutRequest{
				Container: dto.RectRequest{Width: 1000, Height: 800},
				Regions: []dto.RegionRequest{
					{ID: "card:c1", Stage: "novo", LeadID: "c1", Rect: dto.RectRequest{Width: 160, Height: 60}},
					{ID: "column:novo", Stage: "novo", Rect: dto.RectRequest{Width: 180, Height: 800}},
				},
			},
		},
		{
			name:      "missing id",
			req:       dto.LayoutRequest{Regions: []dto.RegionRequest{{Stage: "novo"}}},
			wantField: "regions[0].id",
		},
		{
			name: "duplicate id",
			req: dto.LayoutRequest{Regions: []dto.RegionRequest{
				{ID: "column:novo", Stage: "novo"},
				{ID: "column:novo", Stage: "novo"},
			}},
			wantField: "regions[1].id",
		},
		{
			name:      "unknown stage",
			req:       dto.LayoutRequest{Regions: []dto.RegionRequest{{ID: "x", Stage: "ganho"}}},
			wantField: "regions[0].stage",
		},
		{
			name:      "negative container",
			req:       dto.LayoutRequest{Container: dto.RectRequest{Width: -1}},
			wantField: "container.width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestLayoutRequest_ToLayout(t *testing.T) {
	t.Parallel()

	req := dto.LayoutRequest{
		Container: dto.RectRequest{Width: 1000, Height: 800},
		Regions: []dto.RegionRequest{
			{ID: " card:c1 ", Stage: "Proposta", LeadID: "c1", Rect: dto.RectRequest{X: 10, Width: 160, Height: 60}},
			{ID: "column:fechado", Stage: "fechado", Rect: dto.RectRequest{X: 800, Width: 180, Height: 800}},
		},
	}

	got := req.ToLayout()

	if got.Container != (geom.Rect{Width: 1000, Height: 800}) {
		t.Errorf("Container = %v, want 1000x800", got.Container)
	}
	if len(got.Regions) != 2 {
		t.Fatalf("len(Regions) = %d, want 2", len(got.Regions))
	}
	if got.Regions[0].ID != "card:c1" || got.Regions[0].Stage != lead.StageProposal || got.Regions[0].LeadID != "c1" {
		t.Errorf("Regions[0] = %+v, want card:c1 in proposta", got.Regions[0])
	}
	if got.Regions[1].Stage != lead.StageClosed || got.Regions[1].LeadID != "" {
		t.Errorf("Regions[1] = %+v, want column in fechado", got.Regions[1])
	}
}

func TestCreateLeadRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateLeadRequest
		wantField string
	}{
		{name: "valid request passes", req: dto.CreateLeadRequest{DisplayName: "Acme"}},
		{name: "valid request with stage", req: dto.CreateLeadRequest{DisplayName: "Acme", Stage: "contatado"}},
		{name: "missing display name", req: dto.CreateLeadRequest{Stage: "novo"}, wantField: "display_name"},
		{name: "unknown stage", req: dto.CreateLeadRequest{DisplayName: "Acme", Stage: "perdido"}, wantField: "stage"},
		{name: "negative value", req: dto.CreateLeadRequest{DisplayName: "Acme", ValueCents: -1}, wantField: "value_cents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateLeadRequest_ToLead(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the first stage", func(t *testing.T) {
		t.Parallel()

		req := dto.CreateLeadRequest{DisplayName: "  Acme  "}
		got := req.ToLead()
		if got.Stage != lead.StageNew {
			t.Errorf("Stage = %v, want %v", got.Stage, lead.StageNew)
		}
		if got.DisplayName != "Acme" {
			t.Errorf("DisplayName = %q, want %q", got.DisplayName, "Acme")
		}
		if got.ID != "" {
			t.Errorf("ID = %q, want empty", got.ID)
		}
	})

	t.Run("keeps explicit stage and contact", func(t *testing.T) {
		t.Parallel()

		req := dto.CreateLeadRequest{DisplayName: "Acme", Stage: "qualificado", Email: "a@acme.test", ValueCents: 500}
		got := req.ToLead()
		if got.Stage != lead.StageQualified || got.Email != "a@acme.test" || got.ValueCents != 500 {
			t.Errorf("ToLead() = %+v, want qualificado a@acme.test 500", got)
		}
	})
}
