package lead

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/leadboard/internal/domain"
	domainlead "github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

func TestToDomainLead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dto     LeadDTO
		wantErr error
		verify  func(t *testing.T, got domainlead.Lead)
	}{
		{
			name: "maps all fields",
			dto: LeadDTO{
				ID:          "lead-1",
				DisplayName: "Acme Corp",
				Stage:       "qualificado",
				Company:     "Acme",
				Email:       "buyer@acme.test",
				Phone:       "+55 11 5555-0100",
				ValueCents:  150000,
				CreatedAt:   "2026-02-12T15:04:05Z",
			},
			verify: func(t *testing.T, got domainlead.Lead) {
				t.Helper()
				if got.ID != "lead-1" {
					t.Errorf("ID = %q, want %q", got.ID, "lead-1")
				}
				if got.DisplayName != "Acme Corp" {
					t.Errorf("DisplayName = %q, want %q", got.DisplayName, "Acme Corp")
				}
				if got.Stage != domainlead.StageQualified {
					t.Errorf("Stage = %v, want %v", got.Stage, domainlead.StageQualified)
				}
				if got.Email != "buyer@acme.test" || got.Phone != "+55 11 5555-0100" || got.Company != "Acme" {
					t.Errorf("contact = %q/%q/%q, want Acme/buyer@acme.test/+55 11 5555-0100", got.Company, got.Email, got.Phone)
				}
				if got.ValueCents != 150000 {
					t.Errorf("ValueCents = %d, want 150000", got.ValueCents)
				}
				want := time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
				if !got.CreatedAt.Equal(want) {
					t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want)
				}
			},
		},
		{
			name: "accepts column title as stage",
			dto:  LeadDTO{ID: "lead-2", Stage: "Fechado"},
			verify: func(t *testing.T, got domainlead.Lead) {
				t.Helper()
				if got.Stage != domainlead.StageClosed {
					t.Errorf("Stage = %v, want %v", got.Stage, domainlead.StageClosed)
				}
			},
		},
		{
			name: "invalid timestamp defaults to zero time",
			dto:  LeadDTO{ID: "lead-3", Stage: "novo", CreatedAt: "bad"},
			verify: func(t *testing.T, got domainlead.Lead) {
				t.Helper()
				if !got.CreatedAt.IsZero() {
					t.Errorf("CreatedAt = %v, want zero time", got.CreatedAt)
				}
			},
		},
		{
			name:    "unknown stage is rejected",
			dto:     LeadDTO{ID: "lead-4", Stage: "archived"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing id is rejected",
			dto:     LeadDTO{Stage: "novo"},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToDomainLead(&tt.dto)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ToDomainLead() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToDomainLead() error = %v", err)
			}
			tt.verify(t, got)
		})
	}
}

func TestToDomainLeadList(t *testing.T) {
	t.Parallel()

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()

		got, err := ToDomainLeadList(LeadListResponseDTO{
			Leads: []LeadDTO{
				{ID: "a", Stage: "novo"},
				{ID: "b", Stage: "novo"},
			},
			Count: 2,
		})
		if err != nil {
			t.Fatalf("ToDomainLeadList() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
			t.Errorf("ToDomainLeadList() = %v, want [a b]", got)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		got, err := ToDomainLeadList(LeadListResponseDTO{})
		if err != nil {
			t.Fatalf("ToDomainLeadList() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("reports every bad entry", func(t *testing.T) {
		t.Parallel()

		_, err := ToDomainLeadList(LeadListResponseDTO{
			Leads: []LeadDTO{
				{ID: "a", Stage: "lost"},
				{ID: "b", Stage: "novo"},
				{ID: "c", Stage: "won"},
			},
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("ToDomainLeadList() error = %v, want ErrValidation", err)
		}
		for _, id := range []string{"lead a", "lead c"} {
			if !strings.Contains(err.Error(), id) {
				t.Errorf("error %q does not mention %q", err, id)
			}
		}
	})
}

func TestToCreateLeadRequest(t *testing.T) {
	t.Parallel()

	got := ToCreateLeadRequest(&domainlead.Lead{
		ID:          "ignored",
		DisplayName: "Globex",
		Stage:       domainlead.StageContacted,
		Email:       "ops@globex.test",
		ValueCents:  990,
	})

	want := CreateLeadRequestDTO{
		DisplayName: "Globex",
		Stage:       "contatado",
		Email:       "ops@globex.test",
		ValueCents:  990,
	}
	if got != want {
		t.Errorf("ToCreateLeadRequest() = %+v, want %+v", got, want)
	}
}

func TestToUpdateStageRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change domainlead.StageChange
		want   UpdateStageRequestDTO
	}{
		{
			name:   "without precondition",
			change: domainlead.StageChange{LeadID: "a", From: domainlead.StageNew, To: domainlead.StageProposal},
			want:   UpdateStageRequestDTO{Stage: "proposta"},
		},
		{
			name:   "with precondition",
			change: domainlead.StageChange{LeadID: "a", From: domainlead.StageNew, To: domainlead.StageProposal, RequireFrom: true},
			want:   UpdateStageRequestDTO{Stage: "proposta", ExpectedStage: "novo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ToUpdateStageRequest(tt.change); got != tt.want {
				t.Errorf("ToUpdateStageRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
