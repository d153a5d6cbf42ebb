package lead

import (
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/leadboard/internal/domain"
	domainlead "github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// ToDomainLead converts a downstream LeadDTO to a domain Lead. An unknown
// stage slug or a missing ID is rejected so that no lead enters the board
// without a column. A malformed created_at is tolerated as the zero time.
func ToDomainLead(dto *LeadDTO) (domainlead.Lead, error) {
	if dto.ID == "" {
		return domainlead.Lead{}, fmt.Errorf("lead without id: %w", domain.ErrValidation)
	}
	stage, err := domainlead.ParseStage(dto.Stage)
	if err != nil {
		return domainlead.Lead{}, fmt.Errorf("lead %s: %w: %w", dto.ID, domain.ErrValidation, err)
	}

	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)

	return domainlead.Lead{
		ID:          dto.ID,
		DisplayName: dto.DisplayName,
		Stage:       stage,
		CreatedAt:   createdAt,
		Company:     dto.Company,
		Email:       dto.Email,
		Phone:       dto.Phone,
		ValueCents:  dto.ValueCents,
	}, nil
}

// ToDomainLeadList converts a downstream LeadListResponseDTO to domain leads.
// Every untranslatable entry is reported; none of them is returned.
func ToDomainLeadList(dto LeadListResponseDTO) ([]domainlead.Lead, error) {
	leads := make([]domainlead.Lead, 0, len(dto.Leads))
	var errs []error
	for i := range dto.Leads {
		l, err := ToDomainLead(&dto.Leads[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		leads = append(leads, l)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return leads, nil
}

// ToCreateLeadRequest converts a domain Lead to a downstream
// CreateLeadRequestDTO. The ID is omitted; the CRM assigns it.
func ToCreateLeadRequest(l *domainlead.Lead) CreateLeadRequestDTO {
	return CreateLeadRequestDTO{
		DisplayName: l.DisplayName,
		Stage:       l.Stage.Slug(),
		Company:     l.Company,
		Email:       l.Email,
		Phone:       l.Phone,
		ValueCents:  l.ValueCents,
	}
}

// ToUpdateStageRequest converts a StageChange to the downstream PATCH body.
// ExpectedStage is only sent when the change requires its origin stage.
func ToUpdateStageRequest(change domainlead.StageChange) UpdateStageRequestDTO {
	req := UpdateStageRequestDTO{Stage: change.To.Slug()}
	if change.RequireFrom {
		req.ExpectedStage = change.From.Slug()
	}
	return req
}
