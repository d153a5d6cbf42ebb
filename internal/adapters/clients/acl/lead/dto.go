// Package lead implements the Anti-Corruption Layer translators for the
// downstream CRM API's lead resources.
package lead

// LeadDTO matches the downstream Lead schema. Stage is the CRM slug
// ("novo", "contatado", ...); timestamps are RFC3339.
type LeadDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Stage       string `json:"stage"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ValueCents  int64  `json:"value_cents,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// CreateLeadRequestDTO matches the downstream CreateLeadRequest schema.
type CreateLeadRequestDTO struct {
	DisplayName string `json:"display_name"`
	Stage       string `json:"stage"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ValueCents  int64  `json:"value_cents,omitempty"`
}

// UpdateStageRequestDTO matches the downstream UpdateLeadStageRequest schema.
// ExpectedStage is the optimistic-lock precondition; the CRM answers 409 when
// the stored stage differs.
type UpdateStageRequestDTO struct {
	Stage         string `json:"stage"`
	ExpectedStage string `json:"expected_stage,omitempty"`
}

// LeadListResponseDTO matches the downstream LeadListResponse schema.
type LeadListResponseDTO struct {
	Leads []LeadDTO `json:"leads"`
	Count int64     `json:"count"`
}
