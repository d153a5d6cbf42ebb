package ports

import (
	"context"

	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// LeadClient defines the client port for the downstream CRM API, the
// authoritative store of leads. Implemented by the ACL adapter; called by the
// application layer. The transport is opaque to callers.
type LeadClient interface {
	// ListLeads returns leads matching the filter. A zero-value Filter lists
	// every lead.
	ListLeads(ctx context.Context, filter lead.Filter) ([]lead.Lead, error)

	// CreateLead creates a lead and returns it with its server-assigned ID.
	// Returns domain.ErrValidation if the downstream rejects the payload.
	CreateLead(ctx context.Context, l *lead.Lead) (*lead.Lead, error)

	// UpdateLeadStage moves a lead to change.To and returns the updated lead.
	// The lead is never nil on success; when the CRM sends no body only ID
	// and Stage are set.
	// Returns domain.ErrNotFound if the lead does not exist and
	// domain.ErrConflict if change.RequireFrom is set and the lead is no
	// longer in change.From.
	UpdateLeadStage(ctx context.Context, change lead.StageChange) (*lead.Lead, error)
}
