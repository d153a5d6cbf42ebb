package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	leadacl "github.com/jsamuelsen11/leadboard/internal/adapters/clients/acl/lead"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
	"github.com/jsamuelsen11/leadboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.LeadClient    = (*LeadClient)(nil)
	_ ports.HealthChecker = (*LeadClient)(nil)
)

// ServiceName identifies the CRM API in traces, metrics and health reports.
const ServiceName = "crm-api"

// LeadClient is the outbound adapter for the downstream CRM API. It
// implements [ports.LeadClient].
//
// All methods translate between domain leads and the CRM's representations
// via the ACL translators in sub-package [leadacl]. HTTP errors are mapped to
// domain errors (ErrNotFound, ErrConflict, etc.) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type LeadClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewLeadClient creates a LeadClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the CRM API root
// (e.g. "https://crm.example.com").
func NewLeadClient(client *httpclient.Client, logger *slog.Logger) *LeadClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LeadClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListLeads fetches leads from GET /api/v1/leads, optionally restricted to a
// single stage. A zero-value [lead.Filter] returns every lead. A response
// carrying a lead with an unknown stage fails as a whole.
func (c *LeadClient) ListLeads(ctx context.Context, filter lead.Filter) ([]lead.Lead, error) {
	path := "/api/v1/leads" + filterQuery(filter)

	var dto leadacl.LeadListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}

	leads, err := leadacl.ToDomainLeadList(dto)
	if err != nil {
		c.logger.ErrorContext(ctx, "untranslatable leads in response",
			slog.String("operation", "acl.LeadClient.ListLeads"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return leads, nil
}

// CreateLead sends a POST /api/v1/leads and returns the created lead with its
// server-assigned ID. Every call carries a fresh Idempotency-Key so a retried
// POST cannot create the lead twice.
func (c *LeadClient) CreateLead(ctx context.Context, l *lead.Lead) (*lead.Lead, error) {
	ctx = httpclient.WithIdempotencyKey(ctx, uuid.NewString())
	reqDTO := leadacl.ToCreateLeadRequest(l)

	var respDTO leadacl.LeadDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/leads", reqDTO, &respDTO); err != nil {
		return nil, err
	}

	created, err := leadacl.ToDomainLead(&respDTO)
	if err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}
	return &created, nil
}

// UpdateLeadStage sends a PATCH /api/v1/leads/{id}/stage. With
// change.RequireFrom set, the body carries expected_stage and the CRM answers
// 409 (mapped to [domain.ErrConflict]) when the stored stage differs.
// A 204 response yields a lead carrying only change.LeadID and change.To.
func (c *LeadClient) UpdateLeadStage(ctx context.Context, change lead.StageChange) (*lead.Lead, error) {
	path := "/api/v1/leads/" + url.PathEscape(change.LeadID) + "/stage"
	reqDTO := leadacl.ToUpdateStageRequest(change)

	var respDTO leadacl.LeadDTO
	if err := c.req.Do(ctx, http.MethodPatch, path, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	if respDTO.ID == "" {
		return &lead.Lead{ID: change.LeadID, Stage: change.To}, nil
	}

	updated, err := leadacl.ToDomainLead(&respDTO)
	if err != nil {
		return nil, fmt.Errorf("updating stage of lead %s: %w", change.LeadID, err)
	}
	return &updated, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name of the underlying
// [httpclient.Client].
func (c *LeadClient) Name() string {
	return ServiceName
}

// HealthCheck reports the CRM API's availability from the circuit breaker
// state; no network call is made. Readiness never depends on it: the board
// keeps serving local gestures while the CRM is down.
func (c *LeadClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

// filterQuery converts a [lead.Filter] to a URL query string (including the
// leading "?"). Returns an empty string if no filters are set.
func filterQuery(f lead.Filter) string {
	if !f.Stage.IsValid() {
		return ""
	}
	v := url.Values{}
	v.Set("stage", f.Stage.Slug())
	return "?" + v.Encode()
}
