// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

// LeadResponse represents a single lead in HTTP responses.
type LeadResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Stage       string `json:"stage"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ValueCents  int64  `json:"value_cents"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// ToLeadResponse converts a domain Lead to an HTTP response DTO.
func ToLeadResponse(l *lead.Lead) LeadResponse {
	resp := LeadResponse{
		ID:          l.ID,
		DisplayName: l.DisplayName,
		Stage:       l.Stage.Slug(),
		Company:     l.Company,
		Email:       l.Email,
		Phone:       l.Phone,
		ValueCents:  l.ValueCents,
	}
	if !l.CreatedAt.IsZero() {
		resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// CardResponse is a lead rendered inside a column. Pending cards await server
// confirmation of a stage change and cannot be dragged.
type CardResponse struct {
	LeadResponse
	Pending bool `json:"pending"`
	Durable bool `json:"durable"`
}

// ColumnResponse is one stage column.
type ColumnResponse struct {
	Stage string         `json:"stage"`
	Title string         `json:"title"`
	Count int            `json:"count"`
	Cards []CardResponse `json:"cards"`
}

// SessionResponse describes the active drag session.
type SessionResponse struct {
	ID           string `json:"id"`
	LeadID       string `json:"lead_id"`
	State        string `json:"state"`
	TargetID     string `json:"target_id,omitempty"`
	ScrollLocked bool   `json:"scroll_locked"`
}

// BoardResponse is the full board: columns in pipeline order.
type BoardResponse struct {
	Columns []ColumnResponse `json:"columns"`
	Session *SessionResponse `json:"session,omitempty"`
	Version uint64           `json:"version"`
}

// ToBoardResponse converts the service's board view to an HTTP response DTO.
func ToBoardResponse(v *ports.BoardView) BoardResponse {
	resp := BoardResponse{
		Columns: make([]ColumnResponse, len(v.Columns)),
		Session: ToSessionResponse(v.Session),
		Version: v.Version,
	}
	for i, col := range v.Columns {
		cards := make([]CardResponse, len(col.Cards))
		for j := range col.Cards {
			cards[j] = CardResponse{
				LeadResponse: ToLeadResponse(&col.Cards[j].Lead),
				Pending:      col.Cards[j].Pending,
				Durable:      col.Cards[j].Durable,
			}
		}
		resp.Columns[i] = ColumnResponse{
			Stage: col.Stage.Slug(),
			Title: col.Stage.String(),
			Count: len(cards),
			Cards: cards,
		}
	}
	return resp
}

// ToSessionResponse converts a session view; nil stays nil.
func ToSessionResponse(s *ports.SessionView) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		ID:           s.ID,
		LeadID:       s.LeadID,
		State:        s.State,
		TargetID:     s.TargetID,
		ScrollLocked: s.ScrollLocked,
	}
}

// HoverResponse reports what a pointer move resolved to.
type HoverResponse struct {
	TargetID     string `json:"target_id,omitempty"`
	Moved        bool   `json:"moved"`
	ScrollLocked bool   `json:"scroll_locked"`
}

// ToHoverResponse converts a hover result.
func ToHoverResponse(h *ports.HoverResult) HoverResponse {
	return HoverResponse{
		TargetID:     h.TargetID,
		Moved:        h.Moved,
		ScrollLocked: h.ScrollLocked,
	}
}

// DropResponse reports how a drop ended.
type DropResponse struct {
	Outcome string `json:"outcome"`
	LeadID  string `json:"lead_id"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Index   int    `json:"index"`
}

// ToDropResponse converts a drop result. Stages are omitted when the drop
// was cancelled.
func ToDropResponse(d *ports.DropResult) DropResponse {
	return DropResponse{
		Outcome: string(d.Outcome),
		LeadID:  d.LeadID,
		From:    d.From.Slug(),
		To:      d.To.Slug(),
		Index:   d.Index,
	}
}

// Health statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the health endpoints. Checks maps each
// dependency to "ok" or its error message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse summarizes registry results. ready is false when any
// dependency failed.
func ToHealthResponse(results map[string]error) (resp HealthResponse, ready bool) {
	resp = HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	ready = true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
