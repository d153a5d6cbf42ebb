package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/leadboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

// LeadHandler handles HTTP requests that act on single leads outside a drag.
type LeadHandler struct {
	svc ports.BoardService
}

// NewLeadHandler creates a new LeadHandler with the given service port.
func NewLeadHandler(svc ports.BoardService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// CreateLead handles POST /api/v1/leads.
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddLead(r.Context(), req.ToLead())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToLeadResponse(created))
}

// OpenLead handles POST /api/v1/leads/{id}/open.
func (h *LeadHandler) OpenLead(w http.ResponseWriter, r *http.Request) {
	id, err := requireParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.OpenLead(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToLeadResponse(l))
}
