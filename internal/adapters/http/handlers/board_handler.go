package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/leadboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leadboard/internal/ports"
)

// BoardHandler handles HTTP requests for the board and its drag gestures.
// The view layer drives one gesture at a time: drag, hover (many), then drop
// or cancel.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// GetBoard handles GET /api/v1/board.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Board(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(view))
}

// Reload handles POST /api/v1/board/reload. It refetches every stage from
// the CRM API and returns the fresh board.
func (h *BoardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reload(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.GetBoard(w, r)
}

// SetLayout handles PUT /api/v1/board/regions.
func (h *BoardHandler) SetLayout(w http.ResponseWriter, r *http.Request) {
	var req dto.LayoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.SetLayout(r.Context(), req.ToLayout()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StartDrag handles POST /api/v1/board/drag.
func (h *BoardHandler) StartDrag(w http.ResponseWriter, r *http.Request) {
	var req dto.StartDragRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess, err := h.svc.StartDrag(r.Context(), req.LeadID, req.Rect.ToRect())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToSessionResponse(sess))
}

// Hover handles POST /api/v1/board/drag/hover.
func (h *BoardHandler) Hover(w http.ResponseWriter, r *http.Request) {
	var req dto.PointerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.Hover(r.Context(), req.Point(), req.Rect.ToRect())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToHoverResponse(res))
}

// Drop handles POST /api/v1/board/drag/drop. A pending outcome answers 202:
// the stage change is accepted locally and awaits CRM confirmation, which is
// reported on the event stream.
func (h *BoardHandler) Drop(w http.ResponseWriter, r *http.Request) {
	var req dto.PointerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.Drop(r.Context(), req.Point(), req.Rect.ToRect())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if res.Outcome == ports.DropPending {
		status = http.StatusAccepted
	}
	writeJSON(w, r, status, dto.ToDropResponse(res))
}

// CancelDrag handles POST /api/v1/board/drag/cancel.
func (h *BoardHandler) CancelDrag(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CancelDrag(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
