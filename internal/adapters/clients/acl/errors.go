// Package acl implements the Anti-Corruption Layer that translates between
// downstream CRM API representations and domain types. Resource translators
// live in subpackages (acl/lead); the lead client, request plumbing and
// shared error mapping live here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/leadboard/internal/domain"
)

// maxErrorBodySize caps how much of a CRM error body is read.
const maxErrorBodySize = 1 << 20

const problemMediaType = "application/problem+json"

// problem is the subset of an RFC 7807 body the CRM sends back.
type problem struct {
	Title  string         `json:"title"`
	Detail string         `json:"detail"`
	Errors []problemField `json:"errors"`
}

type problemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// message prefers detail, then title, then the standard status text.
func (p problem) message(status int) string {
	switch {
	case p.Detail != "":
		return p.Detail
	case p.Title != "":
		return p.Title
	default:
		return http.StatusText(status)
	}
}

// TranslateHTTPError maps a non-2xx CRM response to a domain error.
//
// Field-level problems on 400/422 become a *domain.ValidationError. A rejected
// expected_stage precondition arrives as 409 or 412 and wraps
// domain.ErrConflict, which the reconciler treats as a lost race. Rate limits
// and 5xx wrap domain.ErrUnavailable. Other statuses keep the code in the
// message and wrap nothing.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	msg := p.message(resp.StatusCode)

	sentinel := statusSentinel(resp.StatusCode)
	if sentinel == nil {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
	if errors.Is(sentinel, domain.ErrValidation) && len(p.Errors) > 0 {
		return fieldErrors(p.Errors)
	}
	return fmt.Errorf("%s: %w", msg, sentinel)
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusConflict, http.StatusPreconditionFailed:
		return domain.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusTooManyRequests:
		return domain.ErrUnavailable
	}
	if status >= http.StatusInternalServerError {
		return domain.ErrUnavailable
	}
	return nil
}

// readProblem decodes a problem+json body. Anything else, including a
// malformed body, yields the zero problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != problemMediaType {
		return p
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return p
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return problem{}
	}
	return p
}

// fieldErrors keys each message by its field name, dropping the "body."
// location prefix the CRM adds.
func fieldErrors(fields []problemField) *domain.ValidationError {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[strings.TrimPrefix(f.Location, "body.")] = f.Message
	}
	return &domain.ValidationError{Fields: out}
}
