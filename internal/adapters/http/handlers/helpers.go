package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/leadboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leadboard/internal/domain"
	"github.com/jsamuelsen11/leadboard/internal/platform/logging"
)

// maxJSONBodyBytes bounds request bodies. Layouts of large boards are the
// biggest thing clients send.
const maxJSONBodyBytes = 1 << 20

// requireParam returns the trimmed chi URL parameter or a validation error
// naming it.
func requireParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", fieldError(name, "is required")
	}
	return v, nil
}

func fieldError(field, msg string) *domain.ValidationError {
	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "failed to encode response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// decodeBody reads exactly one JSON value into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return fieldError("body", "is required")
		case errors.As(err, &tooLarge):
			return fieldError("body", "exceeds 1 MiB")
		default:
			return fieldError("body", "invalid JSON")
		}
	}
	if dec.More() {
		return fieldError("body", "must hold a single JSON value")
	}
	return nil
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes and validates the request body. On failure it
// writes the problem response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := decodeBody(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
