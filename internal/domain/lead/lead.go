// Package lead defines the Lead entity that moves through the sales pipeline
// and the closed Stage enumeration it is bucketed by.
package lead

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/leadboard/internal/domain"
)

// Lead is a prospect card on the board. ID is immutable and globally unique;
// it is assigned by the CRM API.
type Lead struct {
	ID          string
	DisplayName string
	Stage       Stage
	CreatedAt   time.Time
	Company     string
	Email       string
	Phone       string
	ValueCents  int64
}

// Validate checks business rules for the Lead entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass. ID is not checked because new
// leads receive it from the server.
func (l *Lead) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(l.DisplayName) == "" {
		fields["display_name"] = domain.MsgRequired
	}
	if !l.Stage.IsValid() {
		fields["stage"] = fmt.Sprintf("invalid: %d", int(l.Stage))
	}
	if l.Email != "" {
		if _, err := mail.ParseAddress(l.Email); err != nil {
			fields["email"] = "must be a valid e-mail address"
		}
	}
	if l.ValueCents < 0 {
		fields["value_cents"] = fmt.Sprintf("must not be negative, got %d", l.ValueCents)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Filter holds optional filter criteria for listing leads.
// A zero-value Stage means "all stages".
type Filter struct {
	Stage Stage
}

// StageChange is the single mutating request sent to the CRM API when a drop
// moves a lead across stages. When RequireFrom is set the server must reject
// the change unless the lead is still in From (optimistic-lock precondition).
type StageChange struct {
	LeadID      string
	From        Stage
	To          Stage
	RequireFrom bool
}
