package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
)

// Notification is a user-visible, non-fatal message, such as a stage change
// the server refused.
type Notification struct {
	ID      string    `json:"id"`
	Level   string    `json:"level"`
	LeadID  string    `json:"lead_id,omitempty"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notification levels.
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// Notifier delivers board-level events to the view layer.
// Implementations must not block on slow consumers.
type Notifier interface {
	// Notify surfaces a message to the user.
	Notify(ctx context.Context, n Notification)

	// LeadOpened reports a non-drag click on a card.
	LeadOpened(ctx context.Context, l lead.Lead)
}
