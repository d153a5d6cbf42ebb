package domain

import "context"

// Action is a remote effect paired with the local undo that restores state
// if the effect is refused. The reconciler runs each committed stage change
// as an Action.
type Action interface {
	// Execute performs the remote effect and must honour ctx.
	Execute(ctx context.Context) error

	// Rollback undoes the local side after Execute fails. It may receive a
	// different context than Execute did.
	Rollback(ctx context.Context) error

	// Description names the action in logs, e.g. "move lead c1 from Novo to Fechado".
	Description() string
}
