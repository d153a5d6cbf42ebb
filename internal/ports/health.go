package ports

import "context"

// HealthChecker reports whether a dependency, such as the CRM API, can
// serve the board.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "crm-api".
	Name() string

	// HealthCheck returns nil when healthy. It must return promptly once ctx
	// is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns each checker's result by name. Nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
