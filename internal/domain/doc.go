// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/lead, domain/geom).
// This root package holds sentinel errors, the validation error type, and the
// Action interface used by the drag-and-drop reconciliation protocol.
package domain
