// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/invoice). This root
// package holds the sentinel errors and the aggregated field-level
// ValidationError shared across all entities.
package domain
