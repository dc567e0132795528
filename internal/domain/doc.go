// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/page, domain/template).
// This root package holds sentinel errors, the field-level ValidationError and
// the Action interface used to stage writes against the page tree.
package domain
