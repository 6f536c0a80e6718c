// Package entity provides identity and equality base types for domain
// records: a ULID-backed 16-byte ID, an embeddable Base with identity-only
// equality, and predicate adapters for matching records by identity.
package entity
