// Package core contains plumbing utilities shared by the higher-level
// packages: channel helpers to move values and outcomes in and out of flows,
// a non-blocking Broadcaster for fan-out to multiple consumers, and worker
// configuration carried via context. It defines no business logic.
package core
