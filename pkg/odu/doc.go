// Package odu holds the core value types shared by the whole library.
//
// Highlights:
// - Outcome[T]: two-variant success/failure container with identity and
//   optional stack traces (Success/Fail/FailTrace/FailFrom/FailWith)
// - Optional[T]: two-variant present/absent container, convertible to and
//   from Outcome
// - IsNil/CollectErrors/IsCancellation: error classification helpers
//
// Transform and recovery operations over Outcome live in the solo (sync) and
// future (async) subpackages; fluent chaining lives in chain.
package odu
