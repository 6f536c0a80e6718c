// Package lists provides upsert-by-predicate helpers for slices. Replace is
// deliberately asymmetric: it mutates in place on a hit and allocates on a
// miss; see its documentation before relying on either branch.
package lists
