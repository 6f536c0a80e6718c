// Package rule provides composable boolean matching over arbitrary values:
// Rule[T] predicates combined with And/Or/Not/Nor, plus Matches for
// filtering slices. Pure functions, no concurrency.
package rule
