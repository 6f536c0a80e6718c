// Package chain provides a fluent wrapper over the solo primitives for
// linear flows over one value type. Steps that change the value type (Then,
// ThenTry, Map, Finally) are free functions because methods cannot introduce
// new type parameters.
package chain
