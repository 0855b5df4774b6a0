// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all values that can be stored in
// an entity or bound in a scope.
package cell

// T (cell) is the basic unit of storage.
type T interface {
	Equal(c T) bool
	Name() string
}
