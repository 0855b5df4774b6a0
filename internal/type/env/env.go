// Released under an MIT license. See LICENSE.

// Package env provides lexical scopes.
//
// A scope binds names to values and links to the scope that encloses it.
// The link is set when the scope is created and never changes. A scope
// created with no enclosing scope is a global scope.
package env

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/interface/reference"
	"github.com/michaelmacinnis/chain/internal/type/hash"
)

const name = "scope"

var (
	// ErrAlreadyBound is returned when a name is defined twice in one scope.
	ErrAlreadyBound = errors.New("already bound")

	// ErrReferenceNotFound is returned when no scope in a chain binds a name.
	ErrReferenceNotFound = errors.New("reference not found")
)

// T (env) maps names to values and defers to its enclosing scope.
type T struct {
	bindings *hash.T
	previous *T
}

// New creates a new scope enclosed by previous.
func New(previous *T) *T {
	return &T{bindings: hash.New(), previous: previous}
}

// Assign replaces the value of the nearest binding of k.
func (e *T) Assign(k string, v cell.T) error {
	r := e.Lookup(k)
	if r == nil {
		return notFound(k)
	}

	r.Set(v)

	return nil
}

// Define binds k to v in the scope e. A name may be bound once per scope.
func (e *T) Define(k string, v cell.T) error {
	if !e.bindings.Insert(k, v) {
		return fmt.Errorf("%w: %s", ErrAlreadyBound, k)
	}

	return nil
}

// Depth returns the number of scopes enclosing e.
func (e *T) Depth() int {
	d := 0
	for p := e.previous; p != nil; p = p.previous {
		d++
	}

	return d
}

// Enclosing returns the enclosing scope.
func (e *T) Enclosing() *T {
	return e.previous
}

// Equal returns true if c is the same scope as e.
func (e *T) Equal(c cell.T) bool {
	return Is(c) && e == To(c)
}

// Literal returns a short description of the scope e.
func (e *T) Literal() string {
	return fmt.Sprintf("<%s depth=%d names=%v>", name, e.Depth(), e.Names())
}

// Lookup retrieves the reference associated with the name k in the nearest
// scope that binds it. It returns nil if no scope binds k.
func (e *T) Lookup(k string) reference.T {
	if e == nil {
		return nil
	}

	if b := e.bindings.Get(k); b != nil {
		return b
	}

	return e.previous.Lookup(k)
}

// Name returns the type name for the scope e.
func (e *T) Name() string {
	return name
}

// Names returns the names bound directly in e in sorted order.
func (e *T) Names() []string {
	return e.bindings.Keys()
}

// Resolve returns the value of the nearest binding of k.
func (e *T) Resolve(k string) (cell.T, error) {
	r := e.Lookup(k)
	if r == nil {
		return nil, notFound(k)
	}

	return r.Get(), nil
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

func notFound(k string) error {
	return fmt.Errorf("%w: %s", ErrReferenceNotFound, k)
}
