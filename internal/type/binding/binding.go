// Released under an MIT license. See LICENSE.

// Package binding provides the named, mutable holder behind every own key
// and every scope variable.
package binding

import (
	"sync"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
)

// T (binding) associates a key with a cell value.
type T struct {
	sync.RWMutex
	key string
	c   cell.T
}

// New creates a binding of the key k to the cell c.
func New(k string, c cell.T) *T {
	return &T{key: k, c: c}
}

// Get returns the cell held by b.
func (b *T) Get() cell.T {
	b.RLock()
	defer b.RUnlock()

	return b.c
}

// Key returns the name that b binds. It never changes.
func (b *T) Key() string {
	return b.key
}

// Set replaces the cell held by b with the cell c.
func (b *T) Set(c cell.T) {
	b.Lock()
	defer b.Unlock()

	b.c = c
}
