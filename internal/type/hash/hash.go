// Released under an MIT license. See LICENSE.

// Package hash provides the name to binding mapping shared by entities and scopes.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/type/binding"
)

// T (hash) maps names to bindings.
type T struct {
	sync.RWMutex
	m map[string]*binding.T
}

// New creates a new hash.
func New() *T {
	return &T{m: map[string]*binding.T{}}
}

// Del frees the name k from any association in the hash h.
func (h *T) Del(k string) bool {
	if h == nil {
		return false
	}

	h.Lock()
	defer h.Unlock()

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	return true
}

// Get retrieves the binding for the name k in the hash h or nil.
func (h *T) Get(k string) *binding.T {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Insert associates the name k with the cell v only if k is not already
// present. It reports whether the association was made.
func (h *T) Insert(k string, v cell.T) bool {
	h.Lock()
	defer h.Unlock()

	if _, ok := h.m[k]; ok {
		return false
	}

	h.m[k] = binding.New(k, v)

	return true
}

// Keys returns the names in the hash h in sorted order.
func (h *T) Keys() []string {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	ks := make([]string, 0, len(h.m))
	for k := range h.m {
		ks = append(ks, k)
	}

	sort.Strings(ks)

	return ks
}

// Merge copies every entry of o into h, replacing entries with the same name.
func (h *T) Merge(o *T) {
	if h == o || o == nil {
		return
	}

	o.RLock()
	defer o.RUnlock()

	h.Lock()
	defer h.Unlock()

	for k, v := range o.m {
		h.m[k] = binding.New(k, v.Get())
	}
}

// Set associates the name k with the cell v in the hash h. An existing
// binding is updated in place.
func (h *T) Set(k string, v cell.T) {
	h.Lock()
	defer h.Unlock()

	if b, ok := h.m[k]; ok {
		b.Set(v)
		return
	}

	h.m[k] = binding.New(k, v)
}
