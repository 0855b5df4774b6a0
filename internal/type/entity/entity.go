// Released under an MIT license. See LICENSE.

// Package entity provides objects that resolve missing keys by delegation.
//
// An entity has its own keys and at most one delegate. A lookup checks the
// entity's own keys first and then continues with the delegate, nearest to
// farthest, until a key matches or the chain ends. Assignment never follows
// the chain: Set always writes an own key of the receiver.
package entity

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/interface/literal"
	"github.com/michaelmacinnis/chain/internal/interface/reference"
	"github.com/michaelmacinnis/chain/internal/type/hash"
)

const name = "entity"

// ErrCyclicChain is returned when a delegate change would make an entity
// its own ancestor.
var ErrCyclicChain = errors.New("cyclic delegate chain")

// Delegate changes are serialized across all entities so that the cycle
// check and the update happen as one step.
var relink sync.Mutex //nolint:gochecknoglobals

// T (entity) maps own keys to values and delegates everything else.
type T struct {
	sync.RWMutex // Guards delegate.
	delegate     *T
	own          *hash.T
}

// New creates an entity that delegates to parent. A nil parent creates an
// entity with no delegate.
func New(parent *T) *T {
	return &T{delegate: parent, own: hash.New()}
}

// Compose creates an entity whose own keys are a flat copy of the own keys
// of every source. When sources share a key, the later source wins. The
// result has no delegate and keeps no link to any source.
func Compose(sources ...*T) *T {
	e := New(nil)

	for _, s := range sources {
		if s != nil {
			e.own.Merge(s.own)
		}
	}

	return e
}

// Chain returns e followed by each of its delegates, nearest first.
func (e *T) Chain() []*T {
	var c []*T

	for ; e != nil; e = e.Delegate() {
		c = append(c, e)
	}

	return c
}

// Delegate returns the entity consulted when e does not have a key.
func (e *T) Delegate() *T {
	if e == nil {
		return nil
	}

	e.RLock()
	defer e.RUnlock()

	return e.delegate
}

// Depth returns the number of delegates behind e.
func (e *T) Depth() int {
	return len(e.Chain()) - 1
}

// Equal returns true if c is the same entity as e.
func (e *T) Equal(c cell.T) bool {
	return Is(c) && e == To(c)
}

// Get returns the value for the key k, found on e or on the nearest
// delegate that has it. It reports false when no entity in the chain has k.
func (e *T) Get(k string) (cell.T, bool) {
	r := e.Lookup(k)
	if r == nil {
		return nil, false
	}

	return r.Get(), true
}

// Has returns true if k is an own key of e or of any of its delegates.
func (e *T) Has(k string) bool {
	return e.Lookup(k) != nil
}

// Keys returns the own keys of e in sorted order.
func (e *T) Keys() []string {
	if e == nil {
		return nil
	}

	return e.own.Keys()
}

// Literal returns the own keys and values of e. Nested entities are
// abbreviated and delegated keys are not shown.
func (e *T) Literal() string {
	var b strings.Builder

	b.WriteString("{")

	for i, k := range e.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}

		v, _ := e.Own(k)

		s := "{...}"
		if !Is(v) {
			s = literal.String(v)
		}

		fmt.Fprintf(&b, "%s: %s", k, s)
	}

	b.WriteString("}")

	return b.String()
}

// Lookup returns the reference holding the value for k, following the
// delegate chain. It returns nil when k is not found.
func (e *T) Lookup(k string) reference.T {
	if e == nil {
		return nil
	}

	if b := e.own.Get(k); b != nil {
		return b
	}

	return e.Delegate().Lookup(k)
}

// Name returns the type name for the entity e.
func (e *T) Name() string {
	return name
}

// Own returns the value for k only if k is an own key of e.
func (e *T) Own(k string) (cell.T, bool) {
	if e == nil {
		return nil, false
	}

	b := e.own.Get(k)
	if b == nil {
		return nil, false
	}

	return b.Get(), true
}

// Remove deletes the own key k from e. Delegates are never modified.
func (e *T) Remove(k string) bool {
	return e.own.Del(k)
}

// Set associates the own key k with v on e. The key shadows any key of
// the same name further along the chain. Delegates are never modified.
func (e *T) Set(k string, v cell.T) {
	e.own.Set(k, v)
}

// SetDelegate replaces the delegate of e with d. It fails with
// ErrCyclicChain if e already appears in the chain starting at d.
func (e *T) SetDelegate(d *T) error {
	relink.Lock()
	defer relink.Unlock()

	for a := d; a != nil; a = a.Delegate() {
		if a == e {
			return ErrCyclicChain
		}
	}

	e.Lock()
	defer e.Unlock()

	e.delegate = d

	return nil
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
