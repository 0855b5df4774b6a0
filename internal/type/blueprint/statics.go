// Released under an MIT license. See LICENSE.

package blueprint

import (
	"sync"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/type/hash"
)

// Statics holds values attached to a blueprint itself rather than to its
// prototype. They are keyed by blueprint identity, are not inherited by
// derived blueprints and never appear on any entity.
type Statics struct {
	sync.RWMutex
	m map[*T]*hash.T
}

// NewStatics creates an empty statics table.
func NewStatics() *Statics {
	return &Statics{m: map[*T]*hash.T{}}
}

// Get returns the static k of the blueprint b.
func (s *Statics) Get(b *T, k string) (cell.T, bool) {
	s.RLock()
	defer s.RUnlock()

	r := s.m[b].Get(k)
	if r == nil {
		return nil, false
	}

	return r.Get(), true
}

// Keys returns the names of the statics of b in sorted order.
func (s *Statics) Keys(b *T) []string {
	s.RLock()
	defer s.RUnlock()

	return s.m[b].Keys()
}

// Set associates the static k of the blueprint b with v.
func (s *Statics) Set(b *T, k string, v cell.T) {
	s.Lock()
	defer s.Unlock()

	h, ok := s.m[b]
	if !ok {
		h = hash.New()
		s.m[b] = h
	}

	h.Set(k, v)
}
