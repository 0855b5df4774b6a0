// Released under an MIT license. See LICENSE.

// Package blueprint builds class-style hierarchies from delegating entities.
//
// Each blueprint owns a prototype entity that delegates to its parent's
// prototype. Instances delegate to the prototype. Construction runs each
// initializer in the lineage, oldest ancestor first.
package blueprint

import (
	"fmt"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/type/entity"
)

const name = "blueprint"

// Initializer sets up the own keys of a new instance from opts.
type Initializer func(self, opts *entity.T) error

// T (blueprint) describes how to construct a kind of entity.
type T struct {
	init      Initializer
	label     string
	parent    *T
	prototype *entity.T
}

// New creates a blueprint whose prototype delegates to the prototype of
// parent, if any.
func New(label string, parent *T, init Initializer) *T {
	return &T{
		init:      init,
		label:     label,
		parent:    parent,
		prototype: entity.New(parent.Prototype()),
	}
}

// Construct creates an instance of b and initializes it with opts.
// opts may be nil.
func (b *T) Construct(opts *entity.T) (*entity.T, error) {
	self := entity.New(b.prototype)

	if err := b.initialize(self, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", b.label, err)
	}

	return self, nil
}

// Define associates k with v on the prototype. Every instance of b and of
// blueprints derived from b can see it.
func (b *T) Define(k string, v cell.T) {
	b.prototype.Set(k, v)
}

// Equal returns true if c is the same blueprint as b.
func (b *T) Equal(c cell.T) bool {
	return Is(c) && b == To(c)
}

// IsA returns true if b's prototype is a delegate of e.
func (b *T) IsA(e *entity.T) bool {
	for d := e.Delegate(); d != nil; d = d.Delegate() {
		if d == b.prototype {
			return true
		}
	}

	return false
}

// Label returns the name b was created with.
func (b *T) Label() string {
	return b.label
}

// Literal returns a short description of the blueprint b.
func (b *T) Literal() string {
	if b.parent == nil {
		return "<" + name + " " + b.label + ">"
	}

	return "<" + name + " " + b.label + " extends " + b.parent.label + ">"
}

// Name returns the type name for the blueprint b.
func (b *T) Name() string {
	return name
}

// Parent returns the blueprint b extends.
func (b *T) Parent() *T {
	return b.parent
}

// Prototype returns the entity that instances of b delegate to.
func (b *T) Prototype() *entity.T {
	if b == nil {
		return nil
	}

	return b.prototype
}

func (b *T) initialize(self, opts *entity.T) error {
	if b.parent != nil {
		if err := b.parent.initialize(self, opts); err != nil {
			return err
		}
	}

	if b.init == nil {
		return nil
	}

	return b.init(self, opts)
}

// Assigning returns an initializer that sets each key in fixed on the
// instance, ignoring opts.
func Assigning(fixed map[string]cell.T) Initializer {
	return func(self, _ *entity.T) error {
		for k, v := range fixed {
			self.Set(k, v)
		}

		return nil
	}
}

// Defaults returns an initializer that sets each key in defaults on the
// instance. The value found for the key through opts is used in place of
// the default when there is one.
func Defaults(defaults map[string]cell.T) Initializer {
	return func(self, opts *entity.T) error {
		for k, v := range defaults {
			if o, ok := opts.Get(k); ok {
				v = o
			}

			self.Set(k, v)
		}

		return nil
	}
}

// Sequence returns an initializer that runs each of inits in order.
func Sequence(inits ...Initializer) Initializer {
	return func(self, opts *entity.T) error {
		for _, init := range inits {
			if init == nil {
				continue
			}

			if err := init(self, opts); err != nil {
				return err
			}
		}

		return nil
	}
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
