// Released under an MIT license. See LICENSE.

// Package closure provides function values.
//
// A function value records the scope it was created in. Every call runs
// the body in a fresh scope enclosed by that recorded scope, no matter
// where the call comes from.
package closure

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/type/entity"
	"github.com/michaelmacinnis/chain/internal/type/env"
	"github.com/michaelmacinnis/chain/internal/type/num"
)

const name = "function"

var (
	// ErrArity is returned when a function is called with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrNotCallable is returned when a method key does not name a function value.
	ErrNotCallable = errors.New("not callable")
)

// Body computes a function's result in the scope created for one call.
// A nil result with a nil error means the body found nothing.
type Body func(frame *env.T) (cell.T, error)

// Labels hold the names a function binds in each call's scope.
type Labels struct {
	Params []string // Parameter labels.
	Self   string   // Label for the receiver when called as a method.
}

// T (closure) is a body paired with the scope it captured.
type T struct {
	Body
	Labels
	label string
	scope *env.T
}

// New creates a function value that captures the scope defining.
func New(label string, params []string, body Body, defining *env.T) *T {
	return &T{
		Body: body,
		Labels: Labels{
			Params: append([]string(nil), params...),
			Self:   "this",
		},
		label: label,
		scope: defining,
	}
}

// Call invokes c with args.
func (c *T) Call(args ...cell.T) (cell.T, error) {
	return c.call(nil, args)
}

// Captured returns the scope recorded when c was created.
func (c *T) Captured() *env.T {
	return c.scope
}

// Equal returns true if c is the same function value as o.
func (c *T) Equal(o cell.T) bool {
	return Is(o) && c == To(o)
}

// Label returns the name c was created with.
func (c *T) Label() string {
	return c.label
}

// Literal returns a short description of the function value c.
func (c *T) Literal() string {
	return "<" + name + " " + c.label + "(" + strings.Join(c.Params, ", ") + ")>"
}

// Name returns the type name for the function value c.
func (c *T) Name() string {
	return name
}

func (c *T) call(self *entity.T, args []cell.T) (cell.T, error) {
	if len(args) != len(c.Params) {
		return nil, fmt.Errorf(
			"%w: %s expects %d, got %d",
			ErrArity, c.label, len(c.Params), len(args),
		)
	}

	frame := env.New(c.scope)

	if self != nil {
		if err := frame.Define(c.Self, self); err != nil {
			return nil, err
		}
	}

	for i, p := range c.Params {
		if err := frame.Define(p, args[i]); err != nil {
			return nil, err
		}
	}

	return c.Body(frame)
}

// Invoke finds the function value for k through self's delegate chain and
// calls it with the receiver bound to the Self label.
func Invoke(self *entity.T, k string, args ...cell.T) (cell.T, error) {
	v, ok := self.Get(k)
	if !ok || !Is(v) {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, k)
	}

	return To(v).call(self, args)
}

// Resolving returns a body that evaluates an expression such as "outer",
// "this.b" or "this.a+this.b". The first element of a path is resolved
// through the call's scope chain. Each later element is a key looked up
// through an entity's delegates. Paths joined by "+" must all resolve to
// numbers and the result is their sum.
func Resolving(expr string) Body {
	terms := strings.Split(expr, "+")
	if len(terms) == 1 {
		return resolving(expr)
	}

	paths := make([]Body, len(terms))
	for i, t := range terms {
		paths[i] = resolving(t)
	}

	return func(frame *env.T) (cell.T, error) {
		sum := new(big.Rat)

		for i, p := range paths {
			v, err := p(frame)
			if err != nil {
				return nil, err
			}

			if v == nil {
				return nil, fmt.Errorf("%s: %s not found", expr, terms[i])
			}

			if !num.Is(v) {
				return nil, fmt.Errorf("%s: %s is a %s, not a number", expr, terms[i], v.Name())
			}

			sum.Add(sum, num.To(v).Rat())
		}

		return num.Rat(sum), nil
	}
}

func resolving(path string) Body {
	elems := strings.Split(path, ".")

	return func(frame *env.T) (cell.T, error) {
		v, err := frame.Resolve(elems[0])
		if err != nil {
			return nil, err
		}

		for _, k := range elems[1:] {
			if v == nil {
				return nil, nil
			}

			if !entity.Is(v) {
				return nil, fmt.Errorf("%s: %s has no keys", path, v.Name())
			}

			var ok bool

			v, ok = entity.To(v).Get(k)
			if !ok {
				return nil, nil
			}
		}

		return v, nil
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
