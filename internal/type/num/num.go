// Released under an MIT license. See LICENSE.

// Package num provides the rational number value.
package num

import (
	"math/big"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
)

const name = "number"

// T (number) wraps Go's big.Rat type.
type T big.Rat

// Int creates a new number with the integer value i.
func Int(i int64) *T {
	return Rat(big.NewRat(i, 1))
}

// Parse creates a number from s. It reports false if s is not a number.
func Parse(s string) (*T, bool) {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		return nil, false
	}

	return Rat(v), true
}

// Rat wraps the *big.Rat r as a number.
func Rat(r *big.Rat) *T {
	return (*T)(r)
}

// Equal returns true if c is the same number as the number n.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && n.Rat().Cmp(To(c).Rat()) == 0
}

// Literal returns the literal representation of the number n.
func (n *T) Literal() string {
	return n.String()
}

// Name returns the type name for the number n.
func (n *T) Name() string {
	return name
}

// Rat returns the value of the number n as a *big.Rat.
func (n *T) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the number n.
func (n *T) String() string {
	return n.Rat().RatString()
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not a " + name)
}
