// Released under an MIT license. See LICENSE.

// Package nothing provides the value used to store absence.
//
// A key bound to Value is present. Looking it up succeeds and yields
// Value. This is different from a key that is not bound at all.
package nothing

import (
	"github.com/michaelmacinnis/chain/internal/interface/cell"
)

const name = "nothing"

type t struct{}

// Value is the only instance of the nothing type.
//
//nolint:gochecknoglobals
var Value cell.T = &t{}

func (n *t) Equal(c cell.T) bool {
	return Is(c)
}

func (n *t) Literal() string {
	return name
}

func (n *t) Name() string {
	return name
}

// Is returns true if c is the nothing value.
func Is(c cell.T) bool {
	_, ok := c.(*t)
	return ok
}
