// Released under an MIT license. See LICENSE.

// Package reference defines the interface for anything that holds a value.
package reference

import (
	"github.com/michaelmacinnis/chain/internal/interface/cell"
)

// T (reference) is anything that can hold a value.
type T interface {
	Get() cell.T
	Set(cell.T)
}
