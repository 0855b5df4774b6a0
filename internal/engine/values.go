// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/interface/literal"
	"github.com/michaelmacinnis/chain/internal/reader"
	"github.com/michaelmacinnis/chain/internal/type/blueprint"
	"github.com/michaelmacinnis/chain/internal/type/closure"
	"github.com/michaelmacinnis/chain/internal/type/nothing"
	"github.com/michaelmacinnis/chain/internal/type/num"
	"github.com/michaelmacinnis/chain/internal/type/str"
)

// ErrUsage is returned when an argument has the wrong form.
var ErrUsage = errors.New("bad argument")

// assignment splits a KEY=VALUE or KEY:=VALUE word. It reports whether w
// had either form and whether it used :=.
func assignment(w reader.Word) (string, cell.T, bool, bool) {
	i := strings.IndexByte(w.Text, '=')
	if i <= 0 {
		return "", nil, false, false
	}

	k := w.Text[:i]
	v := value(reader.Word{Text: w.Text[i+1:], Quoted: w.Quoted})

	if strings.HasSuffix(k, ":") {
		k = strings.TrimSuffix(k, ":")
		if k == "" {
			return "", nil, false, false
		}

		return k, v, true, true
	}

	return k, v, false, true
}

// describe returns the workspace name for c if it has one.
func (e *T) describe(c cell.T) string {
	for _, n := range e.Names() {
		v := e.names[n]
		if v.Equal(c) {
			return n
		}

		if blueprint.Is(v) && blueprint.To(v).Prototype().Equal(c) {
			return n + ".prototype"
		}
	}

	return e.literal(c)
}

func (e *T) function(name string) (*closure.T, error) {
	c, err := e.named(name)
	if err != nil {
		return nil, err
	}

	if !closure.Is(c) {
		return nil, fmt.Errorf("%s is a %s, not a function", name, c.Name())
	}

	return closure.To(c), nil
}

func (e *T) literal(c cell.T) string {
	if c == nil {
		return "not found"
	}

	return literal.String(c)
}

func usage(command, arg string) error {
	return fmt.Errorf("%s: %w: %s (usage: %s)", command, ErrUsage, arg, commands[command].usage)
}

// value converts a word to a cell. Unquoted words may be numbers or nothing.
func value(w reader.Word) cell.T {
	if !w.Quoted {
		if w.Text == nothing.Value.Name() {
			return nothing.Value
		}

		if n, ok := num.Parse(w.Text); ok {
			return n
		}
	}

	return str.New(w.Text)
}

func values(ws []reader.Word) []cell.T {
	cs := make([]cell.T, len(ws))
	for i, w := range ws {
		cs[i] = value(w)
	}

	return cs
}
