// Released under an MIT license. See LICENSE.

// Package engine provides a named workspace of entities, blueprints, scopes
// and function values, and evaluates commands against it.
package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/reader"
	"github.com/michaelmacinnis/chain/internal/type/blueprint"
	"github.com/michaelmacinnis/chain/internal/type/entity"
	"github.com/michaelmacinnis/chain/internal/type/env"
)

const global = "global"

// ErrUnknown is returned for an unknown command or name.
var ErrUnknown = errors.New("unknown")

// T (engine) is a facade in front of the workspace and its commands.
type T struct {
	global  *env.T
	log     *zap.Logger
	names   map[string]cell.T
	out     io.Writer
	statics *blueprint.Statics
}

// New creates an engine that writes results to out. The name "global" is
// bound to the outermost scope.
func New(out io.Writer, log *zap.Logger) *T {
	g := env.New(nil)

	return &T{
		global:  g,
		log:     log,
		names:   map[string]cell.T{global: g},
		out:     out,
		statics: blueprint.NewStatics(),
	}
}

// Evaluate runs the command in line.
func (e *T) Evaluate(line string) error {
	words, err := reader.Split(line)
	if err != nil {
		return err
	}

	if len(words) == 0 {
		return nil
	}

	e.log.Debug("evaluating", zap.Strings("command", reader.Texts(words)))

	err = e.dispatch(words)
	if err != nil {
		e.log.Debug("command failed", zap.String("command", words[0].Text), zap.Error(err))
	}

	return err
}

// Lookup returns the value bound to name in the workspace.
func (e *T) Lookup(name string) (cell.T, bool) {
	c, ok := e.names[name]
	return c, ok
}

// Names returns every name in the workspace in sorted order.
func (e *T) Names() []string {
	ns := make([]string, 0, len(e.names))
	for n := range e.names {
		ns = append(ns, n)
	}

	sort.Strings(ns)

	return ns
}

// Run evaluates each line read from r. It stops at the first error. The
// label identifies r in error messages.
func (e *T) Run(label string, r io.Reader) error {
	b := bufio.NewReader(r)

	for n := 1; ; n++ {
		line, err := b.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%s:%d: %w", label, n, err)
		}

		if line != "" {
			if err := e.Evaluate(strings.TrimRight(line, "\r\n")); err != nil {
				return fmt.Errorf("%s:%d: %w", label, n, err)
			}
		}

		if err != nil {
			return nil
		}
	}
}

func (e *T) bind(name string, c cell.T) error {
	if name == global {
		return fmt.Errorf("%s cannot be rebound", global)
	}

	e.names[name] = c

	return nil
}

func (e *T) println(a ...any) {
	fmt.Fprintln(e.out, a...)
}

func (e *T) blueprint(name string) (*blueprint.T, error) {
	c, err := e.named(name)
	if err != nil {
		return nil, err
	}

	if !blueprint.Is(c) {
		return nil, fmt.Errorf("%s is a %s, not a blueprint", name, c.Name())
	}

	return blueprint.To(c), nil
}

func (e *T) entity(name string) (*entity.T, error) {
	c, err := e.named(name)
	if err != nil {
		return nil, err
	}

	if !entity.Is(c) {
		return nil, fmt.Errorf("%s is a %s, not an entity", name, c.Name())
	}

	return entity.To(c), nil
}

func (e *T) named(name string) (cell.T, error) {
	c, ok := e.names[name]
	if !ok {
		return nil, fmt.Errorf("%w name: %s", ErrUnknown, name)
	}

	return c, nil
}

func (e *T) scope(name string) (*env.T, error) {
	c, err := e.named(name)
	if err != nil {
		return nil, err
	}

	if !env.Is(c) {
		return nil, fmt.Errorf("%s is a %s, not a scope", name, c.Name())
	}

	return env.To(c), nil
}
