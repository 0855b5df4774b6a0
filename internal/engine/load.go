// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/michaelmacinnis/chain/internal/demo"
	"github.com/michaelmacinnis/chain/internal/engine/scene"
	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/reader"
	"github.com/michaelmacinnis/chain/internal/type/blueprint"
	"github.com/michaelmacinnis/chain/internal/type/entity"
	"github.com/michaelmacinnis/chain/internal/type/env"
)

// Apply creates everything described by the scene s, in order.
func (e *T) Apply(s *scene.T) error {
	for _, b := range s.Blueprints {
		if err := e.applyBlueprint(b); err != nil {
			return fmt.Errorf("blueprint %s: %w", b.Name, err)
		}
	}

	for _, en := range s.Entities {
		if err := e.applyEntity(en); err != nil {
			return fmt.Errorf("entity %s: %w", en.Name, err)
		}
	}

	for _, sc := range s.Scopes {
		if err := e.applyScope(sc); err != nil {
			return fmt.Errorf("scope %s: %w", sc.Name, err)
		}
	}

	e.log.Debug("scene applied",
		zap.Int("blueprints", len(s.Blueprints)),
		zap.Int("entities", len(s.Entities)),
		zap.Int("scopes", len(s.Scopes)),
	)

	return nil
}

func (e *T) applyBlueprint(b scene.Blueprint) error {
	var parent *blueprint.T

	if b.Parent != "" {
		p, err := e.blueprint(b.Parent)
		if err != nil {
			return err
		}

		parent = p
	}

	defaults, err := cells(b.Defaults)
	if err != nil {
		return err
	}

	fixed, err := cells(b.Assign)
	if err != nil {
		return err
	}

	bp := blueprint.New(b.Name, parent, blueprint.Sequence(
		blueprint.Defaults(defaults),
		blueprint.Assigning(fixed),
	))

	statics, err := cells(b.Statics)
	if err != nil {
		return err
	}

	for k, v := range statics {
		e.statics.Set(bp, k, v)
	}

	return e.bind(b.Name, bp)
}

func (e *T) applyEntity(s scene.Entity) error {
	var en *entity.T

	switch {
	case len(s.Compose) > 0:
		sources := make([]*entity.T, 0, len(s.Compose))

		for _, n := range s.Compose {
			src, err := e.entity(n)
			if err != nil {
				return err
			}

			sources = append(sources, src)
		}

		en = entity.Compose(sources...)

	case s.Delegate != "":
		d, err := e.entity(s.Delegate)
		if err != nil {
			return err
		}

		en = entity.New(d)

	default:
		en = entity.New(nil)
	}

	own, err := cells(s.Own)
	if err != nil {
		return err
	}

	for _, k := range scene.Keys(s.Own) {
		en.Set(k, own[k])
	}

	return e.bind(s.Name, en)
}

func (e *T) applyScope(s scene.Scope) error {
	enclosing := e.global

	if s.Enclosing != "" {
		p, err := e.scope(s.Enclosing)
		if err != nil {
			return err
		}

		enclosing = p
	}

	var sc *env.T
	if s.Name == global {
		sc = e.global
	} else {
		sc = env.New(enclosing)
	}

	bindings, err := cells(s.Bindings)
	if err != nil {
		return err
	}

	for _, k := range scene.Keys(s.Bindings) {
		if err := sc.Define(k, bindings[k]); err != nil {
			return err
		}
	}

	if sc == e.global {
		return nil
	}

	return e.bind(s.Name, sc)
}

func cells(m scene.Values) (map[string]cell.T, error) {
	cs := make(map[string]cell.T, len(m))

	for k := range m {
		n := m[k]

		c, err := scene.Value(&n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}

		cs[k] = c
	}

	return cs, nil
}

// Load applies the scene in the file at path.
func (e *T) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := scene.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return e.Apply(s)
}

func load(e *T, args []reader.Word) error {
	return e.Load(args[0].Text)
}

func runDemo(e *T, args []reader.Word) error {
	ns := demo.Names()
	if len(args) > 0 {
		ns = reader.Texts(args)
	}

	for i, n := range ns {
		script, ok := demo.Script(n)
		if !ok {
			return fmt.Errorf("%w demo: %s", ErrUnknown, n)
		}

		if len(ns) > 1 {
			if i > 0 {
				e.println()
			}

			e.println("==", n)
		}

		if err := New(e.out, e.log).Echo(n, script); err != nil {
			return err
		}
	}

	return nil
}

// Echo evaluates each line of script like Run but first writes each line
// to the output. Comments and blank lines are written but not evaluated.
func (e *T) Echo(label, script string) error {
	lines := strings.Split(strings.TrimSuffix(script, "\n"), "\n")

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			e.println(line)
			continue
		}

		e.println(">", line)

		if err := e.Evaluate(line); err != nil {
			return fmt.Errorf("%s:%d: %w", label, i+1, err)
		}
	}

	return nil
}
