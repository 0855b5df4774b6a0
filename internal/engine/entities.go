// Released under an MIT license. See LICENSE.

package engine

import (
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/reader"
	"github.com/michaelmacinnis/chain/internal/type/blueprint"
	"github.com/michaelmacinnis/chain/internal/type/closure"
	"github.com/michaelmacinnis/chain/internal/type/entity"
)

func chain(e *T, args []reader.Word) error {
	en, err := e.entity(args[0].Text)
	if err != nil {
		return err
	}

	links := en.Chain()

	ds := make([]string, len(links))
	for i, l := range links {
		ds[i] = e.describe(l)
	}

	e.println(strings.Join(ds, " -> "))

	return nil
}

func class(e *T, args []reader.Word) error {
	name := args[0].Text
	rest := args[1:]

	var parent *blueprint.T

	if len(rest) > 0 {
		if _, _, _, ok := assignment(rest[0]); !ok {
			p, err := e.blueprint(rest[0].Text)
			if err != nil {
				return err
			}

			parent = p
			rest = rest[1:]
		}
	}

	defaults := map[string]cell.T{}
	fixed := map[string]cell.T{}

	for _, w := range rest {
		k, v, assign, ok := assignment(w)
		if !ok {
			return usage("class", w.Text)
		}

		if assign {
			fixed[k] = v
		} else {
			defaults[k] = v
		}
	}

	var inits []blueprint.Initializer
	if len(defaults) > 0 {
		inits = append(inits, blueprint.Defaults(defaults))
	}

	if len(fixed) > 0 {
		inits = append(inits, blueprint.Assigning(fixed))
	}

	return e.bind(name, blueprint.New(name, parent, blueprint.Sequence(inits...)))
}

func compose(e *T, args []reader.Word) error {
	sources := make([]*entity.T, 0, len(args)-1)

	for _, w := range args[1:] {
		s, err := e.entity(w.Text)
		if err != nil {
			return err
		}

		sources = append(sources, s)
	}

	return e.bind(args[0].Text, entity.Compose(sources...))
}

func construct(e *T, args []reader.Word) error {
	b, err := e.blueprint(args[1].Text)
	if err != nil {
		return err
	}

	opts := entity.New(nil)

	for _, w := range args[2:] {
		k, v, _, ok := assignment(w)
		if !ok {
			return usage("new", w.Text)
		}

		opts.Set(k, v)
	}

	instance, err := b.Construct(opts)
	if err != nil {
		return err
	}

	return e.bind(args[0].Text, instance)
}

func define(e *T, args []reader.Word) error {
	b, err := e.blueprint(args[0].Text)
	if err != nil {
		return err
	}

	b.Define(args[1].Text, value(args[2]))

	return nil
}

func get(e *T, args []reader.Word) error {
	en, err := e.entity(args[0].Text)
	if err != nil {
		return err
	}

	v, _ := en.Get(args[1].Text)
	e.println(e.literal(v))

	return nil
}

func isa(e *T, args []reader.Word) error {
	en, err := e.entity(args[0].Text)
	if err != nil {
		return err
	}

	b, err := e.blueprint(args[1].Text)
	if err != nil {
		return err
	}

	e.println(b.IsA(en))

	return nil
}

func keys(e *T, args []reader.Word) error {
	en, err := e.entity(args[0].Text)
	if err != nil {
		return err
	}

	ks := en.Keys()

	if len(args) > 1 {
		matched := ks[:0]

		for _, k := range ks {
			ok, err := adapted.Match(args[1].Text, k)
			if err != nil {
				return err
			}

			if ok {
				matched = append(matched, k)
			}
		}

		ks = matched
	}

	e.println(strings.Join(ks, " "))

	return nil
}

func makeEntity(e *T, args []reader.Word) error {
	var parent *entity.T

	if len(args) > 1 {
		p, err := e.entity(args[1].Text)
		if err != nil {
			return err
		}

		parent = p
	}

	return e.bind(args[0].Text, entity.New(parent))
}

func method(e *T, args []reader.Word) error {
	fn, err := e.function(args[2].Text)
	if err != nil {
		return err
	}

	target, err := e.named(args[0].Text)
	if err != nil {
		return err
	}

	switch {
	case blueprint.Is(target):
		blueprint.To(target).Define(args[1].Text, fn)
	case entity.Is(target):
		entity.To(target).Set(args[1].Text, fn)
	default:
		return usage("method", args[0].Text)
	}

	return nil
}

func reparent(e *T, args []reader.Word) error {
	en, err := e.entity(args[0].Text)
	if err != nil {
		return err
	}

	var d *entity.T

	if len(args) > 1 {
		d, err = e.entity(args[1].Text)
		if err != nil {
			return err
		}
	}

	return en.SetDelegate(d)
}

func send(e *T, args []reader.Word) error {
	en, err := e.entity(args[0].Text)
	if err != nil {
		return err
	}

	v, err := closure.Invoke(en, args[1].Text, values(args[2:])...)
	if err != nil {
		return err
	}

	e.println(e.literal(v))

	return nil
}

func set(e *T, args []reader.Word) error {
	en, err := e.entity(args[0].Text)
	if err != nil {
		return err
	}

	en.Set(args[1].Text, value(args[2]))

	return nil
}

func static(e *T, args []reader.Word) error {
	b, err := e.blueprint(args[0].Text)
	if err != nil {
		return err
	}

	if len(args) == 3 {
		e.statics.Set(b, args[1].Text, value(args[2]))
		return nil
	}

	v, _ := e.statics.Get(b, args[1].Text)
	e.println(e.literal(v))

	return nil
}

func unset(e *T, args []reader.Word) error {
	en, err := e.entity(args[0].Text)
	if err != nil {
		return err
	}

	en.Remove(args[1].Text)

	return nil
}
