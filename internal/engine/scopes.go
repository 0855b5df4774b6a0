// Released under an MIT license. See LICENSE.

package engine

import (
	"strings"

	"github.com/michaelmacinnis/chain/internal/reader"
	"github.com/michaelmacinnis/chain/internal/type/closure"
	"github.com/michaelmacinnis/chain/internal/type/env"
)

func assign(e *T, args []reader.Word) error {
	s, err := e.scope(args[0].Text)
	if err != nil {
		return err
	}

	return s.Assign(args[1].Text, value(args[2]))
}

func call(e *T, args []reader.Word) error {
	fn, err := e.function(args[0].Text)
	if err != nil {
		return err
	}

	v, err := fn.Call(values(args[1:])...)
	if err != nil {
		return err
	}

	e.println(e.literal(v))

	return nil
}

func lambda(e *T, args []reader.Word) error {
	s, err := e.scope(args[1].Text)
	if err != nil {
		return err
	}

	name := args[0].Text
	body := closure.Resolving(args[2].Text)

	return e.bind(name, closure.New(name, reader.Texts(args[3:]), body, s))
}

func let(e *T, args []reader.Word) error {
	s, err := e.scope(args[0].Text)
	if err != nil {
		return err
	}

	return s.Define(args[1].Text, value(args[2]))
}

func makeScope(e *T, args []reader.Word) error {
	enclosing := e.global

	if len(args) > 1 {
		s, err := e.scope(args[1].Text)
		if err != nil {
			return err
		}

		enclosing = s
	}

	return e.bind(args[0].Text, env.New(enclosing))
}

func names(e *T, args []reader.Word) error {
	s, err := e.scope(args[0].Text)
	if err != nil {
		return err
	}

	for ; s != nil; s = s.Enclosing() {
		line := e.describe(s) + ":"
		if ns := s.Names(); len(ns) > 0 {
			line += " " + strings.Join(ns, " ")
		}

		e.println(line)
	}

	return nil
}

func resolve(e *T, args []reader.Word) error {
	s, err := e.scope(args[0].Text)
	if err != nil {
		return err
	}

	v, err := s.Resolve(args[1].Text)
	if err != nil {
		return err
	}

	e.println(e.literal(v))

	return nil
}

func show(e *T, args []reader.Word) error {
	c, err := e.named(args[0].Text)
	if err != nil {
		return err
	}

	e.println(e.literal(c))

	return nil
}
