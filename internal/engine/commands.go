// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"sort"

	"github.com/michaelmacinnis/chain/internal/common/validate"
	"github.com/michaelmacinnis/chain/internal/reader"
)

type command struct {
	min   int
	max   int // Negative for no limit.
	usage string
	run   func(e *T, args []reader.Word) error
}

//nolint:gochecknoglobals
var commands map[string]command

//nolint:gochecknoinits
func init() {
	commands = map[string]command{
		"assign":   {3, 3, "assign SCOPE NAME VALUE", assign},
		"call":     {1, -1, "call FN [ARG...]", call},
		"chain":    {1, 1, "chain ENTITY", chain},
		"class":    {1, -1, "class NAME [PARENT] [KEY=DEFAULT...] [KEY:=VALUE...]", class},
		"compose":  {2, -1, "compose NAME SOURCE...", compose},
		"define":   {3, 3, "define CLASS KEY VALUE", define},
		"demo":     {0, 1, "demo [NAME]", runDemo},
		"entity":   {1, 2, "entity NAME [DELEGATE]", makeEntity},
		"get":      {2, 2, "get ENTITY KEY", get},
		"help":     {0, 0, "help", help},
		"isa":      {2, 2, "isa ENTITY CLASS", isa},
		"keys":     {1, 2, "keys ENTITY [PATTERN]", keys},
		"lambda":   {3, -1, "lambda FN SCOPE EXPR [PARAM...]", lambda},
		"let":      {3, 3, "let SCOPE NAME VALUE", let},
		"load":     {1, 1, "load FILE", load},
		"method":   {3, 3, "method TARGET KEY FN", method},
		"names":    {1, 1, "names SCOPE", names},
		"new":      {2, -1, "new NAME CLASS [KEY=VALUE...]", construct},
		"reparent": {1, 2, "reparent ENTITY [DELEGATE]", reparent},
		"resolve":  {2, 2, "resolve SCOPE NAME", resolve},
		"scope":    {1, 2, "scope NAME [ENCLOSING]", makeScope},
		"send":     {2, -1, "send ENTITY KEY [ARG...]", send},
		"set":      {3, 3, "set ENTITY KEY VALUE", set},
		"show":     {1, 1, "show NAME", show},
		"static":   {2, 3, "static CLASS KEY [VALUE]", static},
		"try":      {1, -1, "try COMMAND...", try},
		"unset":    {2, 2, "unset ENTITY KEY", unset},
	}
}

// Commands returns the name of every command in sorted order.
func Commands() []string {
	cs := make([]string, 0, len(commands))
	for c := range commands {
		cs = append(cs, c)
	}

	sort.Strings(cs)

	return cs
}

func (e *T) dispatch(words []reader.Word) error {
	name := words[0].Text
	args := words[1:]

	c, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w command: %s", ErrUnknown, name)
	}

	var err error
	if c.max < 0 {
		err = validate.Variadic(len(args), c.min)
	} else {
		err = validate.Fixed(len(args), c.min, c.max)
	}

	if err != nil {
		return fmt.Errorf("%s: %w (usage: %s)", name, err, c.usage)
	}

	return c.run(e, args)
}

func help(e *T, _ []reader.Word) error {
	for _, name := range Commands() {
		e.println(commands[name].usage)
	}

	return nil
}

func try(e *T, args []reader.Word) error {
	if err := e.dispatch(args); err != nil {
		e.println("error:", err)
	}

	return nil
}
