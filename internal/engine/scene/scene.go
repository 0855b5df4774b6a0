// Released under an MIT license. See LICENSE.

// Package scene decodes YAML descriptions of entities, blueprints and scopes.
package scene

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/type/entity"
	"github.com/michaelmacinnis/chain/internal/type/nothing"
	"github.com/michaelmacinnis/chain/internal/type/num"
	"github.com/michaelmacinnis/chain/internal/type/str"
)

// Values maps keys to undecoded YAML values. Scalars keep their source
// text so numbers are read exactly.
type Values map[string]yaml.Node

// Blueprint describes a class-style blueprint.
type Blueprint struct {
	Name     string `yaml:"name"`
	Parent   string `yaml:"parent,omitempty"`
	Defaults Values `yaml:"defaults,omitempty"`
	Assign   Values `yaml:"assign,omitempty"`
	Statics  Values `yaml:"statics,omitempty"`
}

// Entity describes an entity built by delegation or by composition.
type Entity struct {
	Name     string   `yaml:"name"`
	Delegate string   `yaml:"delegate,omitempty"`
	Compose  []string `yaml:"compose,omitempty"`
	Own      Values   `yaml:"own,omitempty"`
}

// Scope describes a scope and its bindings.
type Scope struct {
	Name      string `yaml:"name"`
	Enclosing string `yaml:"enclosing,omitempty"`
	Bindings  Values `yaml:"bindings,omitempty"`
}

// T (scene) lists what to create, in order.
type T struct {
	Blueprints []Blueprint `yaml:"blueprints,omitempty"`
	Entities   []Entity    `yaml:"entities,omitempty"`
	Scopes     []Scope     `yaml:"scopes,omitempty"`
}

// Decode reads a scene from r. Unknown fields are an error.
func Decode(r io.Reader) (*T, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	s := &T{}

	err := d.Decode(s)
	if errors.Is(err, io.EOF) {
		return s, nil
	} else if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	for i, e := range s.Entities {
		if e.Delegate != "" && len(e.Compose) > 0 {
			return nil, fmt.Errorf("scene: entity %d (%s): delegate and compose are exclusive", i, e.Name)
		}
	}

	return s, nil
}

// Keys returns the keys of m in sorted order.
func Keys(m Values) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}

	sort.Strings(ks)

	return ks
}

// Value converts a YAML node to a cell. Null becomes nothing, integers and
// floats become numbers parsed from their text, other scalars become
// strings, and a mapping becomes a new entity with no delegate.
func Value(n *yaml.Node) (cell.T, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nothing.Value, nil
		}

		return Value(n.Content[0])

	case yaml.AliasNode:
		return Value(n.Alias)

	case yaml.ScalarNode:
		return scalar(n)

	case yaml.MappingNode:
		e := entity.New(nil)

		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i].Value

			c, err := Value(n.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}

			e.Set(k, c)
		}

		return e, nil

	case 0:
		return nothing.Value, nil
	}

	return nil, fmt.Errorf("scene: line %d: unsupported value", n.Line)
}

func scalar(n *yaml.Node) (cell.T, error) {
	switch n.ShortTag() {
	case "!!null":
		return nothing.Value, nil

	case "!!int", "!!float":
		if v, ok := num.Parse(n.Value); ok {
			return v, nil
		}

		return nil, fmt.Errorf("scene: line %d: %s is not a finite number", n.Line, n.Value)

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("scene: line %d: %w", n.Line, err)
		}

		return str.New(fmt.Sprint(b)), nil
	}

	return str.New(n.Value), nil
}
