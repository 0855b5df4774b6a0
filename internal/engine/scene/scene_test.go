// Released under an MIT license. See LICENSE.

package scene_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/chain/internal/engine/scene"
	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/type/entity"
	"github.com/michaelmacinnis/chain/internal/type/nothing"
	"github.com/michaelmacinnis/chain/internal/type/num"
	"github.com/michaelmacinnis/chain/internal/type/str"
)

const example = `
blueprints:
  - name: A
    defaults: {a: 1, b: 2}
    statics: {white: noise}
  - name: B
    parent: A
    assign: {b: b}
entities:
  - {name: one, own: {a: 1, b: 0}}
  - {name: two, own: {b: 2}}
  - {name: mixed, compose: [one, two]}
  - {name: three, delegate: mixed}
scopes:
  - {name: outer, bindings: {outer: scope}}
`

func TestDecode(t *testing.T) {
	s, err := scene.Decode(strings.NewReader(example))
	require.NoError(t, err)

	require.Len(t, s.Blueprints, 2)
	assert.Equal(t, "A", s.Blueprints[1].Parent)
	assert.Equal(t, []string{"b"}, scene.Keys(s.Blueprints[1].Assign))

	require.Len(t, s.Entities, 4)
	assert.Equal(t, []string{"one", "two"}, s.Entities[2].Compose)
	assert.Equal(t, "mixed", s.Entities[3].Delegate)
	assert.Equal(t, []string{"a", "b"}, scene.Keys(s.Entities[0].Own))

	n := s.Entities[0].Own["a"]
	v, err := scene.Value(&n)
	require.NoError(t, err)
	assert.True(t, v.Equal(num.Int(1)))

	require.Len(t, s.Scopes, 1)
	assert.Equal(t, "", s.Scopes[0].Enclosing)
}

func TestDecodeEmpty(t *testing.T) {
	s, err := scene.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Entities)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := scene.Decode(strings.NewReader("entities:\n  - {name: x, parent: y}\n"))
	require.Error(t, err)
}

func TestDecodeRejectsDelegateWithCompose(t *testing.T) {
	_, err := scene.Decode(strings.NewReader("entities:\n  - {name: x, delegate: y, compose: [z]}\n"))
	require.Error(t, err)
}

func value(t *testing.T, src string) (cell.T, error) {
	t.Helper()

	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &n))

	return scene.Value(&n)
}

func TestValue(t *testing.T) {
	v, err := value(t, "~")
	require.NoError(t, err)
	assert.True(t, nothing.Is(v))

	v, err = value(t, "s")
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("s")))

	v, err = value(t, "'3'")
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("3")))

	v, err = value(t, "true")
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("true")))

	v, err = value(t, "3")
	require.NoError(t, err)
	assert.True(t, v.Equal(num.Int(3)))

	v, err = value(t, "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1/2", num.To(v).String())

	v, err = value(t, "{x: 1, y: {z: 2}}")
	require.NoError(t, err)
	require.True(t, entity.Is(v))
	assert.Equal(t, "{x: 1, y: {...}}", entity.To(v).Literal())

	_, err = value(t, "[1]")
	require.Error(t, err)

	_, err = value(t, ".inf")
	require.Error(t, err)
}

func TestValueNumbersAreExact(t *testing.T) {
	for _, src := range []string{"0.1", "123456789012345678901234567890", "-2.5e-3"} {
		v, err := value(t, src)
		require.NoError(t, err, src)

		want, ok := num.Parse(src)
		require.True(t, ok, src)
		assert.True(t, v.Equal(want), "%s: got %s", src, num.To(v))
	}
}

func TestValueFollowsAliases(t *testing.T) {
	s, err := scene.Decode(strings.NewReader("entities:\n  - {name: a, own: {x: &n 0.1, y: *n}}\n"))
	require.NoError(t, err)

	n := s.Entities[0].Own["y"]
	v, err := scene.Value(&n)
	require.NoError(t, err)

	want, _ := num.Parse("0.1")
	assert.True(t, v.Equal(want))
}
