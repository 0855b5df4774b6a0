// Released under an MIT license. See LICENSE.

package closure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/chain/internal/interface/cell"
	"github.com/michaelmacinnis/chain/internal/type/closure"
	"github.com/michaelmacinnis/chain/internal/type/entity"
	"github.com/michaelmacinnis/chain/internal/type/env"
	"github.com/michaelmacinnis/chain/internal/type/nothing"
	"github.com/michaelmacinnis/chain/internal/type/num"
	"github.com/michaelmacinnis/chain/internal/type/str"
)

func TestCaptureIgnoresCaller(t *testing.T) {
	global := env.New(nil)

	s1 := env.New(global)
	require.NoError(t, s1.Define("outer", str.New("scope")))

	fn := closure.New("inner", nil, closure.Resolving("outer"), s1)

	// The caller binds something else entirely.
	s2 := env.New(global)
	require.NoError(t, s2.Define("other", str.New("caller")))

	v, err := fn.Call()
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("scope")))
	assert.Same(t, s1, fn.Captured())
}

func TestCaptureOutlivesDefiningCall(t *testing.T) {
	global := env.New(nil)
	require.NoError(t, global.Define("global", str.New("global")))

	// closure defines outer and returns a function that refers to it.
	outer := closure.New("closure", nil, func(frame *env.T) (cell.T, error) {
		if err := frame.Define("outer", str.New("scope")); err != nil {
			return nil, err
		}

		return closure.New("inner", nil, closure.Resolving("outer"), frame), nil
	}, global)

	c, err := outer.Call()
	require.NoError(t, err)
	require.True(t, closure.Is(c))

	inner := closure.To(c)

	v, err := inner.Call()
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("scope")))

	v, err = closure.New("g", nil, closure.Resolving("global"), inner.Captured()).Call()
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("global")))

	// outer is not visible from the global scope.
	_, err = global.Resolve("outer")
	require.ErrorIs(t, err, env.ErrReferenceNotFound)
}

func TestEachCallGetsAFreshScope(t *testing.T) {
	global := env.New(nil)

	var frames []*env.T

	fn := closure.New("f", []string{"x"}, func(frame *env.T) (cell.T, error) {
		frames = append(frames, frame)
		return frame.Resolve("x")
	}, global)

	v, err := fn.Call(str.New("1"))
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("1")))

	v, err = fn.Call(str.New("2"))
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("2")))

	require.Len(t, frames, 2)
	assert.NotSame(t, frames[0], frames[1])
	assert.Same(t, global, frames[0].Enclosing())
	assert.Same(t, global, frames[1].Enclosing())

	_, err = global.Resolve("x")
	require.ErrorIs(t, err, env.ErrReferenceNotFound)
}

func TestUnboundReferenceFails(t *testing.T) {
	fn := closure.New("leak", nil, closure.Resolving("bar"), env.New(nil))

	v, err := fn.Call()
	require.ErrorIs(t, err, env.ErrReferenceNotFound)
	assert.Nil(t, v)
}

func TestCapturedScopeIsShared(t *testing.T) {
	s := env.New(nil)
	require.NoError(t, s.Define("count", str.New("0")))

	fn := closure.New("peek", nil, closure.Resolving("count"), s)

	require.NoError(t, s.Assign("count", str.New("1")))

	v, err := fn.Call()
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("1")))
}

func TestArity(t *testing.T) {
	fn := closure.New("f", []string{"a", "b"}, closure.Resolving("a"), env.New(nil))

	_, err := fn.Call(str.New("a"))
	require.ErrorIs(t, err, closure.ErrArity)

	v, err := fn.Call(str.New("a"), str.New("b"))
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("a")))

	assert.Equal(t, "<function f(a, b)>", fn.Literal())
}

func TestInvokeBindsReceiver(t *testing.T) {
	proto := entity.New(nil)
	proto.Set("b", str.New("proto"))
	proto.Set("method", closure.New("method", nil, closure.Resolving("this.b"), env.New(nil)))

	a := entity.New(proto)

	b := entity.New(proto)
	b.Set("b", str.New("b"))

	v, err := closure.Invoke(a, "method")
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("proto")))

	v, err = closure.Invoke(b, "method")
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("b")))

	_, err = closure.Invoke(b, "b")
	require.ErrorIs(t, err, closure.ErrNotCallable)

	_, err = closure.Invoke(b, "missing")
	require.ErrorIs(t, err, closure.ErrNotCallable)
}

func TestResolvingPath(t *testing.T) {
	s := env.New(nil)

	inner := entity.New(nil)
	inner.Set("z", nothing.Value)

	outer := entity.New(nil)
	outer.Set("y", inner)
	outer.Set("s", str.New("s"))

	require.NoError(t, s.Define("x", outer))

	body := closure.Resolving("x.y.z")

	v, err := body(s)
	require.NoError(t, err)
	assert.True(t, nothing.Is(v))

	v, err = closure.Resolving("x.missing.z")(s)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = closure.Resolving("x.s.length")(s)
	require.Error(t, err)
}

func TestMethodFromComposedSourceThroughDelegate(t *testing.T) {
	one := entity.New(nil)
	one.Set("a", num.Int(1))
	one.Set("b", num.Int(0))
	one.Set("add", closure.New("add", nil, closure.Resolving("this.a+this.b"), env.New(nil)))

	two := entity.New(nil)
	two.Set("b", num.Int(2))

	three := entity.New(entity.Compose(one, two))

	v, err := closure.Invoke(three, "add")
	require.NoError(t, err)
	assert.True(t, v.Equal(num.Int(3)))
}

func TestResolvingSum(t *testing.T) {
	s := env.New(nil)
	require.NoError(t, s.Define("a", num.Int(1)))
	require.NoError(t, s.Define("s", str.New("s")))

	_, err := closure.Resolving("a+s")(s)
	require.Error(t, err)

	_, err = closure.Resolving("a+missing")(s)
	require.ErrorIs(t, err, env.ErrReferenceNotFound)
}
