package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &IntegerValue{Value: 1})

	val, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", val.String())

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironmentChainLookup(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &IntegerValue{Value: 1})

	inner := NewEnclosedEnvironment(outer)

	val, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", val.String())
}

func TestEnvironmentSetWalksChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &IntegerValue{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	require.NoError(t, inner.Set("x", &IntegerValue{Value: 2}))

	// The update landed on the outer binding, not a new inner one.
	_, ok := inner.GetLocal("x")
	assert.False(t, ok)

	val, ok := outer.Get("x")
	require.True(t, ok)
	assert.Equal(t, "2", val.String())
}

func TestEnvironmentSetFailsWhenUnbound(t *testing.T) {
	env := NewEnclosedEnvironment(NewEnvironment())

	err := env.Set("ghost", &IntegerValue{Value: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable 'ghost'")
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &IntegerValue{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", &IntegerValue{Value: 2})

	val, _ := inner.Get("x")
	assert.Equal(t, "2", val.String(), "inner scope shadows outer")

	val, _ = outer.Get("x")
	assert.Equal(t, "1", val.String(), "outer binding is untouched")
}

func TestEnvironmentGetReturnsNearestBinding(t *testing.T) {
	root := NewEnvironment()
	root.Define("x", &IntegerValue{Value: 1})

	mid := NewEnclosedEnvironment(root)
	mid.Define("x", &IntegerValue{Value: 2})

	leaf := NewEnclosedEnvironment(mid)

	val, ok := leaf.Get("x")
	require.True(t, ok)
	assert.Equal(t, "2", val.String())
}

func TestEnvironmentHasAndOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &NullValue{})
	inner := NewEnclosedEnvironment(outer)

	assert.True(t, inner.Has("x"))
	assert.False(t, inner.Has("y"))
	assert.Same(t, outer, inner.Outer())
	assert.Nil(t, outer.Outer())
}
