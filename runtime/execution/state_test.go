package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_MissingKeyYieldsNil(t *testing.T) {
	state := NewState()
	assert.Nil(t, state.Get("absent"))
	value, ok := state.Lookup("absent")
	assert.Nil(t, value)
	assert.False(t, ok)
}

func TestState_SetGet(t *testing.T) {
	state := NewState()
	state.Set("Foo", "Bar")
	assert.Equal(t, "Bar", state.Get("Foo"))

	state.Set("Foo", "Baz")
	assert.Equal(t, "Baz", state.Get("Foo"))

	state.Delete("Foo")
	assert.Nil(t, state.Get("Foo"))
}

func TestState_NestedKeys(t *testing.T) {
	state := NewState()
	state.Set("order.total", 42)
	value, ok := state.Lookup("order.total")
	assert.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestState_Keys(t *testing.T) {
	state := NewState()
	state.Set("a", 1)
	state.Set("b", 2)
	assert.ElementsMatch(t, []string{"a", "b"}, state.Keys())
}
