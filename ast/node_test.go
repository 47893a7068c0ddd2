package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeValues(t *testing.T) {
	num := NewNumber(2.5)
	assert.Equal(t, NodeTypeNumber, num.Type())
	assert.Equal(t, 2.5, num.Float64())
	assert.True(t, num.IsValue())
	assert.False(t, num.IsList())

	str := NewString(`"abc"`)
	assert.Equal(t, NodeTypeString, str.Type())
	assert.Equal(t, `"abc"`, str.Text())

	sym := NewSymbol("+")
	assert.Equal(t, NodeTypeSymbol, sym.Type())
	assert.Equal(t, "+", sym.Text())
}

func TestNodePush(t *testing.T) {
	list := NewList()
	require.True(t, list.IsList())
	assert.Len(t, list.List(), 0)

	child := NewSymbol("foo")
	err := list.Push(child)
	require.NoError(t, err)

	require.Len(t, list.List(), 1)
	assert.Equal(t, list, child.Parent())
}

func TestNodePushOnValue(t *testing.T) {
	num := NewNumber(1)

	err := num.Push(NewSymbol("x"))
	assert.Error(t, err)
}

func TestNodeString(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Push(NewNumber(1)))
	require.NoError(t, list.Push(NewNumber(2)))

	assert.Equal(t, "(list)[2]", list.String())
	assert.Equal(t, "(number): 1", list.List()[0].String())
}
