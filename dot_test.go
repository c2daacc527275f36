package rbtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotEmpty(t *testing.T) {
	out := New[int, string]().Dot()

	assert.Contains(t, out, "digraph")
	assert.NotContains(t, out, "->")
}

func TestDotRendersNodesAndEdges(t *testing.T) {
	tree := Singleton(2, "b").Add(1, "a").Add(3, "c")

	out := tree.Dot()

	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "2: b (3)")
	assert.Contains(t, out, "1: a (1)")
	assert.Contains(t, out, "3: c (1)")
	assert.Equal(t, 2, strings.Count(out, "->"))
	assert.Contains(t, out, "red")
	assert.Contains(t, out, "black")
}
