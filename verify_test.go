package rbtree

import (
	"github.com/stretchr/testify/require"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

// verify checks every red-black and bookkeeping invariant of tree.
func verify[K, V any](t testingT, tree Tree[K, V]) {
	t.Helper()
	require.True(t, isBlack(tree.root), "root must be black")
	verifyNode(t, tree.cmp, tree.root, nil, nil)
}

// verifySize is verify plus an exact entry count.
func verifySize[K, V any](t testingT, tree Tree[K, V], expectedSize int) {
	t.Helper()
	require.Equal(t, expectedSize, tree.Size())
	verify(t, tree)
}

// verifyNode returns the black height of n, counting nil leaves as one.
func verifyNode[K, V any](t testingT, cmp Compare[K], n *node[K, V], lower, upper *K) int {
	t.Helper()
	if n == nil {
		return 1
	}
	if lower != nil {
		require.Greater(t, cmp(n.key, *lower), 0, "key %v out of order", n.key)
	}
	if upper != nil {
		require.Less(t, cmp(n.key, *upper), 0, "key %v out of order", n.key)
	}

	l, r := leftOf(n), rightOf(n)
	if isRed(n) {
		require.True(t, isBlack(l) && isBlack(r), "red node %v has a red child", n.key)
	}
	require.Equal(t, sizeOf(l)+sizeOf(r)+1, n.size, "size of %v", n.key)

	leftHeight := verifyNode(t, cmp, l, lower, &n.key)
	rightHeight := verifyNode(t, cmp, r, &n.key, upper)
	require.Equal(t, leftHeight, rightHeight, "black height differs below %v", n.key)

	if isBlack(n) {
		return leftHeight + 1
	}
	return leftHeight
}

// height returns the longest root-to-leaf path length of n.
func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.child[left]), height(n.child[right])
	if l > r {
		return l + 1
	}
	return r + 1
}
