package rbtree

// color of a tree node. The zero value is black so that a nil node reads as black.
type color bool

const (
	black color = false
	red   color = true
)

// String returns the color name.
func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// dir selects a child slot. Mirror-image cases of the fixups are written once
// in terms of a dir and its opposite.
type dir uint8

const (
	left dir = iota
	right
)

// opposite returns the other side.
func (d dir) opposite() dir { return 1 - d }

// node is an immutable tree node. Once built it is never written to again,
// so any subtree may be shared by many tree versions at once.
type node[K, V any] struct {
	key   K
	value V
	child [2]*node[K, V]
	size  int
	color color
}

// newLeaf creates a red node without children, the shape every insertion starts from.
func newLeaf[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, size: 1, color: red}
}

// colorOf returns the color of n, treating nil as black.
func colorOf[K, V any](n *node[K, V]) color {
	if n == nil {
		return black
	}
	return n.color
}

func isRed[K, V any](n *node[K, V]) bool   { return colorOf(n) == red }
func isBlack[K, V any](n *node[K, V]) bool { return colorOf(n) == black }

// childOf returns the d side child of n, or nil when n is nil.
func childOf[K, V any](n *node[K, V], d dir) *node[K, V] {
	if n == nil {
		return nil
	}
	return n.child[d]
}

func leftOf[K, V any](n *node[K, V]) *node[K, V]  { return childOf(n, left) }
func rightOf[K, V any](n *node[K, V]) *node[K, V] { return childOf(n, right) }

// sizeOf returns the number of nodes rooted at n.
func sizeOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// copyWithColor rebuilds src with the given children and color.
func copyWithColor[K, V any](src, l, r *node[K, V], c color) *node[K, V] {
	if src == nil {
		return nil
	}
	return &node[K, V]{
		key:   src.key,
		value: src.value,
		child: [2]*node[K, V]{l, r},
		size:  sizeOf(l) + sizeOf(r) + 1,
		color: c,
	}
}

// copyNode rebuilds src with the given children, keeping its color.
func copyNode[K, V any](src, l, r *node[K, V]) *node[K, V] {
	return copyWithColor(src, l, r, colorOf(src))
}

// setColor rebuilds n with a new color. Children and size are shared.
func setColor[K, V any](n *node[K, V], c color) *node[K, V] {
	if n == nil {
		return nil
	}
	return &node[K, V]{key: n.key, value: n.value, child: n.child, size: n.size, color: c}
}

// withChild rebuilds n replacing only its d side child.
func withChild[K, V any](n *node[K, V], d dir, c *node[K, V]) *node[K, V] {
	children := n.child
	children[d] = c
	return copyNode(n, children[left], children[right])
}

// withChildColor is withChild plus a color change.
func withChildColor[K, V any](n *node[K, V], d dir, c *node[K, V], col color) *node[K, V] {
	children := n.child
	children[d] = c
	return copyWithColor(n, children[left], children[right], col)
}

// copyOriented rebuilds src with onD as its d side child and other on the
// opposite side.
func copyOriented[K, V any](src *node[K, V], d dir, onD, other *node[K, V], c color) *node[K, V] {
	if d == left {
		return copyWithColor(src, onD, other, c)
	}
	return copyWithColor(src, other, onD, c)
}

// rotate lifts child above parent, turning in direction d. child must be the
// node that takes the place of parent's d.opposite() slot; parent's own
// pointer in that slot is ignored, which lets callers rotate freshly rebuilt
// children. Two new nodes are produced; the inputs are left untouched.
func rotate[K, V any](child, parent *node[K, V], d dir) *node[K, V] {
	lowered := withChild(parent, d.opposite(), child.child[d])
	return withChild(child, d, lowered)
}

// rotateLeft moves child, parent's right child, into parent's position.
func rotateLeft[K, V any](child, parent *node[K, V]) *node[K, V] {
	return rotate(child, parent, left)
}

// rotateRight moves child, parent's left child, into parent's position.
func rotateRight[K, V any](child, parent *node[K, V]) *node[K, V] {
	return rotate(child, parent, right)
}

// minimum returns the leftmost node of the subtree rooted at n.
func (n *node[K, V]) minimum() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.child[left] != nil {
		n = n.child[left]
	}
	return n
}

// maximum returns the rightmost node of the subtree rooted at n.
func (n *node[K, V]) maximum() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.child[right] != nil {
		n = n.child[right]
	}
	return n
}
