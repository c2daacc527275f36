package rbtree

import (
	"fmt"
	"strings"
)

// Get returns the value stored under key, and whether key is present.
func (t Tree[K, V]) Get(key K) (V, bool) {
	if n := t.search(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t Tree[K, V]) Contains(key K) bool {
	return t.search(key) != nil
}

// search walks down from the root; it never allocates.
func (t Tree[K, V]) search(key K) *node[K, V] {
	current := t.root
	for current != nil {
		c := t.cmp(key, current.key)
		switch {
		case c < 0:
			current = current.child[left]
		case c > 0:
			current = current.child[right]
		default:
			return current
		}
	}
	return nil
}

// Size returns the number of entries.
func (t Tree[K, V]) Size() int {
	return sizeOf(t.root)
}

// IsEmpty reports whether the tree has no entries.
func (t Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Add returns a version of t that maps key to value. An existing value for
// key is replaced; t itself is not modified.
func (t Tree[K, V]) Add(key K, value V) Tree[K, V] {
	if t.root == nil {
		return Tree[K, V]{root: setColor(newLeaf(key, value), black), cmp: t.cmp}
	}
	root, _ := t.insertHelper(t.root, key, value)
	if isRed(root) {
		root = setColor(root, black)
	}
	return Tree[K, V]{root: root, cmp: t.cmp}
}

// insertHelper rebuilds the path to key below current. grew is false when an
// existing entry was overwritten, in which case shape and colors are unchanged
// and no fixup is needed on the way up.
func (t Tree[K, V]) insertHelper(current *node[K, V], key K, value V) (n *node[K, V], grew bool) {
	c := t.cmp(key, current.key)
	if c == 0 {
		return &node[K, V]{
			key:   key,
			value: value,
			child: current.child,
			size:  current.size,
			color: current.color,
		}, false
	}

	d := left
	if c > 0 {
		d = right
	}
	next := current.child[d]
	if next == nil {
		return fixAfterInsertion(current, d, newLeaf(key, value)), true
	}

	newChild, grew := t.insertHelper(next, key, value)
	if !grew {
		return withChild(current, d, newChild), false
	}
	return fixAfterInsertion(current, d, newChild), true
}

// fixAfterInsertion rebuilds n with newChild on side d and repairs a red-red
// violation between newChild and one of its children. Such a violation can
// only reach a black n, because a red n never had a red child to begin with.
func fixAfterInsertion[K, V any](n *node[K, V], d dir, newChild *node[K, V]) *node[K, V] {
	if isBlack(newChild) || (isBlack(newChild.child[left]) && isBlack(newChild.child[right])) {
		return withChild(n, d, newChild)
	}

	uncle := n.child[d.opposite()]

	// Case 1: recolor and let the parent level deal with n turning red.
	if isRed(uncle) {
		return copyOriented(n, d, setColor(newChild, black), setColor(uncle, black), red)
	}

	// Case 2: the red grandchild is on the inner side, line it up first.
	if inner := newChild.child[d.opposite()]; isRed(inner) {
		newChild = rotate(inner, newChild, d)
	}

	// Case 3
	return rotate(setColor(newChild, black), setColor(n, red), d.opposite())
}

// Remove returns a version of t without key. When key is absent t is returned
// as is.
func (t Tree[K, V]) Remove(key K) Tree[K, V] {
	if t.root == nil {
		return t
	}
	root, _, removed := t.removeHelper(t.root, key)
	if !removed {
		return t
	}
	// The root absorbs any leftover deficiency: every path loses the same black.
	if isRed(root) {
		root = setColor(root, black)
	}
	return Tree[K, V]{root: root, cmp: t.cmp}
}

// removeHelper deletes key below current. short reports that the returned
// subtree has one black node less on every path than current had (the
// "double black" state); removed is false when key was not found and current
// is returned unchanged.
func (t Tree[K, V]) removeHelper(current *node[K, V], key K) (n *node[K, V], short, removed bool) {
	c := t.cmp(key, current.key)
	if c != 0 {
		d := left
		if c > 0 {
			d = right
		}
		next := current.child[d]
		if next == nil {
			return current, false, false
		}
		newChild, short, removed := t.removeHelper(next, key)
		if !removed {
			return current, false, false
		}
		n, short = fixAfterDeletion(current, d, newChild, short)
		return n, short, true
	}

	l, r := current.child[left], current.child[right]
	switch {
	case l == nil && r == nil:
		return nil, isBlack(current), true
	case l == nil:
		return r, isBlack(current), true
	case r == nil:
		return l, isBlack(current), true
	}

	// Two children: take over the successor's entry, then delete the successor
	// from the right subtree.
	successor := r.minimum()
	replacement := copyWithColor(successor, l, r, current.color)
	newRight, short, _ := t.removeHelper(r, successor.key)
	n, short = fixAfterDeletion(replacement, right, newRight, short)
	return n, short, true
}

// fixAfterDeletion rebuilds n with newChild on side d. When newChild is short
// it either absorbs the missing black here or hands it on to n's parent by
// returning short.
func fixAfterDeletion[K, V any](n *node[K, V], d dir, newChild *node[K, V], short bool) (*node[K, V], bool) {
	if !short {
		return withChild(n, d, newChild), false
	}

	// A red node in a short position simply turns black.
	if isRed(newChild) {
		return withChild(n, d, setColor(newChild, black)), false
	}

	o := d.opposite()
	sibling := n.child[o]

	// Case 1: red sibling. Rotate it up so that the short side gets a black
	// sibling under a red parent, then resolve from there.
	if isRed(sibling) {
		top := rotate(setColor(sibling, black), setColor(n, red), d)
		lowered, short := fixAfterDeletion(top.child[d], d, newChild, true)
		return fixAfterDeletion(top, d, lowered, short)
	}

	// Case 2: both nephews black. Take one black off the sibling side too,
	// which makes n itself short.
	if isBlack(childOf(sibling, left)) && isBlack(childOf(sibling, right)) {
		return copyOriented(n, d, newChild, setColor(sibling, red), n.color), true
	}

	// Case 3: only the near nephew is red. Rotate it into the sibling slot so
	// the red nephew ends up on the far side.
	if isBlack(sibling.child[o]) {
		near := sibling.child[d]
		sibling = rotate(setColor(near, black), setColor(sibling, red), o)
	}

	// Case 4: the sibling replaces n, n goes down on the short side as an
	// extra black, the far nephew turns black to keep the sibling side even.
	sibling = withChildColor(sibling, o, setColor(sibling.child[o], black), n.color)
	lowered := withChildColor(n, d, newChild, black)
	return rotate(sibling, lowered, d), false
}

// Min returns the entry with the smallest key.
func (t Tree[K, V]) Min() (K, V, bool) {
	return entryOf(t.root.minimum())
}

// Max returns the entry with the largest key.
func (t Tree[K, V]) Max() (K, V, bool) {
	return entryOf(t.root.maximum())
}

func entryOf[K, V any](n *node[K, V]) (K, V, bool) {
	if n == nil {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	return n.key, n.value, true
}

// Each walks the tree in ascending key order and calls callback for every
// entry until it returns false.
func (t Tree[K, V]) Each(callback Callback[K, V]) {
	t.eachHelper(t.root, callback)
}

// eachHelper is a helper function of Each. It reports whether the walk should go on.
func (t Tree[K, V]) eachHelper(current *node[K, V], callback Callback[K, V]) bool {
	if current == nil {
		return true
	}
	return t.eachHelper(current.child[left], callback) &&
		callback(current.key, current.value) &&
		t.eachHelper(current.child[right], callback)
}

// String renders the tree structure for debugging. The format is not stable.
func (t Tree[K, V]) String() string {
	if t.root == nil {
		return "empty"
	}
	var sb strings.Builder
	writeNode(&sb, t.root)
	return sb.String()
}

func writeNode[K, V any](sb *strings.Builder, n *node[K, V]) {
	if n == nil {
		sb.WriteString("nil")
		return
	}
	fmt.Fprintf(sb, "(%v=%v %s ", n.key, n.value, n.color)
	writeNode(sb, n.child[left])
	sb.WriteString(" ")
	writeNode(sb, n.child[right])
	sb.WriteString(")")
}
