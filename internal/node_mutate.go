package internal

// Insert adds value to the subtree rooted at node.
// It returns the new subtree root and whether a node was created; inserting
// a value that is already present leaves the subtree untouched.
// The caller is responsible for the parent link of the returned root.
func Insert[T any](less Less[T], node *Node[T], value T) (*Node[T], bool) {
	if node == nil {
		return newLeafNode(value), true
	}

	var inserted bool
	switch {
	case less(value, node.value):
		node.left, inserted = Insert(less, node.left, value)
		node.left.parent = node
	case less(node.value, value):
		node.right, inserted = Insert(less, node.right, value)
		node.right.parent = node
	default:
		return node, false
	}

	if !inserted {
		return node, false
	}

	node = skew(node)
	node = split(node)
	adopt(node)
	return node, true
}

// Erase removes value from the subtree rooted at node.
// It returns the new subtree root (nil when the subtree became empty) and
// whether value was present.
//
// An internal node is never unlinked directly: it takes over the value of
// its in-order successor (when it has no left child) or predecessor, and
// that neighbour is removed from the corresponding subtree instead.
func Erase[T any](less Less[T], node *Node[T], value T) (*Node[T], bool) {
	if node == nil {
		return nil, false
	}

	var erased bool
	switch {
	case less(value, node.value):
		node.left, erased = Erase(less, node.left, value)
	case less(node.value, value):
		node.right, erased = Erase(less, node.right, value)
	case node.isLeaf():
		return nil, true
	case node.left == nil:
		node.value = Successor(node).value
		node.right, erased = Erase(less, node.right, node.value)
	default:
		node.value = Predecessor(node).value
		node.left, erased = Erase(less, node.left, node.value)
	}

	if !erased {
		return node, false
	}

	adopt(node)
	return rebalanceAfterErase(node), true
}

// rebalanceAfterErase restores the level invariants around node after a
// removal somewhere below it. A level drop can ripple through up to two
// right neighbours, hence the wider repair window than on insert.
func rebalanceAfterErase[T any](node *Node[T]) *Node[T] {
	node = decreaseLevel(node)
	node = skew(node)
	node.right = skew(node.right)
	if node.right != nil {
		node.right.right = skew(node.right.right)
	}
	node = split(node)
	node.right = split(node.right)
	return node
}
