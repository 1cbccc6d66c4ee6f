package internal

// Successor returns the leftmost node of node's right subtree.
// node.right must not be nil.
func Successor[T any](node *Node[T]) *Node[T] {
	return Min(node.right)
}

// Predecessor returns the rightmost node of node's left subtree.
// node.left must not be nil.
func Predecessor[T any](node *Node[T]) *Node[T] {
	return Max(node.left)
}

// Min returns the leftmost node of the subtree, or nil for an empty one.
func Min[T any](node *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for node.left != nil {
		node = node.left
	}
	return node
}

// Max returns the rightmost node of the subtree, or nil for an empty one.
func Max[T any](node *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for node.right != nil {
		node = node.right
	}
	return node
}

// Next returns the in-order successor of node in the whole tree, or nil when
// node holds the largest value.
func Next[T any](node *Node[T]) *Node[T] {
	if node.right != nil {
		return Successor(node)
	}
	for node.parent != nil && node.parent.right == node {
		node = node.parent
	}
	return node.parent
}

// Prev returns the in-order predecessor of node in the whole tree, or nil
// when node holds the smallest value.
func Prev[T any](node *Node[T]) *Node[T] {
	if node.left != nil {
		return Predecessor(node)
	}
	for node.parent != nil && node.parent.left == node {
		node = node.parent
	}
	return node.parent
}

// Find returns the node holding value, or nil.
func Find[T any](less Less[T], node *Node[T], value T) *Node[T] {
	for node != nil {
		switch {
		case less(value, node.value):
			node = node.left
		case less(node.value, value):
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// LowerBound returns the node holding the smallest value not less than
// value, or nil if every stored value is smaller.
func LowerBound[T any](less Less[T], node *Node[T], value T) *Node[T] {
	var candidate *Node[T]
	for node != nil {
		switch {
		case less(value, node.value):
			// node is a valid answer unless something smaller on the left is too
			candidate = node
			node = node.left
		case less(node.value, value):
			node = node.right
		default:
			return node
		}
	}
	return candidate
}
