package internal

// Less reports whether a sorts strictly before b.
// It must provide a strict weak ordering; two values are treated as equal
// when neither is less than the other.
type Less[T any] func(a, b T) bool

// Node is a single cell of an AA tree.
// left and right are owned by the node, parent is a back-link used only for
// in-order stepping.
type Node[T any] struct {
	value  T
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
	level  int
}

func newLeafNode[T any](value T) *Node[T] {
	return &Node[T]{value: value, level: 1}
}

func (node *Node[T]) Value() T {
	return node.value
}

func (node *Node[T]) Left() *Node[T] {
	return node.left
}

func (node *Node[T]) Right() *Node[T] {
	return node.right
}

func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

func (node *Node[T]) Level() int {
	return node.level
}

func (node *Node[T]) isLeaf() bool {
	return node.left == nil && node.right == nil
}

// level returns the node's level, treating a missing node as level 0.
func level[T any](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return node.level
}

// adopt points the parent links of node's children back at node.
func adopt[T any](node *Node[T]) {
	if node == nil {
		return
	}
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

// Clone returns a deep copy of the subtree rooted at node, preserving values,
// levels and shape. The returned root has a nil parent.
func Clone[T any](node *Node[T]) *Node[T] {
	return cloneWithParent(node, nil)
}

func cloneWithParent[T any](node, parent *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	newNode := &Node[T]{
		value:  node.value,
		parent: parent,
		level:  node.level,
	}
	newNode.left = cloneWithParent(node.left, newNode)
	newNode.right = cloneWithParent(node.right, newNode)
	return newNode
}

// Count returns the number of nodes reachable from node.
func Count[T any](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return 1 + Count(node.left) + Count(node.right)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func Height[T any](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return max(Height(node.left), Height(node.right)) + 1
}
