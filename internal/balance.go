package internal

// skew removes a horizontal left link by rotating right.
// It returns the new root of the subtree, which is node itself when the
// left child is missing or sits on a lower level.
func skew[T any](node *Node[T]) *Node[T] {
	if node == nil || node.left == nil {
		return node
	}
	if node.left.level != node.level {
		return node
	}

	newSelf := node.left
	node.left = newSelf.right
	newSelf.right = node

	newSelf.parent = node.parent
	node.parent = newSelf
	if node.left != nil {
		node.left.parent = node
	}

	return newSelf
}

// split removes two consecutive horizontal right links by rotating left and
// promoting the middle node one level up.
func split[T any](node *Node[T]) *Node[T] {
	if node == nil || node.right == nil || node.right.right == nil {
		return node
	}
	if node.right.right.level != node.level {
		return node
	}

	newSelf := node.right
	node.right = newSelf.left
	newSelf.left = node
	newSelf.level++

	newSelf.parent = node.parent
	node.parent = newSelf
	if node.right != nil {
		node.right.parent = node
	}

	return newSelf
}

// decreaseLevel lowers node (and a right child that would end up above it)
// to one more than its lowest child after a removal below it.
// A missing child counts as level 0, so a node that lost a child falls back
// to level 1.
func decreaseLevel[T any](node *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	shouldBe := min(level(node.left), level(node.right)) + 1
	if shouldBe < node.level {
		node.level = shouldBe
		if node.right != nil && shouldBe < node.right.level {
			node.right.level = shouldBe
		}
	}
	return node
}
